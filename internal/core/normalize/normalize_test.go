package normalize

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iimuz/toggl-tools-go/internal/core/model"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestNormalizeStoppedEntry(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	start := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)
	stop := start.Add(90 * time.Minute)

	entries, issues := Normalize([]model.RawEntry{
		{ID: 1, Description: "review", Start: timePtr(start), Stop: timePtr(stop)},
	}, now)

	require.Empty(t, issues)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].ID)
	assert.Equal(t, 90*time.Minute, entries[0].Duration)
	assert.False(t, entries[0].Running())
}

func TestNormalizeRunningEntryUsesExplicitNow(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	start := now.Add(-time.Hour)

	raw := []model.RawEntry{{ID: 7, Start: timePtr(start)}}

	first, issues := Normalize(raw, now)
	require.Empty(t, issues)
	require.Len(t, first, 1)
	assert.Equal(t, time.Hour, first[0].Duration)
	assert.True(t, first[0].Running())

	// Re-running with the same now must yield the identical duration: there
	// is no hidden clock read.
	second, _ := Normalize(raw, now)
	assert.Equal(t, first[0].Duration, second[0].Duration)
}

func TestNormalizeDeduplicationLastSeenWins(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	start := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	stop := start.Add(30 * time.Minute)

	// The same entry seen twice across pages: first still running, then in
	// its stopped state. The later copy must win.
	entries, issues := Normalize([]model.RawEntry{
		{ID: 42, Description: "writing", Start: timePtr(start)},
		{ID: 42, Description: "writing", Start: timePtr(start), Stop: timePtr(stop)},
	}, now)

	require.Empty(t, issues)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].Running())
	assert.Equal(t, 30*time.Minute, entries[0].Duration)
}

func TestNormalizeMalformedEntries(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	start := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		raw  model.RawEntry
		kind model.IssueKind
	}{
		{
			name: "missing id",
			raw:  model.RawEntry{ID: 0, Start: timePtr(start)},
			kind: model.IssueMissingID,
		},
		{
			name: "missing start",
			raw:  model.RawEntry{ID: 5},
			kind: model.IssueMissingStart,
		},
		{
			name: "stop before start",
			raw:  model.RawEntry{ID: 5, Start: timePtr(start), Stop: timePtr(start.Add(-time.Minute))},
			kind: model.IssueStopBeforeStart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, issues := Normalize([]model.RawEntry{tt.raw}, now)

			assert.Empty(t, entries)
			require.Len(t, issues, 1)
			assert.Equal(t, tt.kind, issues[0].Kind)
		})
	}
}

func TestNormalizeMalformedEntryDoesNotHideBatch(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)

	var raw []model.RawEntry
	for i := 1; i <= 9; i++ {
		start := time.Date(2026, 8, 27, 0, i, 0, 0, time.UTC)
		raw = append(raw, model.RawEntry{
			ID:    int64(i),
			Start: timePtr(start),
			Stop:  timePtr(start.Add(time.Minute)),
		})
	}
	bad := time.Date(2026, 8, 27, 5, 0, 0, 0, time.UTC)
	raw = append(raw, model.RawEntry{ID: 10, Start: timePtr(bad), Stop: timePtr(bad.Add(-time.Hour))})

	entries, issues := Normalize(raw, now)

	assert.Len(t, entries, 9)
	require.Len(t, issues, 1)
	assert.Equal(t, model.IssueStopBeforeStart, issues[0].Kind)
	assert.Equal(t, int64(10), issues[0].EntryID)
}

func TestNormalizeClockSkewClampsToZero(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	start := now.Add(10 * time.Minute)

	entries, issues := Normalize([]model.RawEntry{
		{ID: 3, Start: timePtr(start)},
	}, now)

	// The entry stays in the result with a zero duration, never negative.
	require.Len(t, entries, 1)
	assert.Equal(t, time.Duration(0), entries[0].Duration)
	assert.True(t, entries[0].ClockSkewed)

	require.Len(t, issues, 1)
	assert.Equal(t, model.IssueClockSkew, issues[0].Kind)
}

func TestNormalizeConvertsToUTC(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	tokyo := time.FixedZone("UTC+9", 9*3600)
	start := time.Date(2026, 8, 27, 9, 0, 0, 0, tokyo)
	stop := start.Add(time.Hour)

	entries, issues := Normalize([]model.RawEntry{
		{ID: 1, Start: timePtr(start), Stop: timePtr(stop)},
	}, now)

	require.Empty(t, issues)
	require.Len(t, entries, 1)
	assert.Equal(t, time.UTC, entries[0].Start.Location())
	assert.Equal(t, time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC), entries[0].Start)
	assert.Equal(t, time.Hour, entries[0].Duration)
}

func TestNormalizeOutputSorted(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	base := time.Date(2026, 8, 27, 8, 0, 0, 0, time.UTC)

	// Unordered input, including an equal-start pair to exercise the id
	// tie-break.
	raw := []model.RawEntry{
		{ID: 9, Start: timePtr(base.Add(2 * time.Hour)), Stop: timePtr(base.Add(3 * time.Hour))},
		{ID: 4, Start: timePtr(base), Stop: timePtr(base.Add(time.Hour))},
		{ID: 2, Start: timePtr(base), Stop: timePtr(base.Add(time.Hour))},
	}

	entries, issues := Normalize(raw, now)

	require.Empty(t, issues)
	require.Len(t, entries, 3)
	var got []string
	for _, e := range entries {
		got = append(got, fmt.Sprintf("%s/%d", e.Start.Format("15:04"), e.ID))
	}
	assert.Equal(t, []string{"08:00/2", "08:00/4", "10:00/9"}, got)
}

func TestNormalizeTruncatesToWholeSeconds(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 500_000_000, time.UTC)
	start := time.Date(2026, 8, 27, 11, 0, 0, 0, time.UTC)

	entries, issues := Normalize([]model.RawEntry{
		{ID: 1, Start: timePtr(start)},
	}, now)

	require.Empty(t, issues)
	require.Len(t, entries, 1)
	assert.Equal(t, time.Hour, entries[0].Duration)
}
