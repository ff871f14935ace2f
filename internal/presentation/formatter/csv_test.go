package formatter

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVFormatDaily(t *testing.T) {
	var buf bytes.Buffer
	f := NewCSVFormatter(&buf)

	require.NoError(t, f.FormatDaily(sampleDaily()))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, []string{"date", "start", "stop", "project", "description", "tags", "duration_seconds", "running"}, records[0])
	assert.Equal(t, []string{"2026-08-27", "09:00", "09:15", "Infra", "standup", "", "900", "false"}, records[1])
	assert.Equal(t, "ops", records[2][5])
	assert.Equal(t, "true", records[3][7])
	assert.Empty(t, records[3][2], "running entry has no stop time")
}

func TestCSVFormatDailyJoinsTags(t *testing.T) {
	report := DailyReport{
		Days: []DaySection{
			{
				Date: "2026-08-27",
				Entries: []EntryLine{
					{Start: "09:00", Stop: "10:00", Project: "Infra", Description: "triage", Tags: []string{"ops", "oncall"}, Seconds: 3600},
				},
				Seconds: 3600,
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewCSVFormatter(&buf).FormatDaily(report))

	assert.Contains(t, buf.String(), "ops;oncall")
}

func TestCSVFormatSummary(t *testing.T) {
	var buf bytes.Buffer
	f := NewCSVFormatter(&buf)

	require.NoError(t, f.FormatSummary(sampleSummary()))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"project", "tag", "entry_count", "duration_seconds"}, records[0])
	assert.Equal(t, []string{"Infra", "ops", "4", "5400"}, records[1])
	assert.Equal(t, []string{"Writing", "", "2", "3600"}, records[2])
}
