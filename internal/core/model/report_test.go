package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseGroupBy(t *testing.T) {
	tests := []struct {
		input string
		want  GroupBy
		ok    bool
	}{
		{input: "project", want: GroupByProject, ok: true},
		{input: "tag", want: GroupByTag, ok: true},
		{input: "project-tag", want: GroupByProjectTag, ok: true},
		{input: "model", ok: false},
		{input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseGroupBy(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
				assert.Equal(t, tt.input, got.String())
			}
		})
	}
}

func TestGroupKeyLess(t *testing.T) {
	assert.True(t, GroupKey{ProjectID: 1}.Less(GroupKey{ProjectID: 2}))
	assert.True(t, GroupKey{ProjectID: 1, TagID: 1}.Less(GroupKey{ProjectID: 1, TagID: 2}))
	assert.False(t, GroupKey{ProjectID: 2}.Less(GroupKey{ProjectID: 1}))
	assert.False(t, GroupKey{ProjectID: 1}.Less(GroupKey{ProjectID: 1}))
}

func TestEntryRunning(t *testing.T) {
	stop := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)

	assert.True(t, Entry{}.Running())
	assert.False(t, Entry{Stop: &stop}.Running())
}

func TestIssueString(t *testing.T) {
	issue := Issue{EntryID: 42, Kind: IssueStopBeforeStart, Detail: "start=a stop=b"}
	assert.Equal(t, "entry 42: stop before start (start=a stop=b)", issue.String())
}
