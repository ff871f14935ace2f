package model

import "time"

// Day is one calendar day of the daily log, identified by its date in the
// display timezone. Entries are ordered by start time, ties broken by id.
type Day struct {
	// Date is the calendar day formatted as 2006-01-02.
	Date string
	// Start is midnight of the day in the display timezone.
	Start time.Time
	// Entries whose start falls within this day. An entry spanning midnight
	// is attributed entirely to its start day, never split.
	Entries []Entry
}

// DailyLog is the ordered sequence of non-empty days in a report. Days with
// no entries are omitted; the structure is sparse, not a dense calendar.
type DailyLog struct {
	Days []Day
}

// Entries returns the total number of entries across all days.
func (l DailyLog) Entries() int {
	n := 0
	for _, d := range l.Days {
		n += len(d.Entries)
	}
	return n
}

// GroupBy selects the dimension a summary aggregates over. It is a closed
// enum so every grouping is handled exhaustively rather than keyed by
// ad-hoc strings.
type GroupBy int

const (
	GroupByProject GroupBy = iota
	GroupByTag
	GroupByProjectTag
)

// ParseGroupBy maps a CLI flag value to a GroupBy dimension.
func ParseGroupBy(s string) (GroupBy, bool) {
	switch s {
	case "project":
		return GroupByProject, true
	case "tag":
		return GroupByTag, true
	case "project-tag":
		return GroupByProjectTag, true
	default:
		return GroupByProject, false
	}
}

func (g GroupBy) String() string {
	switch g {
	case GroupByProject:
		return "project"
	case GroupByTag:
		return "tag"
	case GroupByProjectTag:
		return "project-tag"
	default:
		return "unknown"
	}
}

// NoID is the sentinel for "no project" / "no tag" in a GroupKey. Toggl ids
// are positive, so zero is free to carry that meaning.
const NoID int64 = 0

// GroupKey identifies one bucket of a summary. Unused dimensions are NoID:
// a by-project key leaves TagID at NoID, a by-tag key leaves ProjectID at
// NoID.
type GroupKey struct {
	ProjectID int64
	TagID     int64
}

// Less orders keys by (ProjectID, TagID) for deterministic output.
func (k GroupKey) Less(o GroupKey) bool {
	if k.ProjectID != o.ProjectID {
		return k.ProjectID < o.ProjectID
	}
	return k.TagID < o.TagID
}

// Group is one bucket of a summary: total tracked duration and the number of
// contributing entries. When aggregating by tag, a multi-tag entry
// contributes its full duration to each of its tags, so tag totals may
// exceed the sum of entry durations.
type Group struct {
	Key   GroupKey
	Total time.Duration
	Count int
}

// Aggregate is the ordered result of a summary pass, sorted by key.
type Aggregate struct {
	Groups []Group
}

// Total sums the durations of all groups.
func (a Aggregate) Total() time.Duration {
	var t time.Duration
	for _, g := range a.Groups {
		t += g.Total
	}
	return t
}
