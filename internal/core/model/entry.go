package model

import "time"

// RawEntry is one time entry as received from the fetch layer, before
// normalization. Fields that the API may omit are pointers; the Normalizer
// decides whether an omission is legal (Stop) or a data error (Start, ID).
type RawEntry struct {
	ID          int64
	Description string
	ProjectID   *int64
	TagIDs      []int64
	Start       *time.Time
	Stop        *time.Time
}

// Entry is the canonical in-memory representation of one time entry.
// Start and Stop are normalized to UTC; Duration is always derived
// (stop-start, or now-start for running entries) and truncated to whole
// seconds, never taken from the wire.
type Entry struct {
	ID          int64
	Description string
	ProjectID   *int64
	TagIDs      []int64
	Start       time.Time
	Stop        *time.Time
	Duration    time.Duration
	// ClockSkewed marks a running entry whose start lies after the reference
	// instant the pass was evaluated at. Its Duration is clamped to zero.
	ClockSkewed bool
}

// Running reports whether the entry has no stop time, i.e. is still being
// tracked at the instant the report was generated.
func (e Entry) Running() bool {
	return e.Stop == nil
}

// Project is a catalog record used to resolve project ids to display names.
type Project struct {
	ID   int64
	Name string
}

// Tag is a catalog record used to resolve tag ids to display names.
type Tag struct {
	ID   int64
	Name string
}
