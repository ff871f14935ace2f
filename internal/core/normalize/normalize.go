// Package normalize turns the raw, possibly duplicated entry stream from the
// fetch layer into canonical entries with resolved durations.
package normalize

import (
	"fmt"
	"time"

	"golang.org/x/exp/slices"

	"github.com/iimuz/toggl-tools-go/internal/core/model"
)

// Normalize deduplicates and duration-resolves raw entries.
//
// Entries sharing an id are collapsed last-seen-wins in fetch order: a page
// fetched later may carry the updated state of an entry that stopped while
// the fetch was in flight, and that newer state must replace the stale one.
//
// Durations are derived, never trusted from the wire: stop-start for stopped
// entries, now-start for running ones, truncated to whole seconds. The same
// now instant is applied to every entry so that all running entries in one
// report agree on the snapshot point.
//
// Malformed raw entries (id <= 0, missing start, stop before start) are
// dropped individually and reported as issues; the rest of the batch still
// normalizes. A running entry whose start lies after now is kept with a zero
// duration and flagged ClockSkewed, alongside an IssueClockSkew.
//
// The function is pure: no clock reads, no logging, no shared state.
func Normalize(raw []model.RawEntry, now time.Time) ([]model.Entry, []model.Issue) {
	var issues []model.Issue

	byID := make(map[int64]model.Entry, len(raw))
	for _, r := range raw {
		if r.ID <= 0 {
			issues = append(issues, model.Issue{
				EntryID: r.ID,
				Kind:    model.IssueMissingID,
				Detail:  fmt.Sprintf("start=%v", r.Start),
			})
			continue
		}
		if r.Start == nil {
			issues = append(issues, model.Issue{
				EntryID: r.ID,
				Kind:    model.IssueMissingStart,
				Detail:  "entry has no start timestamp",
			})
			continue
		}

		start := r.Start.UTC()
		e := model.Entry{
			ID:          r.ID,
			Description: r.Description,
			ProjectID:   r.ProjectID,
			TagIDs:      r.TagIDs,
			Start:       start,
		}

		if r.Stop != nil {
			stop := r.Stop.UTC()
			if stop.Before(start) {
				issues = append(issues, model.Issue{
					EntryID: r.ID,
					Kind:    model.IssueStopBeforeStart,
					Detail:  fmt.Sprintf("start=%s stop=%s", start.Format(time.RFC3339), stop.Format(time.RFC3339)),
				})
				continue
			}
			e.Stop = &stop
			e.Duration = stop.Sub(start).Truncate(time.Second)
		} else {
			d := now.Sub(start)
			if d < 0 {
				issues = append(issues, model.Issue{
					EntryID: r.ID,
					Kind:    model.IssueClockSkew,
					Detail:  fmt.Sprintf("running entry starts %s after now", (-d).Truncate(time.Second)),
				})
				e.ClockSkewed = true
				d = 0
			}
			e.Duration = d.Truncate(time.Second)
		}

		byID[e.ID] = e
	}

	entries := make([]model.Entry, 0, len(byID))
	for _, e := range byID {
		entries = append(entries, e)
	}
	slices.SortFunc(entries, func(a, b model.Entry) int {
		if c := a.Start.Compare(b.Start); c != 0 {
			return c
		}
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})

	return entries, issues
}
