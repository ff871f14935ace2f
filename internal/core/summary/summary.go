// Package summary aggregates normalized entries into per-project and per-tag
// duration totals over a date range.
package summary

import (
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/iimuz/toggl-tools-go/internal/core/model"
)

const dateLayout = "2006-01-02"

// Aggregate sums durations of the entries whose start day, evaluated in loc,
// falls within the inclusive [from, to] range.
//
// Grouping follows by: per project, per tag, or per (project, tag) pair.
// Entries without a project or tag land under the model.NoID sentinel key
// instead of being dropped. When tags participate in the grouping, an entry
// carries its full duration into every one of its tag buckets, so tag totals
// may exceed the plain sum of entry durations; excludeTags removes the
// listed tag ids from the result entirely.
//
// Totals are summed as exact integer durations over whole-second entry
// durations, and groups come back sorted by key so identical input yields
// identical output.
func Aggregate(entries []model.Entry, from, to time.Time, loc *time.Location, by model.GroupBy, excludeTags []int64) model.Aggregate {
	fromDay := from.In(loc).Format(dateLayout)
	toDay := to.In(loc).Format(dateLayout)

	excluded := make(map[int64]bool, len(excludeTags))
	for _, id := range excludeTags {
		excluded[id] = true
	}

	groups := make(map[model.GroupKey]*model.Group)
	add := func(key model.GroupKey, d time.Duration) {
		g, ok := groups[key]
		if !ok {
			g = &model.Group{Key: key}
			groups[key] = g
		}
		g.Total += d
		g.Count++
	}

	for _, e := range entries {
		day := e.Start.In(loc).Format(dateLayout)
		if day < fromDay || day > toDay {
			continue
		}

		projectID := model.NoID
		if e.ProjectID != nil {
			projectID = *e.ProjectID
		}

		switch by {
		case model.GroupByProject:
			add(model.GroupKey{ProjectID: projectID}, e.Duration)
		case model.GroupByTag:
			forEachTag(e, excluded, func(tagID int64) {
				add(model.GroupKey{TagID: tagID}, e.Duration)
			})
		case model.GroupByProjectTag:
			forEachTag(e, excluded, func(tagID int64) {
				add(model.GroupKey{ProjectID: projectID, TagID: tagID}, e.Duration)
			})
		}
	}

	keys := maps.Keys(groups)
	slices.SortFunc(keys, func(a, b model.GroupKey) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})

	result := make([]model.Group, 0, len(keys))
	for _, k := range keys {
		result = append(result, *groups[k])
	}
	return model.Aggregate{Groups: result}
}

// forEachTag invokes fn once per non-excluded tag of e, or once with the
// NoID sentinel when the entry has no usable tags left.
func forEachTag(e model.Entry, excluded map[int64]bool, fn func(tagID int64)) {
	seen := false
	for _, tagID := range e.TagIDs {
		if excluded[tagID] {
			continue
		}
		fn(tagID)
		seen = true
	}
	if !seen && len(e.TagIDs) == 0 {
		fn(model.NoID)
	}
}
