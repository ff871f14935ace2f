// Package dailylog groups normalized entries into calendar days for the
// per-day log view.
package dailylog

import (
	"time"

	"golang.org/x/exp/slices"

	"github.com/iimuz/toggl-tools-go/internal/core/model"
)

// dateLayout is the day key format used throughout the log.
const dateLayout = "2006-01-02"

// Build buckets entries into calendar days evaluated in loc.
//
// An entry belongs to the day containing its start time; an entry that runs
// past midnight is attributed entirely to its start day and never split.
// Days are sorted ascending and entries within a day by (start, id). Days
// without entries do not appear. Build cannot fail on normalized input.
func Build(entries []model.Entry, loc *time.Location) model.DailyLog {
	buckets := make(map[string][]model.Entry)
	starts := make(map[string]time.Time)

	for _, e := range entries {
		local := e.Start.In(loc)
		key := local.Format(dateLayout)
		if _, ok := starts[key]; !ok {
			starts[key] = time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
		}
		buckets[key] = append(buckets[key], e)
	}

	days := make([]model.Day, 0, len(buckets))
	for key, dayEntries := range buckets {
		slices.SortFunc(dayEntries, func(a, b model.Entry) int {
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
		days = append(days, model.Day{
			Date:    key,
			Start:   starts[key],
			Entries: dayEntries,
		})
	}

	slices.SortFunc(days, func(a, b model.Day) int {
		switch {
		case a.Date < b.Date:
			return -1
		case a.Date > b.Date:
			return 1
		default:
			return 0
		}
	})

	return model.DailyLog{Days: days}
}
