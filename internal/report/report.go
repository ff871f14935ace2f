// Package report orchestrates the reporting pipeline: fetch raw entries,
// normalize them against a single reference instant, build the requested
// view and hand render-ready rows to a formatter.
package report

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/iimuz/toggl-tools-go/internal/core/dailylog"
	"github.com/iimuz/toggl-tools-go/internal/core/model"
	"github.com/iimuz/toggl-tools-go/internal/core/normalize"
	"github.com/iimuz/toggl-tools-go/internal/core/summary"
	"github.com/iimuz/toggl-tools-go/internal/presentation/formatter"
	"github.com/iimuz/toggl-tools-go/internal/util"
)

// Fetcher is the retrieval boundary of the pipeline. Implementations own
// pagination, retries and authentication; the pipeline only ever sees the
// flattened collections they return. toggl.Client is the production
// implementation; tests hand the pipeline fixed slices.
type Fetcher interface {
	TimeEntries(ctx context.Context, from, to time.Time) ([]model.RawEntry, error)
	Projects(ctx context.Context) ([]model.Project, error)
	Tags(ctx context.Context) ([]model.Tag, error)
}

// Config carries the per-invocation settings of a report run.
type Config struct {
	Timezone    string
	Output      string
	GroupBy     model.GroupBy
	ExcludeTags []int64
}

// Reporter runs the fetch → normalize → build → render pipeline.
type Reporter struct {
	config  *Config
	fetcher Fetcher
	loc     *time.Location
	out     io.Writer

	// now is captured once per run so every running entry in a report is
	// evaluated against the same instant. Overridable in tests.
	now func() time.Time
}

// New resolves the display timezone and wires up a Reporter writing to out.
func New(config *Config, fetcher Fetcher, out io.Writer) (*Reporter, error) {
	loc := time.Local
	if config.Timezone != "" && config.Timezone != "Local" {
		l, err := time.LoadLocation(config.Timezone)
		if err != nil {
			return nil, fmt.Errorf("invalid timezone %q: %w", config.Timezone, err)
		}
		loc = l
	}

	return &Reporter{
		config:  config,
		fetcher: fetcher,
		loc:     loc,
		out:     out,
		now:     time.Now,
	}, nil
}

// Daily renders the per-day log for the inclusive calendar-day range
// [fromDay, toDay] in the display timezone.
func (r *Reporter) Daily(ctx context.Context, fromDay, toDay time.Time) error {
	entries, cat, err := r.load(ctx, fromDay, toDay)
	if err != nil {
		return err
	}

	log := dailylog.Build(entries, r.loc)
	view := r.buildDailyReport(log, cat, fromDay, toDay)

	f, err := formatter.New(r.config.Output, r.out)
	if err != nil {
		return err
	}
	return f.FormatDaily(view)
}

// Summary renders the aggregated view for the inclusive calendar-day range
// [fromDay, toDay], grouped per the configured dimension.
func (r *Reporter) Summary(ctx context.Context, fromDay, toDay time.Time) error {
	entries, cat, err := r.load(ctx, fromDay, toDay)
	if err != nil {
		return err
	}

	agg := summary.Aggregate(entries, fromDay, toDay, r.loc, r.config.GroupBy, r.config.ExcludeTags)
	view := r.buildSummaryReport(agg, cat, fromDay, toDay)

	f, err := formatter.New(r.config.Output, r.out)
	if err != nil {
		return err
	}
	return f.FormatSummary(view)
}

// load fetches and normalizes the raw entries of a day range plus the name
// catalogs. Catalog failures degrade to id-based names instead of failing
// the report.
func (r *Reporter) load(ctx context.Context, fromDay, toDay time.Time) ([]model.Entry, catalog, error) {
	now := r.now()

	start := util.StartOfDay(fromDay.In(r.loc))
	end := util.StartOfDay(toDay.In(r.loc)).AddDate(0, 0, 1)

	raw, err := r.fetcher.TimeEntries(ctx, start, end)
	if err != nil {
		return nil, catalog{}, fmt.Errorf("fetching time entries: %w", err)
	}
	util.LogDebugf("Fetched %d raw entries for %s..%s", len(raw),
		start.Format("2006-01-02"), end.Format("2006-01-02"))

	entries, issues := normalize.Normalize(raw, now)
	for _, issue := range issues {
		util.LogWarnf("Malformed entry: %s", issue)
	}
	if len(issues) > 0 {
		util.LogInfof("Kept %d entries, rejected or flagged %d", len(entries), len(issues))
	}

	cat := newCatalog(ctx, r.fetcher)
	return entries, cat, nil
}

func (r *Reporter) buildDailyReport(log model.DailyLog, cat catalog, fromDay, toDay time.Time) formatter.DailyReport {
	fromKey := fromDay.In(r.loc).Format("2006-01-02")
	toKey := toDay.In(r.loc).Format("2006-01-02")

	report := formatter.DailyReport{Timezone: r.loc.String()}
	for _, day := range log.Days {
		// The fetch window is day-aligned in the display timezone, but an
		// entry near a boundary can bucket into a neighbouring day.
		if day.Date < fromKey || day.Date > toKey {
			continue
		}

		section := formatter.DaySection{Date: day.Date}
		for _, e := range day.Entries {
			line := formatter.EntryLine{
				Start:       util.FormatClock(e.Start.In(r.loc)),
				Project:     cat.project(e.ProjectID),
				Description: e.Description,
				Tags:        cat.tagNames(e.TagIDs),
				Seconds:     int64(e.Duration / time.Second),
				Running:     e.Running(),
			}
			if e.Stop != nil {
				line.Stop = util.FormatClock(e.Stop.In(r.loc))
			}
			section.Entries = append(section.Entries, line)
			section.Seconds += line.Seconds
		}

		// The closing marker of a day is the stop time of its last entry;
		// a still-running last entry leaves the day open.
		if n := len(day.Entries); n > 0 {
			if last := day.Entries[n-1]; last.Stop != nil {
				section.End = util.FormatClock(last.Stop.In(r.loc))
			}
		}

		report.Days = append(report.Days, section)
	}
	return report
}

func (r *Reporter) buildSummaryReport(agg model.Aggregate, cat catalog, fromDay, toDay time.Time) formatter.SummaryReport {
	report := formatter.SummaryReport{
		From:     fromDay.In(r.loc).Format("2006-01-02"),
		To:       toDay.In(r.loc).Format("2006-01-02"),
		GroupBy:  r.config.GroupBy.String(),
		Timezone: r.loc.String(),
	}

	for _, g := range agg.Groups {
		row := formatter.SummaryRow{
			Count:   g.Count,
			Seconds: int64(g.Total / time.Second),
		}
		switch r.config.GroupBy {
		case model.GroupByProject:
			row.Project = cat.projectByID(g.Key.ProjectID)
		case model.GroupByTag:
			row.Tag = cat.tag(g.Key.TagID)
		case model.GroupByProjectTag:
			row.Project = cat.projectByID(g.Key.ProjectID)
			row.Tag = cat.tag(g.Key.TagID)
		}
		report.Rows = append(report.Rows, row)
		report.Seconds += row.Seconds
	}
	return report
}
