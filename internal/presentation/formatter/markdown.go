package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/iimuz/toggl-tools-go/internal/util"
)

// MarkdownFormatter renders reports in the markdown shapes the tool's output
// is pasted into: a bullet list per day for the daily log, a
// project/tag/duration table for the summary.
type MarkdownFormatter struct {
	w io.Writer
}

func NewMarkdownFormatter(w io.Writer) *MarkdownFormatter {
	return &MarkdownFormatter{w: w}
}

// FormatDaily writes one "## date" section per day with a "- HH:MM project
// description" line per entry and a closing end-time line once the day's
// last entry has stopped.
func (f *MarkdownFormatter) FormatDaily(report DailyReport) error {
	for i, day := range report.Days {
		if i > 0 {
			if _, err := fmt.Fprintln(f.w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(f.w, "## %s\n\n", day.Date); err != nil {
			return err
		}

		for _, entry := range day.Entries {
			line := fmt.Sprintf("- %s %s %s", entry.Start, entry.Project, entry.Description)
			if len(entry.Tags) > 0 {
				line += fmt.Sprintf(" [%s]", strings.Join(entry.Tags, ", "))
			}
			if entry.Running {
				line += " (running)"
			}
			if _, err := fmt.Fprintln(f.w, strings.TrimRight(line, " ")); err != nil {
				return err
			}
		}

		if day.End != "" {
			if _, err := fmt.Fprintf(f.w, "- %s end\n", day.End); err != nil {
				return err
			}
		}
	}
	return nil
}

// FormatSummary writes the "| Project | Tag | Duration |" table with
// durations rounded to quarter hours, followed by a total row.
func (f *MarkdownFormatter) FormatSummary(report SummaryReport) error {
	if _, err := fmt.Fprintln(f.w, "| Project | Tag | Duration |"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(f.w, "| :------ | :-- | -------: |"); err != nil {
		return err
	}

	for _, row := range report.Rows {
		tagName := row.Tag
		if tagName == "" {
			tagName = "-"
		}
		if _, err := fmt.Fprintf(f.w, "| %s | %s | %s |\n",
			row.Project, tagName, util.FormatQuarterHours(row.Duration())); err != nil {
			return err
		}
	}

	total := util.FormatQuarterHours(report.TotalDuration())
	_, err := fmt.Fprintf(f.w, "| Total | - | %s |\n", total)
	return err
}
