// Package formatter renders daily log and summary reports. Formatters
// consume render-ready rows with resolved names; all grouping and duration
// math happens upstream in the core packages.
package formatter

import (
	"fmt"
	"io"
	"time"
)

// EntryLine is one rendered entry of a daily log.
type EntryLine struct {
	Start       string   `json:"start"`
	Stop        string   `json:"stop,omitempty"`
	Project     string   `json:"project"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
	Seconds     int64    `json:"duration_seconds"`
	Running     bool     `json:"running,omitempty"`
}

// DaySection is one calendar day of a daily report.
type DaySection struct {
	Date    string      `json:"date"`
	Entries []EntryLine `json:"entries"`
	// End is the clock time the last stopped entry of the day ended at,
	// empty while the day's last entry is still running.
	End     string `json:"end,omitempty"`
	Seconds int64  `json:"total_seconds"`
}

// DailyReport is the render-ready daily log.
type DailyReport struct {
	Timezone string       `json:"timezone"`
	Days     []DaySection `json:"days"`
}

// SummaryRow is one group of a summary report.
type SummaryRow struct {
	Project string `json:"project,omitempty"`
	Tag     string `json:"tag,omitempty"`
	Count   int    `json:"entry_count"`
	Seconds int64  `json:"duration_seconds"`
}

// SummaryReport is the render-ready summary.
type SummaryReport struct {
	From     string       `json:"from"`
	To       string       `json:"to"`
	GroupBy  string       `json:"group_by"`
	Timezone string       `json:"timezone"`
	Rows     []SummaryRow `json:"rows"`
	Seconds  int64        `json:"total_seconds"`
}

// Duration converts a row's seconds back to a time.Duration for display.
func (r SummaryRow) Duration() time.Duration {
	return time.Duration(r.Seconds) * time.Second
}

// TotalDuration converts the report total back to a time.Duration.
func (r SummaryReport) TotalDuration() time.Duration {
	return time.Duration(r.Seconds) * time.Second
}

// Formatter renders both report kinds to its writer.
type Formatter interface {
	FormatDaily(report DailyReport) error
	FormatSummary(report SummaryReport) error
}

// New returns the formatter for an output format name. Markdown is the
// default; unknown names are an error so typos fail loudly.
func New(format string, w io.Writer) (Formatter, error) {
	switch format {
	case "", "markdown", "md":
		return NewMarkdownFormatter(w), nil
	case "table":
		return NewTableFormatter(w), nil
	case "csv":
		return NewCSVFormatter(w), nil
	case "json":
		return NewJSONFormatter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (markdown, table, csv, json)", format)
	}
}
