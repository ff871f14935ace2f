package formatter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVFormatter renders reports as CSV for spreadsheet import. Durations are
// plain integer seconds so downstream tooling does not have to parse clock
// strings.
type CSVFormatter struct {
	w io.Writer
}

func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{w: w}
}

func (f *CSVFormatter) FormatDaily(report DailyReport) error {
	w := csv.NewWriter(f.w)
	defer w.Flush()

	headers := []string{"date", "start", "stop", "project", "description", "tags", "duration_seconds", "running"}
	if err := w.Write(headers); err != nil {
		return err
	}

	for _, day := range report.Days {
		for _, entry := range day.Entries {
			record := []string{
				day.Date,
				entry.Start,
				entry.Stop,
				entry.Project,
				entry.Description,
				strings.Join(entry.Tags, ";"),
				fmt.Sprintf("%d", entry.Seconds),
				fmt.Sprintf("%t", entry.Running),
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}

func (f *CSVFormatter) FormatSummary(report SummaryReport) error {
	w := csv.NewWriter(f.w)
	defer w.Flush()

	headers := []string{"project", "tag", "entry_count", "duration_seconds"}
	if err := w.Write(headers); err != nil {
		return err
	}

	for _, row := range report.Rows {
		record := []string{
			row.Project,
			row.Tag,
			fmt.Sprintf("%d", row.Count),
			fmt.Sprintf("%d", row.Seconds),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
