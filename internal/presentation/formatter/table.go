package formatter

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/iimuz/toggl-tools-go/internal/util"
)

// descriptionColumn indexes the only column the table formatter is allowed
// to shrink when the terminal is too narrow.
const descriptionColumn = 3

// TableFormatter renders reports as box-drawing tables. Cell widths are
// measured with runewidth so CJK descriptions line up, and the description
// column is truncated to fit the terminal when writing to one.
type TableFormatter struct {
	w io.Writer
}

func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{w: w}
}

// FormatDaily renders one row per entry. Running entries show an empty Stop
// cell.
func (f *TableFormatter) FormatDaily(report DailyReport) error {
	headers := []string{"Date", "Start", "Stop", "Description", "Project", "Tags", "Duration"}

	var rows [][]string
	var total int64
	for _, day := range report.Days {
		for _, entry := range day.Entries {
			stop := entry.Stop
			if entry.Running {
				stop = "(running)"
			}
			rows = append(rows, []string{
				day.Date,
				entry.Start,
				stop,
				entry.Description,
				entry.Project,
				strings.Join(entry.Tags, ", "),
				util.FormatDurationHHMMSS(secondsToDuration(entry.Seconds)),
			})
			total += entry.Seconds
		}
	}
	totalRow := []string{"Total", "", "", "", "", "", util.FormatDurationHHMMSS(secondsToDuration(total))}

	return f.render(headers, rows, totalRow, []bool{false, false, false, false, false, false, true})
}

// FormatSummary renders one row per group.
func (f *TableFormatter) FormatSummary(report SummaryReport) error {
	headers := []string{"Project", "Tag", "Entries", "Duration"}

	var rows [][]string
	for _, row := range report.Rows {
		tagName := row.Tag
		if tagName == "" {
			tagName = "-"
		}
		rows = append(rows, []string{
			row.Project,
			tagName,
			fmt.Sprintf("%d", row.Count),
			util.FormatDuration(row.Duration()),
		})
	}
	totalRow := []string{"Total", "", "", util.FormatDuration(report.TotalDuration())}

	return f.render(headers, rows, totalRow, []bool{false, false, true, true})
}

// render prints headers, rows and a trailing total row between borders.
// rightAlign marks numeric columns.
func (f *TableFormatter) render(headers []string, rows [][]string, totalRow []string, rightAlign []bool) error {
	widths := f.columnWidths(headers, rows, totalRow)

	f.printBorder(widths, "top")
	f.printRow(headers, widths, rightAlign)
	f.printBorder(widths, "middle")
	for _, row := range rows {
		f.printRow(row, widths, rightAlign)
	}
	f.printBorder(widths, "middle")
	f.printRow(totalRow, widths, rightAlign)
	f.printBorder(widths, "bottom")

	return nil
}

// columnWidths sizes each column to its widest cell, then shrinks the
// description column until the table fits the terminal.
func (f *TableFormatter) columnWidths(headers []string, rows [][]string, totalRow []string) []int {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = runewidth.StringWidth(header)
	}
	measure := func(row []string) {
		for i, value := range row {
			if w := runewidth.StringWidth(value); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for _, row := range rows {
		measure(row)
	}
	measure(totalRow)

	// Total rendered width: "│ cell │" per column adds 3 per cell plus the
	// closing border.
	tableWidth := 1
	for _, w := range widths {
		tableWidth += w + 3
	}

	if limit := f.terminalWidth(); limit > 0 && tableWidth > limit && len(widths) > descriptionColumn {
		over := tableWidth - limit
		const minDescription = 10
		if widths[descriptionColumn]-over >= minDescription {
			widths[descriptionColumn] -= over
		} else if widths[descriptionColumn] > minDescription {
			widths[descriptionColumn] = minDescription
		}
	}

	return widths
}

// terminalWidth returns the width of the underlying terminal, or 0 when the
// writer is not one (pipes, files, test buffers).
func (f *TableFormatter) terminalWidth() int {
	file, ok := f.w.(*os.File)
	if !ok {
		return 0
	}
	fd := int(file.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}

// printBorder prints table borders (top, middle, bottom)
func (f *TableFormatter) printBorder(widths []int, borderType string) {
	var left, middle, right string

	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	case "bottom":
		left, middle, right = "└", "┴", "┘"
	}

	fmt.Fprint(f.w, left)
	for i, width := range widths {
		fmt.Fprint(f.w, strings.Repeat("─", width+2))
		if i < len(widths)-1 {
			fmt.Fprint(f.w, middle)
		}
	}
	fmt.Fprintln(f.w, right)
}

// printRow prints a data row with proper alignment and width-aware padding.
func (f *TableFormatter) printRow(values []string, widths []int, rightAlign []bool) {
	fmt.Fprint(f.w, "│")
	for i, value := range values {
		cell := runewidth.Truncate(value, widths[i], "…")
		if rightAlign[i] {
			cell = runewidth.FillLeft(cell, widths[i])
		} else {
			cell = runewidth.FillRight(cell, widths[i])
		}
		fmt.Fprintf(f.w, " %s │", cell)
	}
	fmt.Fprintln(f.w)
}

func secondsToDuration(seconds int64) time.Duration {
	return time.Duration(seconds) * time.Second
}
