package formatter

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"
)

// JSONFormatter renders reports as indented JSON.
type JSONFormatter struct {
	w io.Writer
}

func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{w: w}
}

func (f *JSONFormatter) FormatDaily(report DailyReport) error {
	return f.encode(report)
}

func (f *JSONFormatter) FormatSummary(report SummaryReport) error {
	return f.encode(report)
}

func (f *JSONFormatter) encode(v interface{}) error {
	data, err := sonic.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(f.w, string(data))
	return err
}
