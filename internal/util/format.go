package util

import (
	"fmt"
	"math"
	"time"
)

// FormatDuration renders a duration as "1h 40m", "45m" or "30s".
func FormatDuration(d time.Duration) string {
	seconds := int64(d / time.Second)
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%ds", s)
}

// FormatDurationHHMMSS renders a duration as HH:MM:SS.
func FormatDurationHHMMSS(d time.Duration) string {
	seconds := int64(d / time.Second)
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// QuarterHours converts a duration to hours rounded to the nearest 0.25,
// the resolution used in the markdown summary table.
func QuarterHours(d time.Duration) float64 {
	return math.Round(d.Hours()*4) / 4
}

// FormatQuarterHours renders QuarterHours with trailing zeros trimmed,
// e.g. 1.5, 0.25, 8.
func FormatQuarterHours(d time.Duration) string {
	v := QuarterHours(d)
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	s := fmt.Sprintf("%.2f", v)
	if s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	return s
}

// FormatClock renders a time as HH:MM in its own location.
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}
