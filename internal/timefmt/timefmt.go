// Package timefmt formats backend timestamps for terminal output.
package timefmt

import (
	"fmt"
	"time"
)

// Backend timestamps arrive in a few shapes: ISO-8601 from the check
// endpoints, SQL-style "2006-01-02 15:04:05" from listing rows.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999",
	"2006-01-02 15:04:05",
}

// parse tries the known backend layouts.
func parse(ts string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Clock renders a nullable timestamp as "15:04", or "-" when absent.
// Unparseable values are passed through untouched.
func Clock(ts *string) string {
	if ts == nil || *ts == "" {
		return "-"
	}
	if t, ok := parse(*ts); ok {
		return t.Format("15:04")
	}
	return *ts
}

// Worked renders the span between check-in and check-out, or "" when the
// day is incomplete.
func Worked(in, out *string) string {
	if in == nil || out == nil {
		return ""
	}
	start, ok1 := parse(*in)
	end, ok2 := parse(*out)
	if !ok1 || !ok2 || end.Before(start) {
		return ""
	}
	return FormatDuration(int64(end.Sub(start).Seconds()))
}

// FormatDuration formats seconds as a human-readable string like
// "8h 12m" or "45m" or "30s".
func FormatDuration(seconds int64) string {
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
