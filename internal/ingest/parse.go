package ingest

import (
	"strconv"
	"strings"
	"time"
)

// dateLayouts covers the formats seen across the four exports: ISO
// dates with and without clock, dotted Russian dates, and RFC3339.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC3339,
	"02.01.2006 15:04:05",
	"02.01.2006 15:04",
	"02.01.2006",
}

// ParseDate parses a cell into a time. Unparseable or empty input
// yields the zero time, never an error.
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ParseNumber parses a cell into a float, tolerating currency symbols,
// spaces, and thousand separators. Unparseable input yields 0.
func ParseNumber(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return f
}

// ParseInt is ParseNumber truncated to an integer count.
func ParseInt(s string) int {
	return int(ParseNumber(s))
}
