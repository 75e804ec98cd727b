package model

import "time"

// DateOnly truncates t to its calendar date in UTC. Attribution and
// journey-gap comparisons are date-only; time of day never matters.
func DateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole-day difference between the calendar
// dates of a and b. Same-day inputs yield 0 regardless of clock time.
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}
