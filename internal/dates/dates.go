// Package dates provides calendar-day helpers used for trip date validation,
// activity grouping, and email formatting. All day-granularity comparisons
// truncate timestamps to midnight UTC, so the bucketing policy is explicit
// and deterministic regardless of the client's offset.
package dates

import "time"

// DayOf truncates t to midnight UTC of its calendar day.
func DayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	return DayOf(a).Equal(DayOf(b))
}

// DaysBetween returns the number of whole calendar days from the day of
// start to the day of end. Zero when both fall on the same day, negative
// when end precedes start.
func DaysBetween(start, end time.Time) int {
	return int(DayOf(end).Sub(DayOf(start)).Hours() / 24)
}

// FormatLong renders t as a human-readable date, e.g. "March 1, 2025".
func FormatLong(t time.Time) string {
	return t.UTC().Format("January 2, 2006")
}
