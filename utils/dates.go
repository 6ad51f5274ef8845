// utils/dates.go
package utils

import "time"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// DaysBetween counts the calendar days from start to end, ignoring the
// time-of-day components. Normalizing both dates into UTC keeps every day
// exactly 24 hours regardless of DST in the inputs' locations.
func DaysBetween(start, end time.Time) int {
	y1, m1, d1 := start.Date()
	y2, m2, d2 := end.Date()
	a := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	b := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// ParseDate parses a calendar date in YYYY-MM-DD form.
func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}