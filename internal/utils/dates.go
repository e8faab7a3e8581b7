package utils

import (
	"fmt"
	"time"
)

// WithTimeOfDay stamps the clock reading of source onto the calendar date of
// day. Used to promote bare-date inputs: at creation source is "now", on
// update it is the original transaction's date.
func WithTimeOfDay(day time.Time, source time.Time) time.Time {
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		source.Hour(), source.Minute(), source.Second(), source.Nanosecond(),
		source.Location(),
	)
}

// MonthRange expands a YYYY-MM shorthand to the half-open interval
// [month-01, next-month-01) in UTC.
func MonthRange(month string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM: %w", month, err)
	}
	return start, start.AddDate(0, 1, 0), nil
}
