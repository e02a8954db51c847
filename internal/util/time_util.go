package util

import (
	"time"
)

// DateLayout is the wire and storage format for dates.
const DateLayout = "2006-01-02"

// parseLayout accepts bare month/day numbers as well as zero-padded ones,
// e.g. both 2017-01-03 and 2017-1-3.
const parseLayout = "2006-1-2"

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD value into UTC midnight.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(parseLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	return NewDate(t.Year(), int(t.Month()), t.Day()), nil
}

// DaysApart returns the absolute distance in days between two dates.
// Both inputs are expected to be UTC midnights.
func DaysApart(t1, t2 time.Time) int {
	days := int(t1.Sub(t2).Hours() / 24)
	if days < 0 {
		return -days
	}
	return days
}

func DateLte(t1, t2 time.Time) bool {
	return t1.Before(t2) || t1.Format(DateLayout) == t2.Format(DateLayout)
}
