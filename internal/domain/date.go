package domain

import (
	"fmt"
	"time"
)

// Date is a calendar date in transit form: exactly "YYYY-MM-DD",
// no time-of-day, no timezone.
type Date string

const dateLayout = "2006-01-02"

// NormalizeDate coerces an ISO-ish timestamp or an already-short date to
// Date by taking the first 10 characters. Idempotent for valid input.
func NormalizeDate(s string) (Date, error) {
	if len(s) < len(dateLayout) {
		return "", fmt.Errorf("not a calendar date: %q", s)
	}

	ymd := s[:len(dateLayout)]
	if _, err := time.Parse(dateLayout, ymd); err != nil {
		return "", fmt.Errorf("not a calendar date: %q", s)
	}

	return Date(ymd), nil
}

// ValidDate reports whether s is already in canonical form.
func ValidDate(s string) bool {
	if len(s) != len(dateLayout) {
		return false
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

func DateFromTime(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

// AddDays shifts d by the given number of days, negative values move back.
func (d Date) AddDays(days int) (Date, error) {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return "", fmt.Errorf("not a calendar date: %q", d)
	}

	return DateFromTime(t.AddDate(0, 0, days)), nil
}

func (d Date) String() string {
	return string(d)
}
