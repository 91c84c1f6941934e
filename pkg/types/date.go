package types

import (
	"fmt"
	"time"
)

// dateLayout is the wire and seed-file format for calendar days.
const dateLayout = "2006-01-02"

// Date is a calendar day treated as an opaque comparable key. Appointments
// have no time-of-day granularity.
type Date string

// ParseDate parses a calendar day in YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", NewValidationError(ErrCodeInvalidInput, fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", s))
	}
	return Date(t.Format(dateLayout)), nil
}

// DateOf truncates a point in time to its calendar day.
func DateOf(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

// String returns the day in YYYY-MM-DD form.
func (d Date) String() string {
	return string(d)
}
