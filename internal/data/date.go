package data

import (
	"errors"
	"strconv"
	"time"
)

// ErrInvalidDateFormat is returned when a publication date cannot be parsed
// from its JSON representation.
var ErrInvalidDateFormat = errors.New(`invalid date format, expected "YYYY-MM-DD"`)

// dateLayout is the wire format for publication dates.
const dateLayout = "2006-01-02"

// Date is a calendar date without a time-of-day component.
// It marshals to and from a JSON string in "YYYY-MM-DD" form, matching the
// format clients send for publication_date.
type Date struct {
	time.Time
}

// NewDate builds a Date from a year, month and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date in UTC.
func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// AddDays returns the date d days later (or earlier, when negative).
func (d Date) AddDays(days int) Date {
	return Date{Time: d.AddDate(0, 0, days)}
}

// Before reports whether d falls strictly before other.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// String returns the date in "YYYY-MM-DD" form.
func (d Date) String() string {
	return d.Format(dateLayout)
}

// MarshalJSON encodes the date as a quoted "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// UnmarshalJSON decodes a quoted "YYYY-MM-DD" string into the date.
// Any other shape yields ErrInvalidDateFormat.
func (d *Date) UnmarshalJSON(data []byte) error {
	unquoted, err := strconv.Unquote(string(data))
	if err != nil {
		return ErrInvalidDateFormat
	}

	parsed, err := time.Parse(dateLayout, unquoted)
	if err != nil {
		return ErrInvalidDateFormat
	}

	d.Time = parsed
	return nil
}
