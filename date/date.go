// Package date provides a day-granularity Date used to stamp quotations.
package date

import (
	"fmt"
	"os"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// LongFormat is the human readable format printed on quotation documents.
const LongFormat = "Monday, January 2, 2006"

// EnvTestingNow overrides Today when set to a date in DateFormat.
const EnvTestingNow = "QUOTE_TESTING_NOW"

// Date represents a date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date, or the date in QUOTE_TESTING_NOW when set.
func Today() Date {
	if s := os.Getenv(EnvTestingNow); s != "" {
		if d, err := Parse(s); err == nil {
			return d
		}
	}
	return New(time.Now().Date())
}

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Long formats the date as "Saturday, October 17, 2026".
func (d Date) Long() string { return d.time().Format(LongFormat) }

// Parse parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func Parse(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, DateFormat, err)
	}
	return New(on.Date()), nil
}
