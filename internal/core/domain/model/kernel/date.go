package kernel

import (
	"fmt"
	"time"

	"bakery/internal/pkg/errs"
)

// DateLayout is the wire and storage representation of a Date.
const DateLayout = "2006-01-02"

// ErrDateIsNotConstructed indicates a zero-value Date.
var ErrDateIsNotConstructed = errs.NewValueIsRequiredError("Date must be created via NewDate, DateOf or ParseDate")

// Date is a calendar date with no time of day and no zone.
//
// Delivery dates are business calendar days, so every cutoff and dispatch
// decision compares Dates rather than instants: two instants on the same
// calendar day in the business zone are the same Date regardless of the
// offset they carry.
//
// Example:
//
//	today := kernel.DateOf(clock.Now())
//	tomorrow := today.AddDays(1)
//	requested, err := kernel.ParseDate("2024-06-11")
//	if requested.Before(tomorrow) {
//	    // too early
//	}
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate builds a Date and rejects impossible calendar days such as 2024-02-30.
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, errs.NewValueIsInvalidErrorWithCause(
			"date",
			fmt.Errorf("%04d-%02d-%02d is not a calendar day", year, month, day),
		)
	}
	return Date{year: year, month: month, day: day}, nil
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, errs.NewValueIsRequiredError("date")
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}
	return DateOf(t), nil
}

// Validate reports whether the Date was constructed.
func (d Date) Validate() error {
	if d.IsZero() {
		return ErrDateIsNotConstructed
	}
	return nil
}

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool {
	return d.year == 0 && d.month == 0 && d.day == 0
}

func (d Date) Year() int         { return d.year }
func (d Date) Month() time.Month { return d.month }
func (d Date) Day() int          { return d.day }

// AddDays returns the date n calendar days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

// Equal reports whether d and other are the same calendar day.
func (d Date) Equal(other Date) bool {
	return d == other
}

// Time returns midnight UTC of d, which is how dates are stored.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// String implements fmt.Stringer using DateLayout.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(DateLayout)
}
