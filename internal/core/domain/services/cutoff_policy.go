package services

import (
	"fmt"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
)

// DefaultCutoffHour is the hour (24h) from which next-day delivery is no longer offered.
const DefaultCutoffHour = 18

// CutoffPolicy restricts how soon an order's delivery date may be.
//
// Business rules:
//   - placed before the cutoff hour: earliest delivery is tomorrow
//   - placed at or after the cutoff hour: earliest delivery is the day after tomorrow
//   - comparisons are made on calendar dates in now's zone, never on instants
//
// Example:
//
//	policy := services.NewCutoffPolicy(18)
//	if err := policy.Check(requested, clock.Now()); err != nil {
//	    return err // errs.ErrValueIsInvalid
//	}
type CutoffPolicy struct {
	hour int
}

// NewCutoffPolicy returns a policy cutting off at hour, which must be within 0..23.
func NewCutoffPolicy(hour int) (CutoffPolicy, error) {
	if hour < 0 || hour > 23 {
		return CutoffPolicy{}, errs.NewValueIsOutOfRangeError("cutoff hour", hour, 0, 23)
	}
	return CutoffPolicy{hour: hour}, nil
}

// Hour returns the cutoff hour.
func (p CutoffPolicy) Hour() int {
	return p.hour
}

// IsAfterCutoff reports whether now is at or past the cutoff hour.
func (p CutoffPolicy) IsAfterCutoff(now time.Time) bool {
	return now.Hour() >= p.hour
}

// EarliestDeliveryDate returns the first calendar date an order placed at now may be delivered.
func (p CutoffPolicy) EarliestDeliveryDate(now time.Time) kernel.Date {
	today := kernel.DateOf(now)
	if p.IsAfterCutoff(now) {
		return today.AddDays(2)
	}
	return today.AddDays(1)
}

// Check fails when requested is earlier than EarliestDeliveryDate(now). The
// message names the rule that applied so the customer knows why.
func (p CutoffPolicy) Check(requested kernel.Date, now time.Time) error {
	if err := requested.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("delivery date", err)
	}

	earliest := p.EarliestDeliveryDate(now)
	if !requested.Before(earliest) {
		return nil
	}

	if p.IsAfterCutoff(now) {
		return errs.NewValueIsInvalidErrorWithCause("delivery date", fmt.Errorf(
			"orders placed at or after %02d:00 must be delivered from the day after tomorrow (%s) onward, got %s",
			p.hour, earliest, requested,
		))
	}
	return errs.NewValueIsInvalidErrorWithCause("delivery date", fmt.Errorf(
		"orders placed before %02d:00 must be delivered from tomorrow (%s) onward, got %s",
		p.hour, earliest, requested,
	))
}
