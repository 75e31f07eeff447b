package services

import (
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"
)

// DefaultDispatchHour is the hour (24h) from which orders due today count as dispatched.
const DefaultDispatchHour = 15

// AutoDispatchPolicy decides which orders the auto-dispatch sweep escalates.
//
// An order is due when, in the business zone:
//   - its delivery date is today
//   - its status is pendiente, confirmado or en_produccion
//   - the current hour is at or past the dispatch hour
//
// Dispatched, delivered and cancelled orders are never due, which makes the
// sweep idempotent.
type AutoDispatchPolicy struct {
	hour int
}

// NewAutoDispatchPolicy returns a policy dispatching from hour, which must be within 0..23.
func NewAutoDispatchPolicy(hour int) (AutoDispatchPolicy, error) {
	if hour < 0 || hour > 23 {
		return AutoDispatchPolicy{}, errs.NewValueIsOutOfRangeError("dispatch hour", hour, 0, 23)
	}
	return AutoDispatchPolicy{hour: hour}, nil
}

// Hour returns the dispatch hour.
func (p AutoDispatchPolicy) Hour() int {
	return p.hour
}

// IsOpen reports whether the sweep has anything to do at nowInZone.
func (p AutoDispatchPolicy) IsOpen(nowInZone time.Time) bool {
	return nowInZone.Hour() >= p.hour
}

// IsDue reports whether o should be escalated to despachado at nowInZone.
func (p AutoDispatchPolicy) IsDue(o *order.Order, nowInZone time.Time) bool {
	if o == nil || !p.IsOpen(nowInZone) {
		return false
	}
	return o.Status().IsAutoDispatchable() && o.DeliveryDate().Equal(kernel.DateOf(nowInZone))
}

// Apply dispatches o when it is due and reports whether it changed.
func (p AutoDispatchPolicy) Apply(o *order.Order, nowInZone time.Time) (bool, error) {
	if !p.IsDue(o, nowInZone) {
		return false, nil
	}
	if err := o.Dispatch(); err != nil {
		return false, err
	}
	return true, nil
}
