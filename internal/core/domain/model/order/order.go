package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"bakery/internal/core/domain/model/customer"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrLinesAreRequired is returned when an order would end up with no lines.
	ErrLinesAreRequired = errs.NewValueIsRequiredError("lines")
)

// Details are the caller-controlled attributes of a new order.
type Details struct {
	DeliveryDate   kernel.Date
	DeliveryTime   kernel.TimeOfDay
	Notes          string
	Recurring      bool
	RecurrenceDays []kernel.Weekday
	Origin         Origin
	DriverID       *int64
}

// Changes is a shallow patch for Order.ApplyChanges. Nil fields are left untouched.
// Total is deliberately absent: it only moves with the lines.
type Changes struct {
	DeliveryDate   *kernel.Date
	DeliveryTime   *kernel.TimeOfDay
	Notes          *string
	Status         *Status
	Recurring      *bool
	RecurrenceDays *[]kernel.Weekday
	Origin         *Origin
	DriverID       *int64
	EmailSent      *bool
	MessageSent    *bool
}

// Order is the aggregate root of the order lifecycle: a delivery requested by a
// customer location for a given date, with its line items.
//
// Order follows these invariants:
//   - id and line ids are positive and issued by the store
//   - companyID is the company of the customer location at creation time
//   - there is at least one line, and every line belongs to this order
//   - total == sum of the lines' subtotals; there is no total setter
//   - status changes respect Status.TransitionTo (terminal states are final)
//   - orders are never deleted, cancellation is a status
type Order struct {
	id                 int64
	customerLocationID int64
	companyID          int64
	createdOn          kernel.Date
	createdAt          time.Time
	deliveryDate       kernel.Date
	deliveryTime       kernel.TimeOfDay
	status             Status
	total              decimal.Decimal
	notes              string
	recurring          bool
	recurrenceDays     []kernel.Weekday
	origin             Origin
	driverID           *int64
	emailSent          bool
	messageSent        bool
	lines              []*LineItem

	isConstructed bool
}

// NewOrder creates a pending order for a customer location.
//
// Parameters:
//   - id: identifier issued by the store's order sequence
//   - location: the ordering customer location; its company becomes the order's company
//   - details: delivery date/time, notes, recurrence, origin, driver
//   - createdAt: placement instant, in the business zone
//   - lines: at least one line, all built for id
//
// The order starts as Pending with both notification flags false and its
// total computed from the lines. Cutoff rules are checked by the caller
// (see services.CutoffPolicy) since they depend on the clock.
func NewOrder(
	id int64,
	location *customer.Location,
	details Details,
	createdAt time.Time,
	lines []*LineItem,
) (*Order, error) {
	if err := location.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		customerLocationID: location.ID(),
		companyID:          location.CompanyID(),
		createdOn:          kernel.DateOf(createdAt),
		createdAt:          createdAt,
		status:             Pending,
		notes:              strings.TrimSpace(details.Notes),
		recurring:          details.Recurring,
		recurrenceDays:     slices.Clone(details.RecurrenceDays),
		driverID:           details.DriverID,
		isConstructed:      true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setDeliveryDate(details.DeliveryDate),
		o.setDeliveryTime(details.DeliveryTime),
		o.setOrigin(details.Origin),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Snapshot is the full persisted state of an order, used to rebuild it.
type Snapshot struct {
	ID                 int64
	CustomerLocationID int64
	CompanyID          int64
	CreatedOn          kernel.Date
	CreatedAt          time.Time
	DeliveryDate       kernel.Date
	DeliveryTime       kernel.TimeOfDay
	Status             Status
	Total              decimal.Decimal
	Notes              string
	Recurring          bool
	RecurrenceDays     []kernel.Weekday
	Origin             Origin
	DriverID           *int64
	EmailSent          bool
	MessageSent        bool
	Lines              []*LineItem
}

// RestoreOrder rebuilds an order from storage. The stored total must equal the
// sum of the stored lines; a mismatch means the row was written around the
// aggregate and is reported instead of silently repaired.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		customerLocationID: s.CustomerLocationID,
		companyID:          s.CompanyID,
		createdOn:          s.CreatedOn,
		createdAt:          s.CreatedAt,
		notes:              s.Notes,
		recurring:          s.Recurring,
		recurrenceDays:     slices.Clone(s.RecurrenceDays),
		driverID:           s.DriverID,
		emailSent:          s.EmailSent,
		messageSent:        s.MessageSent,
		isConstructed:      true,
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setDeliveryDate(s.DeliveryDate),
		o.setDeliveryTime(s.DeliveryTime),
		o.setOrigin(s.Origin),
		o.setStatus(s.Status),
		o.setLines(s.Lines),
	); err != nil {
		return nil, err
	}

	if !o.total.Equal(s.Total) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"total",
			fmt.Errorf("order %d stores %s but its lines sum to %s", s.ID, s.Total, o.total),
		)
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() int64                        { return o.id }
func (o *Order) CustomerLocationID() int64        { return o.customerLocationID }
func (o *Order) CompanyID() int64                 { return o.companyID }
func (o *Order) CreatedOn() kernel.Date           { return o.createdOn }
func (o *Order) CreatedAt() time.Time             { return o.createdAt }
func (o *Order) DeliveryDate() kernel.Date        { return o.deliveryDate }
func (o *Order) DeliveryTime() kernel.TimeOfDay   { return o.deliveryTime }
func (o *Order) Status() Status                   { return o.status }
func (o *Order) Total() decimal.Decimal           { return o.total }
func (o *Order) Notes() string                    { return o.notes }
func (o *Order) Recurring() bool                  { return o.recurring }
func (o *Order) RecurrenceDays() []kernel.Weekday { return slices.Clone(o.recurrenceDays) }
func (o *Order) Origin() Origin                   { return o.origin }
func (o *Order) DriverID() *int64                 { return o.driverID }
func (o *Order) EmailSent() bool                  { return o.emailSent }
func (o *Order) MessageSent() bool                { return o.messageSent }

// Lines returns the order's line items. The slice is a copy; the items are shared.
func (o *Order) Lines() []*LineItem {
	return slices.Clone(o.lines)
}

// LineIDs returns the ids of the current lines.
func (o *Order) LineIDs() []int64 {
	ids := make([]int64, len(o.lines))
	for i, l := range o.lines {
		ids[i] = l.ID()
	}
	return ids
}

// ApplyChanges merges a shallow patch. Validation happens before anything is
// written, so a rejected patch leaves the order untouched.
func (o *Order) ApplyChanges(c Changes) error {
	next := *o

	var errList []error
	if c.DeliveryDate != nil {
		errList = append(errList, next.setDeliveryDate(*c.DeliveryDate))
	}
	if c.DeliveryTime != nil {
		errList = append(errList, next.setDeliveryTime(*c.DeliveryTime))
	}
	if c.Origin != nil {
		errList = append(errList, next.setOrigin(*c.Origin))
	}
	if c.Status != nil {
		status, err := o.status.TransitionTo(*c.Status)
		errList = append(errList, err)
		next.status = status
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	if c.Notes != nil {
		next.notes = strings.TrimSpace(*c.Notes)
	}
	if c.Recurring != nil {
		next.recurring = *c.Recurring
	}
	if c.RecurrenceDays != nil {
		next.recurrenceDays = slices.Clone(*c.RecurrenceDays)
	}
	if c.DriverID != nil {
		driverID := *c.DriverID
		next.driverID = &driverID
	}
	if c.EmailSent != nil {
		next.emailSent = *c.EmailSent
	}
	if c.MessageSent != nil {
		next.messageSent = *c.MessageSent
	}

	*o = next
	return nil
}

// ReplaceLines discards every current line and recomputes the total from the
// new ones. The new lines must carry fresh ids issued for this order.
func (o *Order) ReplaceLines(lines []*LineItem) error {
	for _, l := range lines {
		if l != nil && slices.Contains(o.LineIDs(), l.ID()) {
			return errs.NewValueIsInvalidErrorWithCause(
				"lines",
				fmt.Errorf("line id %d is already used by order %d", l.ID(), o.id),
			)
		}
	}
	return o.setLines(lines)
}

// Cancel moves the order to Cancelled. Lines and total are kept.
func (o *Order) Cancel() error {
	status, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = status
	return nil
}

// Dispatch moves the order to Dispatched. Used by the auto-dispatch sweep.
func (o *Order) Dispatch() error {
	status, err := o.status.Dispatch()
	if err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

func (o *Order) setDeliveryDate(d kernel.Date) error {
	if err := d.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("delivery date", err)
	}
	o.deliveryDate = d
	return nil
}

func (o *Order) setDeliveryTime(t kernel.TimeOfDay) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("delivery time")
	}
	o.deliveryTime = t
	return nil
}

func (o *Order) setOrigin(origin Origin) error {
	if origin == "" {
		origin = OriginManual
	}
	parsed, err := ParseOrigin(string(origin))
	if err != nil {
		return err
	}
	o.origin = parsed
	return nil
}

func (o *Order) setStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	o.status = s
	return nil
}

func (o *Order) setLines(lines []*LineItem) error {
	if len(lines) == 0 {
		return ErrLinesAreRequired
	}
	seen := make(map[int64]bool, len(lines))
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return err
		}
		if l.OrderID() != o.id {
			return errs.NewValueIsInvalidErrorWithCause(
				"lines",
				fmt.Errorf("line %d belongs to order %d, not %d", l.ID(), l.OrderID(), o.id),
			)
		}
		if seen[l.ID()] {
			return errs.NewValueIsInvalidErrorWithCause("lines", fmt.Errorf("line id %d is duplicated", l.ID()))
		}
		seen[l.ID()] = true
	}
	o.lines = slices.Clone(lines)
	o.total = SumSubtotals(o.lines)
	return nil
}
