package commands

import (
	"errors"
	"slices"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderInput is a raw partial update. Nil fields are absent from the
// request and leave the order untouched. A non-nil Lines replaces every line.
type UpdateOrderInput struct {
	OrderID        int64
	DeliveryDate   *string
	DeliveryTime   *string
	Notes          *string
	Status         *string
	Recurring      *bool
	RecurrenceDays *[]string
	Origin         *string
	DriverID       *int64
	EmailSent      *bool
	MessageSent    *bool
	Lines          *[]order.LineDraft
}

// UpdateOrderCommand is a validated partial update of one order.
// The cutoff rule is not re-checked on update.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      int64
	changes      order.Changes
	lines        []order.LineDraft
	replaceLines bool

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand parses every present field. All field errors are joined.
func NewUpdateOrderCommand(in UpdateOrderInput) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
	cmd.changes.Notes = in.Notes
	cmd.changes.Recurring = in.Recurring
	cmd.changes.DriverID = in.DriverID
	cmd.changes.EmailSent = in.EmailSent
	cmd.changes.MessageSent = in.MessageSent

	if err := errors.Join(
		cmd.setOrderID(in.OrderID),
		cmd.setDeliveryDate(in.DeliveryDate),
		cmd.setDeliveryTime(in.DeliveryTime),
		cmd.setStatus(in.Status),
		cmd.setRecurrenceDays(in.RecurrenceDays),
		cmd.setOrigin(in.Origin),
		cmd.setLines(in.Lines),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c UpdateOrderCommand) Changes() order.Changes {
	return c.changes
}

// Lines returns the replacement lines and whether the request carried any.
func (c UpdateOrderCommand) Lines() ([]order.LineDraft, bool) {
	return slices.Clone(c.lines), c.replaceLines
}

func (c *UpdateOrderCommand) setOrderID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("order id")
	}
	c.orderID = id
	return nil
}

func (c *UpdateOrderCommand) setDeliveryDate(s *string) error {
	if s == nil {
		return nil
	}
	d, err := parseDeliveryDate(*s)
	if err != nil {
		return err
	}
	c.changes.DeliveryDate = &d
	return nil
}

func (c *UpdateOrderCommand) setDeliveryTime(s *string) error {
	if s == nil {
		return nil
	}
	t, err := kernel.ParseTimeOfDay(*s)
	if err != nil {
		return err
	}
	c.changes.DeliveryTime = &t
	return nil
}

func (c *UpdateOrderCommand) setStatus(s *string) error {
	if s == nil {
		return nil
	}
	status, err := order.ParseStatus(*s)
	if err != nil {
		return err
	}
	c.changes.Status = &status
	return nil
}

func (c *UpdateOrderCommand) setRecurrenceDays(days *[]string) error {
	if days == nil {
		return nil
	}
	parsed, err := kernel.ParseWeekdays(*days)
	if err != nil {
		return err
	}
	c.changes.RecurrenceDays = &parsed
	return nil
}

func (c *UpdateOrderCommand) setOrigin(s *string) error {
	if s == nil {
		return nil
	}
	origin, err := order.ParseOrigin(*s)
	if err != nil {
		return err
	}
	c.changes.Origin = &origin
	return nil
}

func (c *UpdateOrderCommand) setLines(lines *[]order.LineDraft) error {
	if lines == nil {
		return nil
	}
	if err := validateDrafts(*lines); err != nil {
		return err
	}
	c.lines = slices.Clone(*lines)
	c.replaceLines = true
	return nil
}
