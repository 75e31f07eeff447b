package commands

import (
	"errors"
	"fmt"
	"slices"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderInput is the raw create request as received at the boundary.
type CreateOrderInput struct {
	CustomerLocationID int64
	DeliveryDate       string
	DeliveryTime       string
	Notes              string
	Recurring          bool
	RecurrenceDays     []string
	Origin             string
	DriverID           *int64
	Lines              []order.LineDraft
}

// CreateOrderCommand represents a request to place a new order for a customer location.
// The delivery date is parsed here; the cutoff rule is checked by the handler
// because it depends on the clock.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(CreateOrderInput{
//	    CustomerLocationID: 7,
//	    DeliveryDate:       "2024-06-11",
//	    DeliveryTime:       "07:30",
//	    Lines: []order.LineDraft{{
//	        ProductID: 4, ProductName: "Marraqueta",
//	        Quantity: decimal.NewFromInt(12), UnitPrice: decimal.NewFromInt(1800),
//	    }},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerLocationID int64
	details            order.Details
	lines              []order.LineDraft

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the raw input. All field errors are joined.
func NewCreateOrderCommand(in CreateOrderInput) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
	cmd.details.Notes = in.Notes
	cmd.details.Recurring = in.Recurring
	cmd.details.DriverID = in.DriverID

	if err := errors.Join(
		cmd.setCustomerLocationID(in.CustomerLocationID),
		cmd.setDeliveryDate(in.DeliveryDate),
		cmd.setDeliveryTime(in.DeliveryTime),
		cmd.setRecurrenceDays(in.RecurrenceDays),
		cmd.setOrigin(in.Origin),
		cmd.setLines(in.Lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerLocationID() int64 {
	return c.customerLocationID
}

func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

// DeliveryDate is a shortcut for Details().DeliveryDate.
func (c CreateOrderCommand) DeliveryDate() kernel.Date {
	return c.details.DeliveryDate
}

func (c CreateOrderCommand) Lines() []order.LineDraft {
	return slices.Clone(c.lines)
}

func (c *CreateOrderCommand) setCustomerLocationID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("customer location id")
	}
	c.customerLocationID = id
	return nil
}

func (c *CreateOrderCommand) setDeliveryDate(s string) error {
	d, err := parseDeliveryDate(s)
	if err != nil {
		return err
	}
	c.details.DeliveryDate = d
	return nil
}

func (c *CreateOrderCommand) setDeliveryTime(s string) error {
	t, err := kernel.ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	c.details.DeliveryTime = t
	return nil
}

func (c *CreateOrderCommand) setRecurrenceDays(days []string) error {
	parsed, err := kernel.ParseWeekdays(days)
	if err != nil {
		return err
	}
	c.details.RecurrenceDays = parsed
	return nil
}

func (c *CreateOrderCommand) setOrigin(s string) error {
	origin, err := order.ParseOrigin(s)
	if err != nil {
		return err
	}
	c.details.Origin = origin
	return nil
}

func (c *CreateOrderCommand) setLines(lines []order.LineDraft) error {
	if err := validateDrafts(lines); err != nil {
		return err
	}
	c.lines = slices.Clone(lines)
	return nil
}

func parseDeliveryDate(s string) (kernel.Date, error) {
	if s == "" {
		return kernel.Date{}, errs.NewValueIsRequiredError("delivery date")
	}
	d, err := kernel.ParseDate(s)
	if err != nil {
		return kernel.Date{}, errs.NewValueIsInvalidErrorWithCause("delivery date", fmt.Errorf("%q is not YYYY-MM-DD", s))
	}
	return d, nil
}

func validateDrafts(lines []order.LineDraft) error {
	if len(lines) == 0 {
		return order.ErrLinesAreRequired
	}
	errList := make([]error, 0, len(lines))
	for i, l := range lines {
		if err := l.Validate(); err != nil {
			errList = append(errList, fmt.Errorf("line %d: %w", i+1, err))
		}
	}
	return errors.Join(errList...)
}
