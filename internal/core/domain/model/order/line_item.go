package order

import (
	"errors"
	"fmt"

	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrLineItemIsNotConstructed is returned for LineItems not built by NewLineItem or RestoreLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineDraft is a line as submitted by a caller, before ids are issued.
type LineDraft struct {
	ProductID   int64
	ProductName string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Unit        string
}

// Validate applies the same field rules as NewLineItem without issuing ids,
// so callers can reject bad input before opening a transaction.
func (d LineDraft) Validate() error {
	var l LineItem
	return errors.Join(
		l.setProductID(d.ProductID),
		l.setQuantity(d.Quantity),
		l.setUnitPrice(d.UnitPrice),
		l.setUnit(d.Unit),
	)
}

// LineItem is a product, quantity and price entry belonging to one order.
//
// Invariants:
//   - id is unique across all orders (global sequence)
//   - quantity > 0 and unitPrice >= 0
//   - subtotal == quantity * unitPrice, fixed when the line is written
//
// The product name is a copy taken when the line was written, not a live join.
type LineItem struct {
	id          int64
	orderID     int64
	productID   int64
	productName string
	quantity    decimal.Decimal
	unit        Unit
	unitPrice   decimal.Decimal
	subtotal    decimal.Decimal

	guard guard.ConstructorGuard
}

// NewLineItem validates a draft and computes its subtotal.
func NewLineItem(id, orderID int64, draft LineDraft) (*LineItem, error) {
	line := &LineItem{
		productName: draft.ProductName,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setID(id),
		line.setOrderID(orderID),
		line.setProductID(draft.ProductID),
		line.setQuantity(draft.Quantity),
		line.setUnitPrice(draft.UnitPrice),
		line.setUnit(draft.Unit),
	); err != nil {
		return nil, err
	}

	line.subtotal = line.quantity.Mul(line.unitPrice)
	return line, nil
}

// RestoreLineItem rebuilds a persisted line. The stored subtotal must still
// match quantity * unitPrice.
func RestoreLineItem(id, orderID int64, draft LineDraft, subtotal decimal.Decimal) (*LineItem, error) {
	line, err := NewLineItem(id, orderID, draft)
	if err != nil {
		return nil, err
	}
	if !line.subtotal.Equal(subtotal) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"subtotal",
			fmt.Errorf("line %d stores %s but %s x %s = %s", id, subtotal, line.quantity, line.unitPrice, line.subtotal),
		)
	}
	return line, nil
}

// Validate ensures the line was created through its constructor.
func (l *LineItem) Validate() error {
	if l == nil {
		return ErrLineItemIsNotConstructed
	}
	return l.guard.Validate(ErrLineItemIsNotConstructed)
}

func (l *LineItem) ID() int64                  { return l.id }
func (l *LineItem) OrderID() int64             { return l.orderID }
func (l *LineItem) ProductID() int64           { return l.productID }
func (l *LineItem) ProductName() string        { return l.productName }
func (l *LineItem) Quantity() decimal.Decimal  { return l.quantity }
func (l *LineItem) Unit() Unit                 { return l.unit }
func (l *LineItem) UnitPrice() decimal.Decimal { return l.unitPrice }
func (l *LineItem) Subtotal() decimal.Decimal  { return l.subtotal }

func (l *LineItem) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("line id", fmt.Errorf("%d is not greater than 0", id))
	}
	l.id = id
	return nil
}

func (l *LineItem) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not greater than 0", orderID))
	}
	l.orderID = orderID
	return nil
}

func (l *LineItem) setProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValueIsRequiredError("product id")
	}
	l.productID = productID
	return nil
}

func (l *LineItem) setQuantity(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%s is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *LineItem) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unit price", fmt.Errorf("%s is negative", unitPrice))
	}
	l.unitPrice = unitPrice
	return nil
}

func (l *LineItem) setUnit(unit string) error {
	u, err := ParseUnit(unit)
	if err != nil {
		return err
	}
	l.unit = u
	return nil
}

// SumSubtotals returns the sum of the lines' subtotals.
func SumSubtotals(lines []*LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.subtotal)
	}
	return total
}
