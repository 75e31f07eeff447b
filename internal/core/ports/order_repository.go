// Package ports defines the contracts between the order lifecycle core and
// its infrastructure: repositories, the unit of work and the business clock.
package ports

import (
	"context"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
)

// OrderFilter narrows order listings. Nil fields do not restrict; set fields
// are combined with AND.
type OrderFilter struct {
	DeliveryDate       *kernel.Date
	CustomerLocationID *int64
	CompanyID          *int64
	Status             *order.Status
}

// OrderReader is the read side used by queries.
type OrderReader interface {
	// Find returns the orders matching filter, each with its lines, ordered by id.
	Find(ctx context.Context, filter OrderFilter) ([]*order.Order, error)

	// Get returns one order with its lines, or errs.ObjectNotFoundError.
	Get(ctx context.Context, id int64) (*order.Order, error)
}

// OrderRepository defines the persistence contract for order aggregates.
// Repositories obtained from a UnitOfWork act inside its transaction.
type OrderRepository interface {
	OrderReader

	// NextID issues the next order id from the store's sequence.
	NextID(ctx context.Context) (int64, error)

	// NextLineIDs issues n fresh line item ids from the global line sequence,
	// in increasing order.
	NextLineIDs(ctx context.Context, n int) ([]int64, error)

	// Add persists a new order and all of its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the order header and makes the stored lines equal to the
	// aggregate's lines: lines no longer present are removed, new ones inserted.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// FindDueForDispatch returns the orders delivering on date whose status is
	// one of statuses. Inside a transaction the rows are locked.
	FindDueForDispatch(ctx context.Context, date kernel.Date, statuses []order.Status) ([]*order.Order, error)
}

// Clock is the source of "now" for business rules.
type Clock interface {
	// Now is the current instant in the business zone, or the process zone when
	// the business zone is unavailable.
	Now() time.Time

	// NowInZone is the current instant in the business zone, or
	// kernel.ErrTimezoneUnavailable.
	NowInZone() (time.Time, error)
}
