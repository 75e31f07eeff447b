// Package memory provides an in-process implementation of the order store.
//
// The store is single-writer: a unit of work holds the store lock from Begin
// until Commit or Rollback and works on a private copy of the state, which
// Commit publishes. Rolled-back work, including issued ids, leaves no trace,
// so ids stay gap-free. Reads outside a unit of work take the lock briefly.
//
// Orders are kept as snapshots and rebuilt on every read, so callers never
// share a live aggregate with the store.
package memory

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"

	"bakery/internal/core/domain/model/customer"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/errs"
)

// ErrNoTransaction is returned by Commit and Rollback without an active Begin.
var ErrNoTransaction = errors.New("no active transaction")

type state struct {
	companies map[int64]*customer.Company
	locations map[int64]*customer.Location
	orders    map[int64]order.Snapshot
	lastOrder int64
	lastLine  int64
}

func newState() state {
	return state{
		companies: make(map[int64]*customer.Company),
		locations: make(map[int64]*customer.Location),
		orders:    make(map[int64]order.Snapshot),
	}
}

func (s state) clone() state {
	return state{
		companies: maps.Clone(s.companies),
		locations: maps.Clone(s.locations),
		orders:    maps.Clone(s.orders),
		lastOrder: s.lastOrder,
		lastLine:  s.lastLine,
	}
}

// Store is the in-memory order store.
type Store struct {
	mu    sync.Mutex
	state state
}

func NewStore() *Store {
	return &Store{state: newState()}
}

// AddCompany registers a company. Existing entries are replaced.
func (s *Store) AddCompany(c *customer.Company) error {
	if err := c.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.companies[c.ID()] = c
	return nil
}

// AddLocation registers a customer location. Its company must be registered first.
func (s *Store) AddLocation(l *customer.Location) error {
	if err := l.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.state.companies[l.CompanyID()]; !ok {
		return errs.NewObjectNotFoundError("company id", l.CompanyID())
	}
	s.state.locations[l.ID()] = l
	return nil
}

// Create returns a new unit of work over the store.
func (s *Store) Create() ports.UnitOfWork {
	return &UnitOfWork{store: s}
}

// Find implements ports.OrderReader.
func (s *Store) Find(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.find(ctx, filter)
}

// Get implements ports.OrderReader.
func (s *Store) Get(ctx context.Context, id int64) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.get(ctx, id)
}

func (st *state) find(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	ids := slices.Sorted(maps.Keys(st.orders))
	result := make([]*order.Order, 0)
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		snap := st.orders[id]
		if !matches(snap, filter) {
			continue
		}
		o, err := order.RestoreOrder(snap)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	return result, nil
}

func (st *state) get(_ context.Context, id int64) (*order.Order, error) {
	snap, ok := st.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order id", id)
	}
	return order.RestoreOrder(snap)
}

func matches(snap order.Snapshot, f ports.OrderFilter) bool {
	if f.DeliveryDate != nil && !snap.DeliveryDate.Equal(*f.DeliveryDate) {
		return false
	}
	if f.CustomerLocationID != nil && snap.CustomerLocationID != *f.CustomerLocationID {
		return false
	}
	if f.CompanyID != nil && snap.CompanyID != *f.CompanyID {
		return false
	}
	if f.Status != nil && snap.Status != *f.Status {
		return false
	}
	return true
}

func snapshotOf(o *order.Order) order.Snapshot {
	return order.Snapshot{
		ID:                 o.ID(),
		CustomerLocationID: o.CustomerLocationID(),
		CompanyID:          o.CompanyID(),
		CreatedOn:          o.CreatedOn(),
		CreatedAt:          o.CreatedAt(),
		DeliveryDate:       o.DeliveryDate(),
		DeliveryTime:       o.DeliveryTime(),
		Status:             o.Status(),
		Total:              o.Total(),
		Notes:              o.Notes(),
		Recurring:          o.Recurring(),
		RecurrenceDays:     o.RecurrenceDays(),
		Origin:             o.Origin(),
		DriverID:           copyID(o.DriverID()),
		EmailSent:          o.EmailSent(),
		MessageSent:        o.MessageSent(),
		Lines:              o.Lines(),
	}
}

func copyID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

var _ ports.OrderReader = (*Store)(nil)
