package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"bakery/internal/core/domain/model/customer"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/errs"
)

// UnitOfWork stages changes on a copy of the store state. Repositories must
// only be used between Begin and Commit/Rollback.
type UnitOfWork struct {
	store  *Store
	staged *state
}

// Begin takes the store lock and snapshots the state. A second Begin is a no-op.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.staged != nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	u.store.mu.Lock()
	staged := u.store.state.clone()
	u.staged = &staged
	return nil
}

// Commit publishes the staged state and releases the lock.
func (u *UnitOfWork) Commit(_ context.Context) error {
	if u.staged == nil {
		return ErrNoTransaction
	}
	u.store.state = *u.staged
	u.staged = nil
	u.store.mu.Unlock()
	return nil
}

// Rollback discards the staged state and releases the lock.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if u.staged == nil {
		return ErrNoTransaction
	}
	u.staged = nil
	u.store.mu.Unlock()
	return nil
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &orderRepository{uow: u}
}

func (u *UnitOfWork) CustomerLocationRepository() ports.CustomerLocationRepository {
	return &locationRepository{uow: u}
}

func (u *UnitOfWork) CompanyRepository() ports.CompanyRepository {
	return &companyRepository{uow: u}
}

func (u *UnitOfWork) current() (*state, error) {
	if u.staged == nil {
		return nil, ErrNoTransaction
	}
	return u.staged, nil
}

type orderRepository struct {
	uow *UnitOfWork
}

func (r *orderRepository) Find(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	st, err := r.uow.current()
	if err != nil {
		return nil, err
	}
	return st.find(ctx, filter)
}

func (r *orderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	st, err := r.uow.current()
	if err != nil {
		return nil, err
	}
	return st.get(ctx, id)
}

func (r *orderRepository) NextID(_ context.Context) (int64, error) {
	st, err := r.uow.current()
	if err != nil {
		return 0, err
	}
	st.lastOrder++
	return st.lastOrder, nil
}

func (r *orderRepository) NextLineIDs(_ context.Context, n int) ([]int64, error) {
	st, err := r.uow.current()
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("line id count", fmt.Errorf("%d is not greater than 0", n))
	}
	ids := make([]int64, n)
	for i := range ids {
		st.lastLine++
		ids[i] = st.lastLine
	}
	return ids, nil
}

func (r *orderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	st, err := r.uow.current()
	if err != nil {
		return err
	}
	if _, exists := st.orders[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d already exists", aggregate.ID()))
	}
	st.orders[aggregate.ID()] = snapshotOf(aggregate)
	return nil
}

func (r *orderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	st, err := r.uow.current()
	if err != nil {
		return err
	}
	if _, exists := st.orders[aggregate.ID()]; !exists {
		return errs.NewObjectNotFoundError("order id", aggregate.ID())
	}
	st.orders[aggregate.ID()] = snapshotOf(aggregate)
	return nil
}

func (r *orderRepository) FindDueForDispatch(
	ctx context.Context,
	date kernel.Date,
	statuses []order.Status,
) ([]*order.Order, error) {
	st, err := r.uow.current()
	if err != nil {
		return nil, err
	}
	result := make([]*order.Order, 0)
	for _, status := range statuses {
		found, findErr := st.find(ctx, ports.OrderFilter{DeliveryDate: &date, Status: &status})
		if findErr != nil {
			return nil, findErr
		}
		result = append(result, found...)
	}
	slices.SortFunc(result, func(a, b *order.Order) int { return cmp.Compare(a.ID(), b.ID()) })
	return result, nil
}

type locationRepository struct {
	uow *UnitOfWork
}

func (r *locationRepository) Get(_ context.Context, id int64) (*customer.Location, error) {
	st, err := r.uow.current()
	if err != nil {
		return nil, err
	}
	l, ok := st.locations[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("customer location id", id)
	}
	return l, nil
}

type companyRepository struct {
	uow *UnitOfWork
}

func (r *companyRepository) Get(_ context.Context, id int64) (*customer.Company, error) {
	st, err := r.uow.current()
	if err != nil {
		return nil, err
	}
	c, ok := st.companies[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("company id", id)
	}
	return c, nil
}
