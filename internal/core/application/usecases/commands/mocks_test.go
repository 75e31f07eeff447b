package commands_test

import (
	"context"
	"testing"
	"time"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/customer"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Find(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}
func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) NextID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockOrderRepository) NextLineIDs(ctx context.Context, n int) ([]int64, error) {
	args := m.Called(ctx, n)
	ids, _ := args.Get(0).([]int64)
	return ids, args.Error(1)
}
func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) FindDueForDispatch(
	ctx context.Context,
	date kernel.Date,
	statuses []order.Status,
) ([]*order.Order, error) {
	args := m.Called(ctx, date, statuses)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) Get(ctx context.Context, id int64) (*customer.Location, error) {
	args := m.Called(ctx, id)
	l, _ := args.Get(0).(*customer.Location)
	return l, args.Error(1)
}

type MockCompanyRepository struct{ mock.Mock }

func (m *MockCompanyRepository) Get(ctx context.Context, id int64) (*customer.Company, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*customer.Company)
	return c, args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockUoW struct {
	MockOrderUoW
}

func (m *MockUoW) CustomerLocationRepository() ports.CustomerLocationRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerLocationRepository)
}
func (m *MockUoW) CompanyRepository() ports.CompanyRepository {
	args := m.Called()
	return args.Get(0).(ports.CompanyRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type fixedClock struct {
	now time.Time
	err error
}

func (c fixedClock) Now() time.Time { return c.now }
func (c fixedClock) NowInZone() (time.Time, error) {
	if c.err != nil {
		return time.Time{}, c.err
	}
	return c.now, nil
}

// June 10 2024 at the given hour.
func at(hour int) time.Time {
	return time.Date(2024, time.June, 10, hour, 0, 0, 0, time.UTC)
}

func draft(productID int64, qty, price string) order.LineDraft {
	return order.LineDraft{
		ProductID:   productID,
		ProductName: "Marraqueta",
		Quantity:    decimal.RequireFromString(qty),
		UnitPrice:   decimal.RequireFromString(price),
	}
}

func existingOrder(t *testing.T, id int64, delivery string, status order.Status) *order.Order {
	t.Helper()
	loc, err := customer.NewLocation(7, 3, "Casino Central", "")
	require.NoError(t, err)
	d, err := kernel.ParseDate(delivery)
	require.NoError(t, err)
	line, err := order.NewLineItem(id*10, id, draft(4, "2", "1000"))
	require.NoError(t, err)

	o, err := order.NewOrder(id, loc, order.Details{
		DeliveryDate: d,
		DeliveryTime: kernel.MustParseTimeOfDay("08:00"),
	}, at(9), []*order.LineItem{line})
	require.NoError(t, err)
	if status != order.Pending {
		require.NoError(t, o.ApplyChanges(order.Changes{Status: &status}))
	}
	return o
}
