package commands_test

import (
	"errors"
	"testing"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderUoW() (*MockOrderRepository, *MockOrderUoW, *MockOrderUoWFactory) {
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Maybe()
	uow.On("OrderRepository").Return(repo).Maybe()
	return repo, uow, factory
}

func TestUpdateOrderCommandHandler_Handle_HeaderOnly(t *testing.T) {
	ctx := t.Context()
	repo, uow, factory := newOrderUoW()
	existing := existingOrder(t, 5, "2024-06-11", order.Pending)

	cmd, err := commands.NewUpdateOrderCommand(commands.UpdateOrderInput{
		OrderID:   5,
		Status:    ptr("confirmado"),
		EmailSent: ptr(true),
	})
	require.NoError(t, err)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", ctx, int64(5)).Return(existing, nil).Once(),
		repo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewUpdateOrderCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.Confirmed, updated.Status())
	assert.True(t, updated.EmailSent())
	assert.Equal(t, []int64{50}, updated.LineIDs())
	repo.AssertNotCalled(t, "NextLineIDs", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_ReplaceLines(t *testing.T) {
	ctx := t.Context()
	repo, uow, factory := newOrderUoW()
	existing := existingOrder(t, 5, "2024-06-11", order.Pending)

	cmd, err := commands.NewUpdateOrderCommand(commands.UpdateOrderInput{
		OrderID: 5,
		Lines:   ptr([]order.LineDraft{draft(8, "3", "500"), draft(9, "1", "0")}),
	})
	require.NoError(t, err)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", ctx, int64(5)).Return(existing, nil).Once(),
		repo.On("NextLineIDs", ctx, 2).Return([]int64{61, 62}, nil).Once(),
		repo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewUpdateOrderCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, []int64{61, 62}, updated.LineIDs())
	assert.True(t, decimal.NewFromInt(1500).Equal(updated.Total()))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	repo, uow, factory := newOrderUoW()

	cmd, err := commands.NewUpdateOrderCommand(commands.UpdateOrderInput{OrderID: 404, Notes: ptr("x")})
	require.NoError(t, err)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", ctx, int64(404)).Return(nil, errs.NewObjectNotFoundError("order id", int64(404))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewUpdateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_TerminalStatus(t *testing.T) {
	ctx := t.Context()
	repo, uow, factory := newOrderUoW()
	existing := existingOrder(t, 5, "2024-06-11", order.Delivered)

	cmd, err := commands.NewUpdateOrderCommand(commands.UpdateOrderInput{OrderID: 5, Status: ptr("pendiente")})
	require.NoError(t, err)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", ctx, int64(5)).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewUpdateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, order.Delivered, existing.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	repo, uow, factory := newOrderUoW()
	existing := existingOrder(t, 5, "2024-06-11", order.Pending)

	cmd, err := commands.NewUpdateOrderCommand(commands.UpdateOrderInput{OrderID: 5, Notes: ptr("x")})
	require.NoError(t, err)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", ctx, int64(5)).Return(existing, nil).Once(),
		repo.On("Update", ctx, existing).Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewUpdateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should cancel and keep lines", func(t *testing.T) {
		ctx := t.Context()
		repo, uow, factory := newOrderUoW()
		existing := existingOrder(t, 5, "2024-06-11", order.Confirmed)
		cmd, _ := commands.NewCancelOrderCommand(5)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			repo.On("Get", ctx, int64(5)).Return(existing, nil).Once(),
			repo.On("Update", ctx, existing).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewCancelOrderCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))
		assert.Equal(t, order.Cancelled, existing.Status())
		assert.Len(t, existing.Lines(), 1)
		uow.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("should not cancel a delivered order", func(t *testing.T) {
		ctx := t.Context()
		repo, uow, factory := newOrderUoW()
		existing := existingOrder(t, 5, "2024-06-11", order.Delivered)
		cmd, _ := commands.NewCancelOrderCommand(5)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			repo.On("Get", ctx, int64(5)).Return(existing, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewCancelOrderCommandHandler(factory)
		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrValueIsInvalid)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should report unknown orders", func(t *testing.T) {
		ctx := t.Context()
		repo, uow, factory := newOrderUoW()
		cmd, _ := commands.NewCancelOrderCommand(9)

		uow.On("Begin", ctx).Return(nil).Once()
		repo.On("Get", ctx, int64(9)).Return(nil, errs.NewObjectNotFoundError("order id", int64(9))).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewCancelOrderCommandHandler(factory)
		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
	})
}
