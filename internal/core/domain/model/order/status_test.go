package order_test

import (
	"testing"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []order.Status{
	order.Pending, order.Confirmed, order.InProduction, order.Dispatched, order.Delivered, order.Cancelled,
}

func TestParseStatus(t *testing.T) {
	for _, s := range allStatuses {
		parsed, err := order.ParseStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := order.ParseStatus("Pendiente")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	_, err = order.ParseStatus("")
	require.Error(t, err)
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("non-terminal statuses may move anywhere", func(t *testing.T) {
		for _, from := range allStatuses {
			if from.IsTerminal() {
				continue
			}
			for _, to := range allStatuses {
				next, err := from.TransitionTo(to)
				require.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, to, next)
			}
		}
	})

	t.Run("terminal statuses only accept themselves", func(t *testing.T) {
		for _, from := range []order.Status{order.Delivered, order.Cancelled} {
			for _, to := range allStatuses {
				next, err := from.TransitionTo(to)
				if to == from {
					require.NoError(t, err)
					assert.Equal(t, from, next)
					continue
				}
				require.Error(t, err, "%s -> %s", from, to)
				assert.Contains(t, err.Error(), "terminal")
			}
		}
	})
}

func TestStatus_Dispatch(t *testing.T) {
	tests := []struct {
		from    order.Status
		wantErr bool
	}{
		{order.Pending, false},
		{order.Confirmed, false},
		{order.InProduction, false},
		{order.Dispatched, false},
		{order.Delivered, true},
		{order.Cancelled, true},
	}

	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			next, err := tt.from.Dispatch()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, order.Dispatched, next)
		})
	}
}

func TestAutoDispatchableStatuses(t *testing.T) {
	assert.ElementsMatch(t,
		[]order.Status{order.Pending, order.Confirmed, order.InProduction},
		order.AutoDispatchableStatuses())
	for _, s := range order.AutoDispatchableStatuses() {
		assert.True(t, s.IsAutoDispatchable())
	}
	assert.False(t, order.Dispatched.IsAutoDispatchable())
}

func TestNewLineItem(t *testing.T) {
	t.Run("should compute subtotal and default unit", func(t *testing.T) {
		l, err := order.NewLineItem(1, 1, order.LineDraft{
			ProductID: 4, ProductName: "Hallulla",
			Quantity: decimal.RequireFromString("1.25"), UnitPrice: decimal.RequireFromString("2100"),
		})
		require.NoError(t, err)
		assert.Equal(t, order.Kilogram, l.Unit())
		assert.True(t, decimal.RequireFromString("2625").Equal(l.Subtotal()))
	})

	t.Run("should accept a free line", func(t *testing.T) {
		l, err := order.NewLineItem(1, 1, order.LineDraft{
			ProductID: 4, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.Zero, Unit: "unidad",
		})
		require.NoError(t, err)
		assert.True(t, l.Subtotal().IsZero())
		assert.Equal(t, order.Piece, l.Unit())
	})

	t.Run("should reject non-positive quantity and negative price", func(t *testing.T) {
		_, err := order.NewLineItem(1, 1, order.LineDraft{
			ProductID: 4, Quantity: decimal.Zero, UnitPrice: decimal.NewFromInt(-1),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity")
		assert.Contains(t, err.Error(), "unit price")
	})

	t.Run("should reject unknown units", func(t *testing.T) {
		_, err := order.NewLineItem(1, 1, order.LineDraft{
			ProductID: 4, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1), Unit: "saco",
		})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("restore should detect a stale subtotal", func(t *testing.T) {
		_, err := order.RestoreLineItem(1, 1, order.LineDraft{
			ProductID: 4, Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(10),
		}, decimal.NewFromInt(21))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
