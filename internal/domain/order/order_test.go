package order

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/techzone/backend/internal/domain/shared"
)

func TestNewOrder(t *testing.T) {
	t.Run("valid order", func(t *testing.T) {
		o, err := NewOrder("ORD-20260831-000001", uuid.New(), "12 Main St", "", "leave at door")
		assert.NoError(t, err)
		assert.Equal(t, OrderStatusPending, o.Status)
		assert.Equal(t, "12 Main St", o.ShippingAddress)
		assert.Equal(t, "12 Main St", o.BillingAddress, "billing defaults to shipping")
		assert.True(t, o.ShippingCost.Equal(ShippingFee))
	})

	t.Run("missing order number", func(t *testing.T) {
		_, err := NewOrder("", uuid.New(), "12 Main St", "", "")
		assert.Error(t, err)
	})

	t.Run("missing shipping address", func(t *testing.T) {
		_, err := NewOrder("ORD-1", uuid.New(), "", "", "")
		assert.Error(t, err)
	})
}

func TestOrder_Finalize(t *testing.T) {
	t.Run("totals from lines", func(t *testing.T) {
		o := mustOrder(t)
		assert.NoError(t, o.AddItem(uuid.New(), "Mouse", decimal.NewFromInt(40), 2))
		assert.NoError(t, o.AddItem(uuid.New(), "Pad", decimal.NewFromInt(20), 1))
		assert.NoError(t, o.Finalize())

		// subtotal 100, shipping 50, tax 18 -> total 168
		assert.True(t, o.Subtotal.Equal(decimal.NewFromInt(100)))
		assert.True(t, o.Tax.Equal(decimal.NewFromInt(18)))
		assert.True(t, o.Total.Equal(decimal.NewFromInt(168)))
	})

	t.Run("empty order rejected", func(t *testing.T) {
		o := mustOrder(t)
		assert.Error(t, o.Finalize())
	})
}

func TestOrder_AddItem(t *testing.T) {
	o := mustOrder(t)

	assert.Error(t, o.AddItem(uuid.Nil, "Mouse", decimal.NewFromInt(40), 1))
	assert.Error(t, o.AddItem(uuid.New(), "Mouse", decimal.NewFromInt(40), 0))
	assert.Error(t, o.AddItem(uuid.New(), "Mouse", decimal.NewFromInt(-1), 1))

	assert.NoError(t, o.AddItem(uuid.New(), "Mouse", decimal.NewFromInt(40), 1))
	assert.NoError(t, o.SetStatus(OrderStatusConfirmed))
	assert.ErrorIs(t, o.AddItem(uuid.New(), "Pad", decimal.NewFromInt(20), 1), shared.ErrInvalidState)
}

func TestOrder_SetStatus(t *testing.T) {
	t.Run("shipped and delivered dates stamp once", func(t *testing.T) {
		o := mustOrder(t)
		assert.NoError(t, o.SetStatus(OrderStatusShipped))
		assert.NotNil(t, o.ShippedDate)
		first := *o.ShippedDate

		assert.NoError(t, o.SetStatus(OrderStatusProcessing))
		assert.NoError(t, o.SetStatus(OrderStatusShipped))
		assert.Equal(t, first, *o.ShippedDate)

		assert.NoError(t, o.SetStatus(OrderStatusDelivered))
		assert.NotNil(t, o.DeliveredDate)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		o := mustOrder(t)
		assert.Error(t, o.SetStatus("mislaid"))
	})

	t.Run("back-office overwrite skips transition checks", func(t *testing.T) {
		o := mustOrder(t)
		assert.NoError(t, o.SetStatus(OrderStatusDelivered))
		assert.NoError(t, o.SetStatus(OrderStatusPending))
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("pending order cancels", func(t *testing.T) {
		o := mustOrder(t)
		assert.True(t, o.CanBeCancelled())
		assert.NoError(t, o.Cancel())
		assert.Equal(t, OrderStatusCancelled, o.Status)
	})

	t.Run("delivered order cannot cancel", func(t *testing.T) {
		o := mustOrder(t)
		assert.NoError(t, o.SetStatus(OrderStatusDelivered))
		assert.ErrorIs(t, o.Cancel(), shared.ErrInvalidState)
	})

	t.Run("cancel is not idempotent", func(t *testing.T) {
		o := mustOrder(t)
		assert.NoError(t, o.Cancel())
		assert.ErrorIs(t, o.Cancel(), shared.ErrInvalidState)
	})
}

func TestOrder_Confirm(t *testing.T) {
	o := mustOrder(t)
	assert.NoError(t, o.Confirm())
	assert.Equal(t, OrderStatusConfirmed, o.Status)
	assert.ErrorIs(t, o.Confirm(), shared.ErrInvalidState)
}

func mustOrder(t *testing.T) *Order {
	t.Helper()
	o, err := NewOrder("ORD-20260831-000001", uuid.New(), "12 Main St", "12 Main St", "")
	assert.NoError(t, err)
	return o
}
