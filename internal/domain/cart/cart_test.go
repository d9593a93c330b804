package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/techzone/backend/internal/domain/shared"
)

func TestNewCart(t *testing.T) {
	cart, err := NewCart(uuid.New())
	assert.NoError(t, err)
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.TotalItems())
	assert.True(t, cart.Subtotal().IsZero())

	_, err = NewCart(uuid.Nil)
	assert.Error(t, err)
}

func TestCart_AddItem(t *testing.T) {
	productID := uuid.New()

	t.Run("add new line", func(t *testing.T) {
		cart := mustCart(t)
		err := cart.AddItem(productID, "Mouse", decimal.NewFromInt(25), 2)
		assert.NoError(t, err)
		assert.Len(t, cart.Items, 1)
		assert.Equal(t, 2, cart.TotalItems())
		assert.True(t, cart.Subtotal().Equal(decimal.NewFromInt(50)))
	})

	t.Run("adding same product merges quantities, keeping the price snapshot", func(t *testing.T) {
		cart := mustCart(t)
		assert.NoError(t, cart.AddItem(productID, "Mouse", decimal.NewFromInt(25), 2))
		assert.NoError(t, cart.AddItem(productID, "Mouse", decimal.NewFromInt(20), 3))
		assert.Len(t, cart.Items, 1)
		assert.Equal(t, 5, cart.Items[0].Quantity)
		assert.True(t, cart.Items[0].UnitPrice.Equal(decimal.NewFromInt(25)))
	})

	t.Run("merge is capped at the per-item maximum", func(t *testing.T) {
		cart := mustCart(t)
		assert.NoError(t, cart.AddItem(productID, "Mouse", decimal.NewFromInt(25), 98))
		assert.NoError(t, cart.AddItem(productID, "Mouse", decimal.NewFromInt(25), 10))
		assert.Equal(t, 99, cart.Items[0].Quantity)
	})

	t.Run("invalid quantity", func(t *testing.T) {
		cart := mustCart(t)
		assert.Error(t, cart.AddItem(productID, "Mouse", decimal.NewFromInt(25), 0))
		assert.Error(t, cart.AddItem(productID, "Mouse", decimal.NewFromInt(25), 100))
	})
}

func TestCart_UpdateItemQuantity(t *testing.T) {
	productID := uuid.New()

	t.Run("update existing line", func(t *testing.T) {
		cart := mustCart(t)
		assert.NoError(t, cart.AddItem(productID, "Mouse", decimal.NewFromInt(25), 2))
		err := cart.UpdateItemQuantity(productID, 7)
		assert.NoError(t, err)
		assert.Equal(t, 7, cart.Item(productID).Quantity)
	})

	t.Run("zero quantity removes the line", func(t *testing.T) {
		cart := mustCart(t)
		assert.NoError(t, cart.AddItem(productID, "Mouse", decimal.NewFromInt(25), 2))
		err := cart.UpdateItemQuantity(productID, 0)
		assert.NoError(t, err)
		assert.True(t, cart.IsEmpty())
	})

	t.Run("missing line", func(t *testing.T) {
		cart := mustCart(t)
		err := cart.UpdateItemQuantity(uuid.New(), 3)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestCart_RemoveItemAndClear(t *testing.T) {
	cart := mustCart(t)
	first := uuid.New()
	second := uuid.New()
	assert.NoError(t, cart.AddItem(first, "Mouse", decimal.NewFromInt(25), 1))
	assert.NoError(t, cart.AddItem(second, "Keyboard", decimal.NewFromInt(60), 1))

	assert.NoError(t, cart.RemoveItem(first))
	assert.Len(t, cart.Items, 1)
	assert.ErrorIs(t, cart.RemoveItem(first), shared.ErrNotFound)

	cart.Clear()
	assert.True(t, cart.IsEmpty())
}

func mustCart(t *testing.T) *Cart {
	t.Helper()
	cart, err := NewCart(uuid.New())
	assert.NoError(t, err)
	return cart
}
