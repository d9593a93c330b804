package order

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/techzone/backend/internal/domain/catalog"
	"github.com/techzone/backend/internal/domain/order"
	"github.com/techzone/backend/internal/domain/shared"
)

func newOrderService(orderRepo *mockOrderRepo, paymentRepo *mockPaymentRepo, productRepo *mockProductRepo) *OrderService {
	return NewOrderService(orderRepo, paymentRepo, productRepo, fixedNumbers{"ORD-20260831-000001"}, passthroughUoW{})
}

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success computes totals and decrements stock", func(t *testing.T) {
		orderRepo := new(mockOrderRepo)
		paymentRepo := new(mockPaymentRepo)
		productRepo := new(mockProductRepo)
		svc := newOrderService(orderRepo, paymentRepo, productRepo)

		discounted := decimal.NewFromInt(40)
		p1, _ := catalog.NewProduct("Mouse", "MOU-001", decimal.NewFromInt(50), 5, uuid.New())
		assert.NoError(t, p1.SetPrice(decimal.NewFromInt(50), &discounted))
		p2, _ := catalog.NewProduct("Pad", "PAD-001", decimal.NewFromInt(20), 5, uuid.New())

		productRepo.On("FindByID", ctx, p1.ID).Return(p1, nil)
		productRepo.On("FindByID", ctx, p2.ID).Return(p2, nil)
		productRepo.On("DecrementStock", ctx, p1.ID, 2).Return(nil)
		productRepo.On("DecrementStock", ctx, p2.ID, 1).Return(nil)
		orderRepo.On("Save", ctx, mock.AnythingOfType("*order.Order")).Return(nil)
		paymentRepo.On("Save", ctx, mock.AnythingOfType("*order.Payment")).Return(nil)

		resp, err := svc.Create(ctx, userID, CreateOrderRequest{
			Items: []OrderLineRequest{
				{ProductID: p1.ID, Quantity: 2},
				{ProductID: p2.ID, Quantity: 1},
			},
			ShippingAddress: "12 Main St",
			PaymentMethod:   "credit_card",
		})

		assert.NoError(t, err)
		assert.Equal(t, "ORD-20260831-000001", resp.OrderNumber)
		assert.Equal(t, "pending", resp.Status)
		// discounted 40*2 + 20 = 100; shipping 50; tax 18
		assert.True(t, resp.Subtotal.Equal(decimal.NewFromInt(100)))
		assert.True(t, resp.Total.Equal(decimal.NewFromInt(168)))
		productRepo.AssertExpectations(t)
		paymentRepo.AssertExpectations(t)
	})

	t.Run("insufficient stock fails the checkout", func(t *testing.T) {
		orderRepo := new(mockOrderRepo)
		productRepo := new(mockProductRepo)
		svc := newOrderService(orderRepo, new(mockPaymentRepo), productRepo)

		empty, _ := catalog.NewProduct("Mouse", "MOU-001", decimal.NewFromInt(50), 0, uuid.New())
		productRepo.On("FindByID", ctx, empty.ID).Return(empty, nil)
		productRepo.On("DecrementStock", ctx, empty.ID, 1).Return(shared.ErrInsufficientStock)

		_, err := svc.Create(ctx, userID, CreateOrderRequest{
			Items:           []OrderLineRequest{{ProductID: empty.ID, Quantity: 1}},
			ShippingAddress: "12 Main St",
			PaymentMethod:   "credit_card",
		})

		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
		orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("missing product", func(t *testing.T) {
		productRepo := new(mockProductRepo)
		svc := newOrderService(new(mockOrderRepo), new(mockPaymentRepo), productRepo)

		id := uuid.New()
		productRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := svc.Create(ctx, userID, CreateOrderRequest{
			Items:           []OrderLineRequest{{ProductID: id, Quantity: 1}},
			ShippingAddress: "12 Main St",
			PaymentMethod:   "credit_card",
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("unknown payment method", func(t *testing.T) {
		svc := newOrderService(new(mockOrderRepo), new(mockPaymentRepo), new(mockProductRepo))

		_, err := svc.Create(ctx, userID, CreateOrderRequest{
			Items:           []OrderLineRequest{{ProductID: uuid.New(), Quantity: 1}},
			ShippingAddress: "12 Main St",
			PaymentMethod:   "barter",
		})
		assert.Error(t, err)
	})
}

func TestOrderService_Get(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	o, _ := order.NewOrder("ORD-1", owner, "12 Main St", "", "")

	t.Run("owner sees own order", func(t *testing.T) {
		orderRepo := new(mockOrderRepo)
		svc := newOrderService(orderRepo, new(mockPaymentRepo), new(mockProductRepo))
		orderRepo.On("FindByID", ctx, o.ID).Return(o, nil)

		resp, err := svc.Get(ctx, o.ID, owner, false)
		assert.NoError(t, err)
		assert.Equal(t, o.ID, resp.ID)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		orderRepo := new(mockOrderRepo)
		svc := newOrderService(orderRepo, new(mockPaymentRepo), new(mockProductRepo))
		orderRepo.On("FindByID", ctx, o.ID).Return(o, nil)

		_, err := svc.Get(ctx, o.ID, uuid.New(), false)
		assert.ErrorIs(t, err, shared.ErrForbidden)
	})

	t.Run("admin sees any order", func(t *testing.T) {
		orderRepo := new(mockOrderRepo)
		svc := newOrderService(orderRepo, new(mockPaymentRepo), new(mockProductRepo))
		orderRepo.On("FindByID", ctx, o.ID).Return(o, nil)

		_, err := svc.Get(ctx, o.ID, uuid.New(), true)
		assert.NoError(t, err)
	})
}

func TestOrderService_Cancel(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("pending order restores stock", func(t *testing.T) {
		orderRepo := new(mockOrderRepo)
		productRepo := new(mockProductRepo)
		svc := newOrderService(orderRepo, new(mockPaymentRepo), productRepo)

		product, _ := catalog.NewProduct("Mouse", "MOU-001", decimal.NewFromInt(50), 3, uuid.New())
		o, _ := order.NewOrder("ORD-1", owner, "12 Main St", "", "")
		assert.NoError(t, o.AddItem(product.ID, product.Name, product.Price, 2))
		assert.NoError(t, o.Finalize())

		orderRepo.On("FindByID", ctx, o.ID).Return(o, nil)
		productRepo.On("RestoreStock", ctx, product.ID, 2).Return(nil)
		orderRepo.On("Save", ctx, o).Return(nil)

		resp, err := svc.Cancel(ctx, o.ID, owner, false)
		assert.NoError(t, err)
		assert.Equal(t, "cancelled", resp.Status)
		productRepo.AssertExpectations(t)
	})

	t.Run("delivered order cannot cancel", func(t *testing.T) {
		orderRepo := new(mockOrderRepo)
		svc := newOrderService(orderRepo, new(mockPaymentRepo), new(mockProductRepo))

		o, _ := order.NewOrder("ORD-1", owner, "12 Main St", "", "")
		assert.NoError(t, o.SetStatus(order.OrderStatusDelivered))
		orderRepo.On("FindByID", ctx, o.ID).Return(o, nil)

		_, err := svc.Cancel(ctx, o.ID, owner, false)
		assert.ErrorIs(t, err, shared.ErrInvalidState)
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	orderRepo := new(mockOrderRepo)
	svc := newOrderService(orderRepo, new(mockPaymentRepo), new(mockProductRepo))

	o, _ := order.NewOrder("ORD-1", uuid.New(), "12 Main St", "", "")
	orderRepo.On("FindByID", ctx, o.ID).Return(o, nil)
	orderRepo.On("Save", ctx, o).Return(nil)

	resp, err := svc.UpdateStatus(ctx, o.ID, UpdateOrderStatusRequest{Status: "shipped"})
	assert.NoError(t, err)
	assert.Equal(t, "shipped", resp.Status)
	assert.NotNil(t, resp.ShippedDate)

	_, err = svc.UpdateStatus(ctx, o.ID, UpdateOrderStatusRequest{Status: "mislaid"})
	assert.Error(t, err)
}
