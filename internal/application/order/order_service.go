package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/techzone/backend/internal/domain/catalog"
	"github.com/techzone/backend/internal/domain/order"
	"github.com/techzone/backend/internal/domain/shared"
)

// OrderService handles the checkout workflow and order lifecycle
type OrderService struct {
	orderRepo   order.OrderRepository
	paymentRepo order.PaymentRepository
	productRepo catalog.ProductRepository
	numbers     order.OrderNumberGenerator
	uow         shared.UnitOfWork
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo order.OrderRepository,
	paymentRepo order.PaymentRepository,
	productRepo catalog.ProductRepository,
	numbers order.OrderNumberGenerator,
	uow shared.UnitOfWork,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		productRepo: productRepo,
		numbers:     numbers,
		uow:         uow,
	}
}

// Create runs the checkout: it snapshots each product line at its
// current effective price, decrements stock, and persists the order,
// its items, and a pending payment in one transaction. Any failing
// line rolls back all earlier stock decrements.
func (s *OrderService) Create(ctx context.Context, userID uuid.UUID, req CreateOrderRequest) (*OrderResponse, error) {
	method := order.PaymentMethod(req.PaymentMethod)
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Unknown payment method")
	}

	o, err := order.NewOrder(s.numbers.Next(), userID, req.ShippingAddress, req.BillingAddress, req.Notes)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context) error {
		for _, line := range req.Items {
			product, err := s.productRepo.FindByID(ctx, line.ProductID)
			if err != nil {
				return err
			}
			// Guarded in the store so concurrent checkouts cannot both
			// pass a stale stock read and oversell.
			if err := s.productRepo.DecrementStock(ctx, product.ID, line.Quantity); err != nil {
				return err
			}
			if err := o.AddItem(product.ID, product.Name, product.EffectivePrice(), line.Quantity); err != nil {
				return err
			}
		}

		if err := o.Finalize(); err != nil {
			return err
		}
		if err := s.orderRepo.Save(ctx, o); err != nil {
			return err
		}

		payment, err := order.NewPayment(o.ID, o.Total, method)
		if err != nil {
			return err
		}
		return s.paymentRepo.Save(ctx, payment)
	})
	if err != nil {
		return nil, err
	}

	return toOrderResponse(o), nil
}

// Get returns an order. Non-admin callers only see their own.
func (s *OrderService) Get(ctx context.Context, id, callerID uuid.UUID, isAdmin bool) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && o.UserID != callerID {
		return nil, shared.ErrForbidden
	}
	return toOrderResponse(o), nil
}

// ListMine returns the caller's orders, newest first
func (s *OrderService) ListMine(ctx context.Context, userID uuid.UUID) ([]OrderResponse, error) {
	orders, err := s.orderRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

// List returns the admin paginated view over all orders
func (s *OrderService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[OrderResponse], error) {
	orders, err := s.orderRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.orderRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPaginated(toOrderResponses(orders), total, filter.Page, filter.PageSize)
	return &page, nil
}

// UpdateStatus overwrites an order's status from the back office
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, req UpdateOrderStatusRequest) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := o.SetStatus(order.OrderStatus(req.Status)); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	return toOrderResponse(o), nil
}

// Cancel cancels an order and restores its stock. Non-admin callers
// may only cancel their own orders.
func (s *OrderService) Cancel(ctx context.Context, id, callerID uuid.UUID, isAdmin bool) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && o.UserID != callerID {
		return nil, shared.ErrForbidden
	}

	if err := o.Cancel(); err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.restoreStock(ctx, o); err != nil {
			return err
		}
		return s.orderRepo.Save(ctx, o)
	})
	if err != nil {
		return nil, err
	}

	return toOrderResponse(o), nil
}

func (s *OrderService) restoreStock(ctx context.Context, o *order.Order) error {
	for idx := range o.Items {
		if err := s.productRepo.RestoreStock(ctx, o.Items[idx].ProductID, o.Items[idx].Quantity); err != nil {
			return err
		}
	}
	return nil
}
