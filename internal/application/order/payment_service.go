package order

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/techzone/backend/internal/domain/catalog"
	"github.com/techzone/backend/internal/domain/order"
	"github.com/techzone/backend/internal/domain/shared"
)

// PaymentService handles charging and refunding orders
type PaymentService struct {
	orderRepo   order.OrderRepository
	paymentRepo order.PaymentRepository
	productRepo catalog.ProductRepository
	gateway     order.PaymentGateway
	uow         shared.UnitOfWork
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	orderRepo order.OrderRepository,
	paymentRepo order.PaymentRepository,
	productRepo catalog.ProductRepository,
	gateway order.PaymentGateway,
	uow shared.UnitOfWork,
) *PaymentService {
	return &PaymentService{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		productRepo: productRepo,
		gateway:     gateway,
		uow:         uow,
	}
}

// Process charges the order's payment. The order's single payment row
// is found or created in pending state and reused across retries. A
// successful charge completes the payment and confirms the order; a
// declined charge marks the payment failed and leaves the order alone.
func (s *PaymentService) Process(ctx context.Context, callerID uuid.UUID, isAdmin bool, req ProcessPaymentRequest) (*PaymentResponse, error) {
	method := order.PaymentMethod(req.Method)
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Unknown payment method")
	}

	o, err := s.orderRepo.FindByID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && o.UserID != callerID {
		return nil, shared.ErrForbidden
	}

	payment, err := s.paymentRepo.FindByOrderID(ctx, o.ID)
	if errors.Is(err, shared.ErrNotFound) {
		payment, err = order.NewPayment(o.ID, o.Total, method)
	}
	if err != nil {
		return nil, err
	}

	if err := payment.Retry(method); err != nil {
		return nil, err
	}

	result, err := s.gateway.Charge(ctx, payment.Amount, method)
	if err != nil {
		return nil, err
	}

	if !result.Approved {
		if err := payment.Fail(); err != nil {
			return nil, err
		}
		if err := s.paymentRepo.Save(ctx, payment); err != nil {
			return nil, err
		}
		return toPaymentResponse(payment), nil
	}

	if err := payment.Complete(result.TransactionID); err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.paymentRepo.Save(ctx, payment); err != nil {
			return err
		}
		if o.Status == order.OrderStatusPending {
			if err := o.Confirm(); err != nil {
				return err
			}
			return s.orderRepo.Save(ctx, o)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toPaymentResponse(payment), nil
}

// Refund reverses a completed payment: the payment and order move to
// refunded and every order line's stock is restored, all in one
// transaction. The simulated refund gateway always approves.
func (s *PaymentService) Refund(ctx context.Context, paymentID uuid.UUID) (*PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if err := payment.Refund(); err != nil {
		return nil, err
	}

	o, err := s.orderRepo.FindByID(ctx, payment.OrderID)
	if err != nil {
		return nil, err
	}
	if err := o.MarkRefunded(); err != nil {
		return nil, err
	}

	if err := s.gateway.Refund(ctx, payment.TransactionID, payment.Amount); err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.paymentRepo.Save(ctx, payment); err != nil {
			return err
		}
		if err := s.orderRepo.Save(ctx, o); err != nil {
			return err
		}
		for idx := range o.Items {
			if err := s.productRepo.RestoreStock(ctx, o.Items[idx].ProductID, o.Items[idx].Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toPaymentResponse(payment), nil
}

// GetByOrder returns the payment attached to an order
func (s *PaymentService) GetByOrder(ctx context.Context, orderID, callerID uuid.UUID, isAdmin bool) (*PaymentResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && o.UserID != callerID {
		return nil, shared.ErrForbidden
	}

	payment, err := s.paymentRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}
