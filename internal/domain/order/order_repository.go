package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/techzone/backend/internal/domain/shared"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// FindByID finds an order with its items by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByOrderNumber finds an order by its human-readable number
	FindByOrderNumber(ctx context.Context, orderNumber string) (*Order, error)

	// FindByUserID finds a user's orders, newest first
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]Order, error)

	// FindAll finds all orders matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)

	// Save creates or updates an order together with its items
	Save(ctx context.Context, order *Order) error

	// Count counts orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByUserAndProduct reports whether the user has a delivered
	// order containing the product. Used for verified-purchase checks.
	ExistsByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (bool, error)
}

// PaymentRepository defines the interface for payment persistence
type PaymentRepository interface {
	// FindByID finds a payment by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)

	// FindByOrderID finds the payment attached to an order
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*Payment, error)

	// Save creates or updates a payment
	Save(ctx context.Context, payment *Payment) error
}
