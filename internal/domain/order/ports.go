package order

import (
	"context"

	"github.com/shopspring/decimal"
)

// OrderNumberGenerator produces unique human-readable order numbers.
// Implementations must be collision-free under concurrent calls.
type OrderNumberGenerator interface {
	Next() string
}

// ChargeResult is the gateway's answer to a charge attempt
type ChargeResult struct {
	Approved      bool
	TransactionID string
}

// PaymentGateway abstracts the external payment processor
type PaymentGateway interface {
	// Charge attempts to capture the amount. A declined charge returns
	// Approved=false with a nil error; errors are transport failures.
	Charge(ctx context.Context, amount decimal.Decimal, method PaymentMethod) (ChargeResult, error)

	// Refund returns a captured amount for the given transaction
	Refund(ctx context.Context, transactionID string, amount decimal.Decimal) error
}
