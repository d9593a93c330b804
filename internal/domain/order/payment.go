package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/techzone/backend/internal/domain/shared"
)

// PaymentStatus represents the state of a payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// PaymentMethod represents how the customer pays
type PaymentMethod string

const (
	PaymentMethodCreditCard     PaymentMethod = "credit_card"
	PaymentMethodDebitCard      PaymentMethod = "debit_card"
	PaymentMethodBankTransfer   PaymentMethod = "bank_transfer"
	PaymentMethodCashOnDelivery PaymentMethod = "cash_on_delivery"
)

// IsValid checks if the method is a known PaymentMethod
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodBankTransfer, PaymentMethodCashOnDelivery:
		return true
	}
	return false
}

// Payment records the single payment attempt stream for an order.
// An order has at most one payment row; retries reuse it.
type Payment struct {
	shared.BaseAggregateRoot
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Amount        decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Method        PaymentMethod   `gorm:"type:varchar(20);not null"`
	Status        PaymentStatus   `gorm:"type:varchar(20);not null;default:'pending'"`
	TransactionID string          `gorm:"type:varchar(100)"`
	PaidAt        *time.Time
}

// TableName returns the table name for GORM
func (Payment) TableName() string {
	return "payments"
}

// NewPayment creates a pending payment for an order
func NewPayment(orderID uuid.UUID, amount decimal.Decimal, method PaymentMethod) (*Payment, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order ID cannot be empty")
	}
	if amount.IsNegative() || amount.IsZero() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Unknown payment method")
	}

	return &Payment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderID:           orderID,
		Amount:            amount,
		Method:            method,
		Status:            PaymentStatusPending,
	}, nil
}

// Complete records a successful gateway charge
func (p *Payment) Complete(transactionID string) error {
	if p.Status == PaymentStatusCompleted || p.Status == PaymentStatusRefunded {
		return shared.ErrInvalidState
	}
	if transactionID == "" {
		return shared.NewDomainError("INVALID_TRANSACTION", "Transaction ID cannot be empty")
	}

	now := time.Now()
	p.Status = PaymentStatusCompleted
	p.TransactionID = transactionID
	p.PaidAt = &now
	p.UpdatedAt = now
	p.IncrementVersion()

	return nil
}

// Fail records a declined gateway charge. The payment stays retryable.
func (p *Payment) Fail() error {
	if p.Status == PaymentStatusCompleted || p.Status == PaymentStatusRefunded {
		return shared.ErrInvalidState
	}
	p.Status = PaymentStatusFailed
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// Retry puts a failed payment back into pending before a new charge attempt
func (p *Payment) Retry(method PaymentMethod) error {
	if p.Status != PaymentStatusFailed && p.Status != PaymentStatusPending {
		return shared.ErrInvalidState
	}
	if !method.IsValid() {
		return shared.NewDomainError("INVALID_PAYMENT_METHOD", "Unknown payment method")
	}
	p.Status = PaymentStatusPending
	p.Method = method
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// Refund marks a completed payment as refunded
func (p *Payment) Refund() error {
	if p.Status != PaymentStatusCompleted {
		return shared.ErrInvalidState
	}
	p.Status = PaymentStatusRefunded
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}
