package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/techzone/backend/internal/domain/shared"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

// Flat shipping fee and tax rate applied to every order
var (
	ShippingFee = decimal.NewFromInt(50)
	TaxRate     = decimal.NewFromFloat(0.18)
)

// OrderItem is a product line snapshotted at order time
type OrderItem struct {
	shared.BaseEntity
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Quantity    int             `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// LineTotal returns the unit price times quantity
func (i *OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is the aggregate root for a customer purchase.
// Addresses and line prices are immutable snapshots taken at creation.
type Order struct {
	shared.BaseAggregateRoot
	OrderNumber     string          `gorm:"type:varchar(40);not null;uniqueIndex"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status          OrderStatus     `gorm:"type:varchar(20);not null;default:'pending'"`
	Subtotal        decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	ShippingCost    decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Tax             decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Discount        decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Total           decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	ShippingAddress string          `gorm:"type:varchar(500);not null"`
	BillingAddress  string          `gorm:"type:varchar(500);not null"`
	Notes           string          `gorm:"type:text"`
	ShippedDate     *time.Time
	DeliveredDate   *time.Time
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a pending order from snapshotted lines.
// Totals are computed once: subtotal + flat shipping + tax on the subtotal.
func NewOrder(orderNumber string, userID uuid.UUID, shippingAddress, billingAddress, notes string) (*Order, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	if shippingAddress == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Shipping address cannot be empty")
	}
	if billingAddress == "" {
		billingAddress = shippingAddress
	}

	return &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       orderNumber,
		UserID:            userID,
		Status:            OrderStatusPending,
		Subtotal:          decimal.Zero,
		ShippingCost:      ShippingFee,
		Tax:               decimal.Zero,
		Discount:          decimal.Zero,
		Total:             decimal.Zero,
		ShippingAddress:   shippingAddress,
		BillingAddress:    billingAddress,
		Notes:             notes,
		Items:             []OrderItem{},
	}, nil
}

// AddItem appends a snapshotted product line. Only valid before finalization.
func (o *Order) AddItem(productID uuid.UUID, productName string, unitPrice decimal.Decimal, quantity int) error {
	if o.Status != OrderStatusPending {
		return shared.ErrInvalidState
	}
	if productID == uuid.Nil {
		return shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	o.Items = append(o.Items, OrderItem{
		BaseEntity:  shared.NewBaseEntity(),
		OrderID:     o.ID,
		ProductID:   productID,
		ProductName: productName,
		UnitPrice:   unitPrice,
		Quantity:    quantity,
	})

	return nil
}

// Finalize computes subtotal, tax, and total from the current lines
func (o *Order) Finalize() error {
	if len(o.Items) == 0 {
		return shared.NewDomainError("EMPTY_ORDER", "Order must contain at least one item")
	}

	subtotal := decimal.Zero
	for idx := range o.Items {
		subtotal = subtotal.Add(o.Items[idx].LineTotal())
	}

	o.Subtotal = subtotal
	o.Tax = subtotal.Mul(TaxRate).Round(2)
	o.Total = subtotal.Add(o.ShippingCost).Add(o.Tax).Sub(o.Discount)
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// SetStatus overwrites the order status. This is the back-office path:
// any valid status may be set, and the first entry into shipped or
// delivered stamps the corresponding date exactly once.
func (o *Order) SetStatus(status OrderStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status")
	}

	o.Status = status
	now := time.Now()
	if status == OrderStatusShipped && o.ShippedDate == nil {
		o.ShippedDate = &now
	}
	if status == OrderStatusDelivered && o.DeliveredDate == nil {
		o.DeliveredDate = &now
	}
	o.UpdatedAt = now
	o.IncrementVersion()

	return nil
}

// Confirm marks the order confirmed after a successful payment
func (o *Order) Confirm() error {
	if o.Status != OrderStatusPending {
		return shared.ErrInvalidState
	}
	return o.SetStatus(OrderStatusConfirmed)
}

// Cancel cancels the order. Delivered and already-cancelled orders
// cannot be cancelled.
func (o *Order) Cancel() error {
	if o.Status == OrderStatusDelivered || o.Status == OrderStatusCancelled {
		return shared.ErrInvalidState
	}
	return o.SetStatus(OrderStatusCancelled)
}

// MarkRefunded moves the order to refunded after a successful payment refund
func (o *Order) MarkRefunded() error {
	return o.SetStatus(OrderStatusRefunded)
}

// CanBeCancelled reports whether Cancel would succeed
func (o *Order) CanBeCancelled() bool {
	return o.Status != OrderStatusDelivered && o.Status != OrderStatusCancelled
}
