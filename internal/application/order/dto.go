package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/techzone/backend/internal/domain/order"
)

// OrderLineRequest is one (product, quantity) pair in a checkout
type OrderLineRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// CreateOrderRequest represents a checkout request
type CreateOrderRequest struct {
	Items           []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
	ShippingAddress string             `json:"shipping_address" binding:"required,max=500"`
	BillingAddress  string             `json:"billing_address" binding:"max=500"`
	PaymentMethod   string             `json:"payment_method" binding:"required"`
	Notes           string             `json:"notes" binding:"max=2000"`
}

// UpdateOrderStatusRequest represents a back-office status overwrite
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ProcessPaymentRequest represents a payment attempt for an order
type ProcessPaymentRequest struct {
	OrderID uuid.UUID `json:"order_id" binding:"required"`
	Method  string    `json:"method" binding:"required"`
}

// OrderItemResponse represents a snapshotted order line
type OrderItemResponse struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID              uuid.UUID           `json:"id"`
	OrderNumber     string              `json:"order_number"`
	UserID          uuid.UUID           `json:"user_id"`
	Status          string              `json:"status"`
	Subtotal        decimal.Decimal     `json:"subtotal"`
	ShippingCost    decimal.Decimal     `json:"shipping_cost"`
	Tax             decimal.Decimal     `json:"tax"`
	Discount        decimal.Decimal     `json:"discount"`
	Total           decimal.Decimal     `json:"total"`
	ShippingAddress string              `json:"shipping_address"`
	BillingAddress  string              `json:"billing_address"`
	Notes           string              `json:"notes,omitempty"`
	ShippedDate     *time.Time          `json:"shipped_date,omitempty"`
	DeliveredDate   *time.Time          `json:"delivered_date,omitempty"`
	Items           []OrderItemResponse `json:"items"`
	CreatedAt       time.Time           `json:"created_at"`
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID            uuid.UUID       `json:"id"`
	OrderID       uuid.UUID       `json:"order_id"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	Status        string          `json:"status"`
	TransactionID string          `json:"transaction_id,omitempty"`
	PaidAt        *time.Time      `json:"paid_at,omitempty"`
}

func toOrderResponse(o *order.Order) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for idx := range o.Items {
		line := &o.Items[idx]
		items = append(items, OrderItemResponse{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			UnitPrice:   line.UnitPrice,
			Quantity:    line.Quantity,
			LineTotal:   line.LineTotal(),
		})
	}

	return &OrderResponse{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		UserID:          o.UserID,
		Status:          string(o.Status),
		Subtotal:        o.Subtotal,
		ShippingCost:    o.ShippingCost,
		Tax:             o.Tax,
		Discount:        o.Discount,
		Total:           o.Total,
		ShippingAddress: o.ShippingAddress,
		BillingAddress:  o.BillingAddress,
		Notes:           o.Notes,
		ShippedDate:     o.ShippedDate,
		DeliveredDate:   o.DeliveredDate,
		Items:           items,
		CreatedAt:       o.CreatedAt,
	}
}

func toOrderResponses(orders []order.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for idx := range orders {
		out = append(out, *toOrderResponse(&orders[idx]))
	}
	return out
}

func toPaymentResponse(p *order.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:            p.ID,
		OrderID:       p.OrderID,
		Amount:        p.Amount,
		Method:        string(p.Method),
		Status:        string(p.Status),
		TransactionID: p.TransactionID,
		PaidAt:        p.PaidAt,
	}
}
