package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/techzone/backend/internal/domain/cart"
	"github.com/techzone/backend/internal/domain/catalog"
)

// AddItemRequest represents a request to add a product to the cart
type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1,max=99"`
}

// UpdateItemRequest represents a request to change a line quantity
type UpdateItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1,max=99"`
}

// CartItemResponse is a cart line resolved against the current catalog
type CartItemResponse struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	ImageURL    string          `json:"image_url"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	LineTotal   decimal.Decimal `json:"line_total"`
	InStock     bool            `json:"in_stock"`
}

// CartResponse represents the cart in API responses
type CartResponse struct {
	ID         uuid.UUID          `json:"id"`
	Items      []CartItemResponse `json:"items"`
	TotalItems int                `json:"total_items"`
	Subtotal   decimal.Decimal    `json:"subtotal"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

func toCartResponse(c *cart.Cart, products map[uuid.UUID]*catalog.Product) *CartResponse {
	items := make([]CartItemResponse, 0, len(c.Items))
	for idx := range c.Items {
		line := &c.Items[idx]
		item := CartItemResponse{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			UnitPrice:   line.UnitPrice,
			Quantity:    line.Quantity,
			LineTotal:   line.LineTotal(),
		}
		if p, ok := products[line.ProductID]; ok {
			item.ProductName = p.Name
			item.ImageURL = p.ImageURL
			item.InStock = p.InStock(line.Quantity)
		}
		items = append(items, item)
	}

	return &CartResponse{
		ID:         c.ID,
		Items:      items,
		TotalItems: c.TotalItems(),
		Subtotal:   c.Subtotal(),
		UpdatedAt:  c.UpdatedAt,
	}
}
