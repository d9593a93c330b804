package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/techzone/backend/internal/domain/shared"
)

const maxItemQuantity = 99

// CartItem represents a single product line in a cart.
// Price is a snapshot taken when the line was last touched.
type CartItem struct {
	shared.BaseEntity
	CartID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Quantity    int             `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CartItem) TableName() string {
	return "cart_items"
}

// LineTotal returns the item price times quantity
func (i *CartItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is the shopping cart aggregate. Each customer owns at most one.
type Cart struct {
	shared.BaseAggregateRoot
	UserID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	Items  []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Cart) TableName() string {
	return "carts"
}

// NewCart creates an empty cart for a user
func NewCart(userID uuid.UUID) (*Cart, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	return &Cart{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Items:             []CartItem{},
	}, nil
}

// AddItem adds a product to the cart. Adding a product that is already
// in the cart merges the quantities; the unit price stays the snapshot
// captured when the line was first added.
func (c *Cart) AddItem(productID uuid.UUID, productName string, unitPrice decimal.Decimal, quantity int) error {
	if productID == uuid.Nil {
		return shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			merged := c.Items[idx].Quantity + quantity
			if merged > maxItemQuantity {
				merged = maxItemQuantity
			}
			c.Items[idx].Quantity = merged
			c.Items[idx].UpdatedAt = time.Now()
			c.touch()
			return nil
		}
	}

	c.Items = append(c.Items, CartItem{
		BaseEntity:  shared.NewBaseEntity(),
		CartID:      c.ID,
		ProductID:   productID,
		ProductName: productName,
		UnitPrice:   unitPrice,
		Quantity:    quantity,
	})
	c.touch()

	return nil
}

// UpdateItemQuantity sets the quantity of an existing line.
// A quantity of zero removes the line.
func (c *Cart) UpdateItemQuantity(productID uuid.UUID, quantity int) error {
	if quantity == 0 {
		return c.RemoveItem(productID)
	}
	if err := validateQuantity(quantity); err != nil {
		return err
	}

	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			c.Items[idx].Quantity = quantity
			c.Items[idx].UpdatedAt = time.Now()
			c.touch()
			return nil
		}
	}

	return shared.ErrNotFound
}

// RemoveItem removes a product line from the cart
func (c *Cart) RemoveItem(productID uuid.UUID) error {
	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
			c.touch()
			return nil
		}
	}
	return shared.ErrNotFound
}

// Clear removes all lines from the cart
func (c *Cart) Clear() {
	c.Items = []CartItem{}
	c.touch()
}

// Item returns the line for a product, or nil if absent
func (c *Cart) Item(productID uuid.UUID) *CartItem {
	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			return &c.Items[idx]
		}
	}
	return nil
}

// IsEmpty returns true if the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// TotalItems returns the total unit count across all lines
func (c *Cart) TotalItems() int {
	total := 0
	for idx := range c.Items {
		total += c.Items[idx].Quantity
	}
	return total
}

// Subtotal returns the sum of all line totals
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for idx := range c.Items {
		subtotal = subtotal.Add(c.Items[idx].LineTotal())
	}
	return subtotal
}

func (c *Cart) touch() {
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if quantity > maxItemQuantity {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot exceed 99 per item")
	}
	return nil
}
