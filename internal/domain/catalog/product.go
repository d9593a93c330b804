package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/techzone/backend/internal/domain/shared"
)

// ProductStatus represents the status of a product
type ProductStatus string

const (
	ProductStatusActive       ProductStatus = "active"
	ProductStatusInactive     ProductStatus = "inactive"
	ProductStatusOutOfStock   ProductStatus = "out_of_stock"
	ProductStatusDiscontinued ProductStatus = "discontinued"
)

// IsValid checks if the status is a valid ProductStatus
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusActive, ProductStatusInactive, ProductStatusOutOfStock, ProductStatusDiscontinued:
		return true
	}
	return false
}

// Product represents a sellable item in the catalog.
// It is the aggregate root for product-related operations.
type Product struct {
	shared.BaseAggregateRoot
	Name          string          `gorm:"type:varchar(200);not null"`
	Description   string          `gorm:"type:text"`
	SKU           string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Brand         string          `gorm:"type:varchar(100);index"`
	Price         decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	DiscountPrice *decimal.Decimal `gorm:"type:decimal(18,2)"`
	StockQuantity int             `gorm:"not null;default:0"`
	ImageURL      string          `gorm:"type:varchar(500)"`
	CategoryID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status        ProductStatus   `gorm:"type:varchar(20);not null;default:'active'"`
	IsFeatured    bool            `gorm:"not null;default:false"`
	AverageRating decimal.Decimal `gorm:"type:decimal(3,2);not null;default:0"`
	ReviewCount   int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(name, sku string, price decimal.Decimal, stockQuantity int, categoryID uuid.UUID) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if err := validateSKU(sku); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if stockQuantity < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Stock quantity cannot be negative")
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category ID cannot be empty")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		SKU:               strings.ToUpper(sku),
		Price:             price,
		StockQuantity:     stockQuantity,
		CategoryID:        categoryID,
		Status:            ProductStatusActive,
		AverageRating:     decimal.Zero,
	}, nil
}

// Update updates the product's basic information
func (p *Product) Update(name, description, brand string) error {
	if err := validateProductName(name); err != nil {
		return err
	}

	p.Name = name
	p.Description = description
	p.Brand = brand
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetPrice sets the list price and optional discount price.
// The discount price, when present, must be below the list price.
func (p *Product) SetPrice(price decimal.Decimal, discountPrice *decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if discountPrice != nil {
		if discountPrice.IsNegative() {
			return shared.NewDomainError("INVALID_PRICE", "Discount price cannot be negative")
		}
		if discountPrice.GreaterThanOrEqual(price) {
			return shared.NewDomainError("INVALID_PRICE", "Discount price must be lower than list price")
		}
	}

	p.Price = price
	p.DiscountPrice = discountPrice
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// EffectivePrice returns the discount price when set, otherwise the list price
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

// SetCategory moves the product to another category
func (p *Product) SetCategory(categoryID uuid.UUID) error {
	if categoryID == uuid.Nil {
		return shared.NewDomainError("INVALID_CATEGORY", "Category ID cannot be empty")
	}
	p.CategoryID = categoryID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// SetImageURL sets the product image location
func (p *Product) SetImageURL(url string) error {
	if len(url) > 500 {
		return shared.NewDomainError("INVALID_IMAGE_URL", "Image URL cannot exceed 500 characters")
	}
	p.ImageURL = url
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// SetFeatured toggles the featured flag
func (p *Product) SetFeatured(featured bool) {
	p.IsFeatured = featured
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetStatus overwrites the product status
func (p *Product) SetStatus(status ProductStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown product status %q", status))
	}
	p.Status = status
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// DecrementStock reduces available stock by qty.
// Stock never goes negative: a shortfall is rejected before mutation.
func (p *Product) DecrementStock(qty int) error {
	if qty <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if p.StockQuantity < qty {
		return shared.ErrInsufficientStock
	}

	p.StockQuantity -= qty
	if p.StockQuantity == 0 && p.Status == ProductStatusActive {
		p.Status = ProductStatusOutOfStock
	}
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// RestoreStock returns qty units to available stock after a cancellation or refund
func (p *Product) RestoreStock(qty int) error {
	if qty <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	p.StockQuantity += qty
	if p.Status == ProductStatusOutOfStock {
		p.Status = ProductStatusActive
	}
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetStock overwrites the available quantity, keeping the status
// in step: restocking an out-of-stock product reactivates it, zeroing
// an active one marks it out of stock.
func (p *Product) SetStock(qty int) error {
	if qty < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock quantity cannot be negative")
	}

	p.StockQuantity = qty
	if qty == 0 && p.Status == ProductStatusActive {
		p.Status = ProductStatusOutOfStock
	}
	if qty > 0 && p.Status == ProductStatusOutOfStock {
		p.Status = ProductStatusActive
	}
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetRating overwrites the review aggregates.
// Called whenever a review is created, approved, or deleted.
func (p *Product) SetRating(average decimal.Decimal, count int) {
	p.AverageRating = average
	p.ReviewCount = count
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// IsActive returns true if the product is active
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

// InStock returns true if at least qty units are available
func (p *Product) InStock(qty int) bool {
	return p.StockQuantity >= qty
}

func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}

func validateSKU(sku string) error {
	if sku == "" {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot be empty")
	}
	if len(sku) > 50 {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot exceed 50 characters")
	}
	for _, r := range sku {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_SKU", "SKU can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}
