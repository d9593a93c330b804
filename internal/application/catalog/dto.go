package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/techzone/backend/internal/domain/catalog"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Name          string           `json:"name" binding:"required,min=1,max=200"`
	Description   string           `json:"description" binding:"max=2000"`
	SKU           string           `json:"sku" binding:"required,min=1,max=50"`
	Brand         string           `json:"brand" binding:"max=100"`
	Price         decimal.Decimal  `json:"price" binding:"required"`
	DiscountPrice *decimal.Decimal `json:"discount_price"`
	StockQuantity int              `json:"stock_quantity" binding:"min=0"`
	CategoryID    uuid.UUID        `json:"category_id" binding:"required"`
	IsFeatured    bool             `json:"is_featured"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name          *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Description   *string          `json:"description" binding:"omitempty,max=2000"`
	Brand         *string          `json:"brand" binding:"omitempty,max=100"`
	Price         *decimal.Decimal `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discount_price"`
	StockQuantity *int             `json:"stock_quantity" binding:"omitempty,min=0"`
	CategoryID    *uuid.UUID       `json:"category_id"`
	Status        *string          `json:"status"`
	IsFeatured    *bool            `json:"is_featured"`
}

// ProductFilterRequest represents listing filters for products
type ProductFilterRequest struct {
	Search     string           `form:"search"`
	CategoryID *uuid.UUID       `form:"category_id"`
	Brand      string           `form:"brand"`
	MinPrice   *decimal.Decimal `form:"min_price"`
	MaxPrice   *decimal.Decimal `form:"max_price"`
	Featured   *bool            `form:"featured"`
	Status     string           `form:"status"`
	SortBy     string           `form:"sort_by" binding:"omitempty,oneof=name price rating created_at"`
	SortDir    string           `form:"sort_dir" binding:"omitempty,oneof=asc desc"`
	Page       int              `form:"page" binding:"omitempty,min=1"`
	PageSize   int              `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID             uuid.UUID        `json:"id"`
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	SKU            string           `json:"sku"`
	Brand          string           `json:"brand"`
	Price          decimal.Decimal  `json:"price"`
	DiscountPrice  *decimal.Decimal `json:"discount_price"`
	EffectivePrice decimal.Decimal  `json:"effective_price"`
	StockQuantity  int              `json:"stock_quantity"`
	ImageURL       string           `json:"image_url"`
	CategoryID     uuid.UUID        `json:"category_id"`
	Status         string           `json:"status"`
	IsFeatured     bool             `json:"is_featured"`
	AverageRating  decimal.Decimal  `json:"average_rating"`
	ReviewCount    int              `json:"review_count"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name        string     `json:"name" binding:"required,min=1,max=100"`
	Description string     `json:"description" binding:"max=2000"`
	ParentID    *uuid.UUID `json:"parent_id"`
}

// UpdateCategoryRequest represents a request to update a category
type UpdateCategoryRequest struct {
	Name        *string    `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string    `json:"description" binding:"omitempty,max=2000"`
	ParentID    *uuid.UUID `json:"parent_id"`
	IsActive    *bool      `json:"is_active"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ParentID    *uuid.UUID `json:"parent_id"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func toProductResponse(p *catalog.Product) *ProductResponse {
	return &ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		SKU:            p.SKU,
		Brand:          p.Brand,
		Price:          p.Price,
		DiscountPrice:  p.DiscountPrice,
		EffectivePrice: p.EffectivePrice(),
		StockQuantity:  p.StockQuantity,
		ImageURL:       p.ImageURL,
		CategoryID:     p.CategoryID,
		Status:         string(p.Status),
		IsFeatured:     p.IsFeatured,
		AverageRating:  p.AverageRating,
		ReviewCount:    p.ReviewCount,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toProductResponses(products []catalog.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for idx := range products {
		out = append(out, *toProductResponse(&products[idx]))
	}
	return out
}

func toCategoryResponse(c *catalog.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		ParentID:    c.ParentID,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toCategoryResponses(categories []catalog.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for idx := range categories {
		out = append(out, *toCategoryResponse(&categories[idx]))
	}
	return out
}
