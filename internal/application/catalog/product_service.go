package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/techzone/backend/internal/domain/catalog"
	"github.com/techzone/backend/internal/domain/shared"
)

// ObjectStorage stores uploaded binary objects and returns their public URL
type ObjectStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
}

// ProductService handles product-related business operations
type ProductService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	storage      ObjectStorage
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	storage ObjectStorage,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		storage:      storage,
	}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	exists, err := s.productRepo.ExistsBySKU(ctx, strings.ToUpper(req.SKU))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this SKU already exists")
	}

	if _, err := s.categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_CATEGORY", "Category not found")
		}
		return nil, err
	}

	product, err := catalog.NewProduct(req.Name, req.SKU, req.Price, req.StockQuantity, req.CategoryID)
	if err != nil {
		return nil, err
	}

	if req.Description != "" || req.Brand != "" {
		if err := product.Update(req.Name, req.Description, req.Brand); err != nil {
			return nil, err
		}
	}
	if req.DiscountPrice != nil {
		if err := product.SetPrice(req.Price, req.DiscountPrice); err != nil {
			return nil, err
		}
	}
	if req.IsFeatured {
		product.SetFeatured(true)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	return toProductResponse(product), nil
}

// Get returns a product by ID
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update updates an existing product
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := product.Name
	if req.Name != nil {
		name = *req.Name
	}
	description := product.Description
	if req.Description != nil {
		description = *req.Description
	}
	brand := product.Brand
	if req.Brand != nil {
		brand = *req.Brand
	}
	if err := product.Update(name, description, brand); err != nil {
		return nil, err
	}

	if req.Price != nil || req.DiscountPrice != nil {
		price := product.Price
		if req.Price != nil {
			price = *req.Price
		}
		discount := product.DiscountPrice
		if req.DiscountPrice != nil {
			discount = req.DiscountPrice
		}
		if err := product.SetPrice(price, discount); err != nil {
			return nil, err
		}
	}

	if req.StockQuantity != nil {
		if err := product.SetStock(*req.StockQuantity); err != nil {
			return nil, err
		}
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_CATEGORY", "Category not found")
			}
			return nil, err
		}
		if err := product.SetCategory(*req.CategoryID); err != nil {
			return nil, err
		}
	}

	if req.Status != nil {
		if err := product.SetStatus(catalog.ProductStatus(*req.Status)); err != nil {
			return nil, err
		}
	}
	if req.IsFeatured != nil {
		product.SetFeatured(*req.IsFeatured)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	return toProductResponse(product), nil
}

// Delete deletes a product
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

// List returns a filtered, paginated product listing
func (s *ProductService) List(ctx context.Context, req ProductFilterRequest) (*shared.Paginated[ProductResponse], error) {
	filter := buildProductFilter(req)

	products, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.productRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPaginated(toProductResponses(products), total, filter.Page, filter.PageSize)
	return &page, nil
}

// Featured returns featured active products
func (s *ProductService) Featured(ctx context.Context, limit int) ([]ProductResponse, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	products, err := s.productRepo.FindFeatured(ctx, limit)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// ByCategory returns products belonging to a category
func (s *ProductService) ByCategory(ctx context.Context, categoryID uuid.UUID, req ProductFilterRequest) (*shared.Paginated[ProductResponse], error) {
	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}

	filter := buildProductFilter(req)
	products, err := s.productRepo.FindByCategory(ctx, categoryID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.productRepo.CountByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	page := shared.NewPaginated(toProductResponses(products), total, filter.Page, filter.PageSize)
	return &page, nil
}

// UploadImage stores a product image and records its URL on the product
func (s *ProductService) UploadImage(ctx context.Context, id uuid.UUID, filename, contentType string, body io.Reader, size int64) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(path.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		return nil, shared.NewDomainError("INVALID_IMAGE", "Image must be jpg, png, or webp")
	}

	key := fmt.Sprintf("products/%s/%s%s", product.ID, uuid.New(), ext)
	url, err := s.storage.Upload(ctx, key, contentType, body, size)
	if err != nil {
		return nil, err
	}

	if err := product.SetImageURL(url); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	return toProductResponse(product), nil
}

func buildProductFilter(req ProductFilterRequest) shared.Filter {
	filter := shared.DefaultFilter()
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.PageSize > 0 {
		filter.PageSize = req.PageSize
	}
	if req.SortBy != "" {
		switch req.SortBy {
		case "rating":
			filter.OrderBy = "average_rating"
		default:
			filter.OrderBy = req.SortBy
		}
	}
	if req.SortDir != "" {
		filter.OrderDir = req.SortDir
	}
	filter.Search = req.Search
	if req.CategoryID != nil {
		filter.Filters["category_id"] = *req.CategoryID
	}
	if req.Brand != "" {
		filter.Filters["brand"] = req.Brand
	}
	if req.MinPrice != nil {
		filter.Filters["min_price"] = *req.MinPrice
	}
	if req.MaxPrice != nil {
		filter.Filters["max_price"] = *req.MaxPrice
	}
	if req.Featured != nil {
		filter.Filters["is_featured"] = *req.Featured
	}
	if req.Status != "" {
		filter.Filters["status"] = req.Status
	}
	return filter
}
