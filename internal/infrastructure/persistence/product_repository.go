package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/techzone/backend/internal/domain/catalog"
	"github.com/techzone/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormProductRepository implements catalog.ProductRepository
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

var _ catalog.ProductRepository = (*GormProductRepository)(nil)

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	err := dbFrom(ctx, r.db).First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindBySKU finds a product by its SKU
func (r *GormProductRepository) FindBySKU(ctx context.Context, sku string) (*catalog.Product, error) {
	var product catalog.Product
	err := dbFrom(ctx, r.db).First(&product, "sku = ?", sku).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindAll finds all products matching the filter
func (r *GormProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	var products []catalog.Product
	query := r.applyFilter(dbFrom(ctx, r.db).Model(&catalog.Product{}), filter, true)
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindFeatured finds featured active products
func (r *GormProductRepository) FindFeatured(ctx context.Context, limit int) ([]catalog.Product, error) {
	var products []catalog.Product
	err := dbFrom(ctx, r.db).
		Where("is_featured = ? AND status = ?", true, catalog.ProductStatusActive).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// FindByCategory finds products in a category
func (r *GormProductRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID, filter shared.Filter) ([]catalog.Product, error) {
	var products []catalog.Product
	query := r.applyFilter(dbFrom(ctx, r.db).Model(&catalog.Product{}), filter, true).
		Where("category_id = ?", categoryID)
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByIDs finds multiple products by their IDs
func (r *GormProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	var products []catalog.Product
	if len(ids) == 0 {
		return products, nil
	}
	if err := dbFrom(ctx, r.db).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return dbFrom(ctx, r.db).Save(product).Error
}

// DecrementStock reduces stock with a stock_quantity >= qty guard so
// two concurrent checkouts cannot oversell: the second loses the guard
// and gets ErrInsufficientStock. Hitting zero flips an active product
// to out of stock in the same statement.
func (r *GormProductRepository) DecrementStock(ctx context.Context, id uuid.UUID, qty int) error {
	if qty <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	result := dbFrom(ctx, r.db).Model(&catalog.Product{}).
		Where("id = ? AND stock_quantity >= ?", id, qty).
		Updates(map[string]interface{}{
			"stock_quantity": gorm.Expr("stock_quantity - ?", qty),
			"status": gorm.Expr(
				"CASE WHEN stock_quantity - ? = 0 AND status = ? THEN ? ELSE status END",
				qty, catalog.ProductStatusActive, catalog.ProductStatusOutOfStock,
			),
			"version":    gorm.Expr("version + 1"),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrInsufficientStock
	}
	return nil
}

// RestoreStock returns qty units after a cancellation or refund,
// reactivating an out-of-stock product.
func (r *GormProductRepository) RestoreStock(ctx context.Context, id uuid.UUID, qty int) error {
	if qty <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	result := dbFrom(ctx, r.db).Model(&catalog.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"stock_quantity": gorm.Expr("stock_quantity + ?", qty),
			"status": gorm.Expr(
				"CASE WHEN status = ? THEN ? ELSE status END",
				catalog.ProductStatusOutOfStock, catalog.ProductStatusActive,
			),
			"version":    gorm.Expr("version + 1"),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a product
func (r *GormProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := dbFrom(ctx, r.db).Delete(&catalog.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts products matching the filter
func (r *GormProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(dbFrom(ctx, r.db).Model(&catalog.Product{}), filter, false)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByCategory counts products in a category
func (r *GormProductRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	err := dbFrom(ctx, r.db).Model(&catalog.Product{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsBySKU checks if a product with the given SKU exists
func (r *GormProductRepository) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	var count int64
	err := dbFrom(ctx, r.db).Model(&catalog.Product{}).
		Where("sku = ?", sku).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter translates a shared.Filter into query clauses. Pagination
// and ordering are skipped for count queries.
func (r *GormProductRepository) applyFilter(query *gorm.DB, filter shared.Filter, paginate bool) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if v, ok := filter.Filters["category_id"]; ok {
		query = query.Where("category_id = ?", v)
	}
	if v, ok := filter.Filters["brand"]; ok {
		query = query.Where("brand = ?", v)
	}
	if v, ok := filter.Filters["min_price"]; ok {
		query = query.Where("price >= ?", v)
	}
	if v, ok := filter.Filters["max_price"]; ok {
		query = query.Where("price <= ?", v)
	}
	if v, ok := filter.Filters["is_featured"]; ok {
		query = query.Where("is_featured = ?", v)
	}
	if v, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", v)
	}

	if paginate {
		query = query.
			Order(orderClause(filter, map[string]bool{"name": true, "price": true, "average_rating": true, "created_at": true})).
			Offset((filter.Page - 1) * filter.PageSize).
			Limit(filter.PageSize)
	}
	return query
}

// orderClause builds a safe ORDER BY from an allow-listed column set
func orderClause(filter shared.Filter, allowed map[string]bool) string {
	column := "created_at"
	if allowed[filter.OrderBy] {
		column = filter.OrderBy
	}
	direction := "DESC"
	if filter.OrderDir == "asc" {
		direction = "ASC"
	}
	return fmt.Sprintf("%s %s", column, direction)
}
