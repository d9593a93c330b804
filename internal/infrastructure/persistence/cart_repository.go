package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/techzone/backend/internal/domain/cart"
	"github.com/techzone/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCartRepository implements cart.CartRepository
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

var _ cart.CartRepository = (*GormCartRepository)(nil)

// FindByID finds a cart with its items by ID
func (r *GormCartRepository) FindByID(ctx context.Context, id uuid.UUID) (*cart.Cart, error) {
	var c cart.Cart
	err := dbFrom(ctx, r.db).Preload("Items").First(&c, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// FindByUserID finds the cart belonging to a user
func (r *GormCartRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*cart.Cart, error) {
	var c cart.Cart
	err := dbFrom(ctx, r.db).Preload("Items").First(&c, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Save persists the cart and replaces its item set. Removed lines are
// deleted so the stored items always mirror the aggregate.
func (r *GormCartRepository) Save(ctx context.Context, c *cart.Cart) error {
	db := dbFrom(ctx, r.db)
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(c).Error; err != nil {
			return err
		}

		keep := make([]uuid.UUID, 0, len(c.Items))
		for idx := range c.Items {
			keep = append(keep, c.Items[idx].ID)
		}

		cleanup := tx.Where("cart_id = ?", c.ID)
		if len(keep) > 0 {
			cleanup = cleanup.Where("id NOT IN ?", keep)
		}
		if err := cleanup.Delete(&cart.CartItem{}).Error; err != nil {
			return err
		}

		for idx := range c.Items {
			if err := tx.Save(&c.Items[idx]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete deletes a cart and its items
func (r *GormCartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := dbFrom(ctx, r.db)
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", id).Delete(&cart.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&cart.Cart{}, "id = ?", id).Error
	})
}
