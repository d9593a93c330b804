package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/techzone/backend/internal/domain/identity"
	"github.com/techzone/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormUserRepository implements identity.UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

var _ identity.UserRepository = (*GormUserRepository)(nil)

// FindByID finds a user by its ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	var user identity.User
	err := dbFrom(ctx, r.db).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	var user identity.User
	err := dbFrom(ctx, r.db).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindAll finds all users matching the filter
func (r *GormUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	var users []identity.User
	query := dbFrom(ctx, r.db).Model(&identity.User{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?", pattern, pattern, pattern)
	}
	err := query.
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// ExistsByEmail checks if an account with the email exists
func (r *GormUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := dbFrom(ctx, r.db).Model(&identity.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a user
func (r *GormUserRepository) Save(ctx context.Context, user *identity.User) error {
	return dbFrom(ctx, r.db).Save(user).Error
}

// Count counts users matching the filter
func (r *GormUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := dbFrom(ctx, r.db).Model(&identity.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GormAddressRepository implements identity.AddressRepository
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GormAddressRepository
func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

var _ identity.AddressRepository = (*GormAddressRepository)(nil)

// FindByID finds an address by its ID
func (r *GormAddressRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Address, error) {
	var address identity.Address
	err := dbFrom(ctx, r.db).First(&address, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &address, nil
}

// FindByUserID finds all addresses of a user
func (r *GormAddressRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]identity.Address, error) {
	var addresses []identity.Address
	err := dbFrom(ctx, r.db).Where("user_id = ?", userID).Order("created_at ASC").Find(&addresses).Error
	if err != nil {
		return nil, err
	}
	return addresses, nil
}

// Save creates or updates an address
func (r *GormAddressRepository) Save(ctx context.Context, address *identity.Address) error {
	return dbFrom(ctx, r.db).Save(address).Error
}

// Delete deletes an address
func (r *GormAddressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := dbFrom(ctx, r.db).Delete(&identity.Address{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ClearDefault unsets the default flag on a user's addresses of a type
func (r *GormAddressRepository) ClearDefault(ctx context.Context, userID uuid.UUID, addrType identity.AddressType) error {
	return dbFrom(ctx, r.db).Model(&identity.Address{}).
		Where("user_id = ? AND type = ?", userID, addrType).
		Update("is_default", false).Error
}

// GormWishlistRepository implements identity.WishlistRepository
type GormWishlistRepository struct {
	db *gorm.DB
}

// NewGormWishlistRepository creates a new GormWishlistRepository
func NewGormWishlistRepository(db *gorm.DB) *GormWishlistRepository {
	return &GormWishlistRepository{db: db}
}

var _ identity.WishlistRepository = (*GormWishlistRepository)(nil)

// FindByUserID finds a user's wishlist entries, newest first
func (r *GormWishlistRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]identity.WishlistItem, error) {
	var items []identity.WishlistItem
	err := dbFrom(ctx, r.db).Where("user_id = ?", userID).Order("created_at DESC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Exists checks whether the user already saved the product
func (r *GormWishlistRepository) Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	var count int64
	err := dbFrom(ctx, r.db).Model(&identity.WishlistItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates a wishlist entry
func (r *GormWishlistRepository) Save(ctx context.Context, item *identity.WishlistItem) error {
	return dbFrom(ctx, r.db).Save(item).Error
}

// Delete removes a product from the user's wishlist
func (r *GormWishlistRepository) Delete(ctx context.Context, userID, productID uuid.UUID) error {
	result := dbFrom(ctx, r.db).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&identity.WishlistItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
