package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/techzone/backend/internal/domain/shared"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// FindByID finds a user by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail finds a user by email (lowercased)
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindAll finds all users matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]User, error)

	// ExistsByEmail checks if an account with the email exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Save creates or updates a user
	Save(ctx context.Context, user *User) error

	// Count counts users matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// AddressRepository defines the interface for address persistence
type AddressRepository interface {
	// FindByID finds an address by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Address, error)

	// FindByUserID finds all addresses of a user
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]Address, error)

	// Save creates or updates an address
	Save(ctx context.Context, address *Address) error

	// Delete deletes an address
	Delete(ctx context.Context, id uuid.UUID) error

	// ClearDefault unsets the default flag on a user's addresses of a type
	ClearDefault(ctx context.Context, userID uuid.UUID, addrType AddressType) error
}

// WishlistRepository defines the interface for wishlist persistence
type WishlistRepository interface {
	// FindByUserID finds a user's wishlist entries, newest first
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]WishlistItem, error)

	// Exists checks whether the user already saved the product
	Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error)

	// Save creates a wishlist entry
	Save(ctx context.Context, item *WishlistItem) error

	// Delete removes a product from the user's wishlist
	Delete(ctx context.Context, userID, productID uuid.UUID) error
}
