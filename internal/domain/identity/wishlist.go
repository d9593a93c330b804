package identity

import (
	"github.com/google/uuid"
	"github.com/techzone/backend/internal/domain/shared"
)

// WishlistItem marks a product as saved by a user.
// The user+product pair is unique.
type WishlistItem struct {
	shared.BaseEntity
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_wishlist_user_product,unique"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index:idx_wishlist_user_product,unique"`
}

// TableName returns the table name for GORM
func (WishlistItem) TableName() string {
	return "wishlist_items"
}

// NewWishlistItem creates a wishlist entry
func NewWishlistItem(userID, productID uuid.UUID) (*WishlistItem, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	return &WishlistItem{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		ProductID:  productID,
	}, nil
}
