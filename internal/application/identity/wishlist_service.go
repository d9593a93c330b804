package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/techzone/backend/internal/domain/catalog"
	"github.com/techzone/backend/internal/domain/identity"
	"github.com/techzone/backend/internal/domain/shared"
)

// WishlistService manages a user's saved products
type WishlistService struct {
	wishlistRepo identity.WishlistRepository
	productRepo  catalog.ProductRepository
}

// NewWishlistService creates a new WishlistService
func NewWishlistService(wishlistRepo identity.WishlistRepository, productRepo catalog.ProductRepository) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

// List returns the caller's wishlist
func (s *WishlistService) List(ctx context.Context, userID uuid.UUID) ([]WishlistItemResponse, error) {
	items, err := s.wishlistRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toWishlistResponses(items), nil
}

// Add saves a product to the caller's wishlist. Re-adding is rejected.
func (s *WishlistService) Add(ctx context.Context, userID, productID uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return err
	}

	exists, err := s.wishlistRepo.Exists(ctx, userID, productID)
	if err != nil {
		return err
	}
	if exists {
		return shared.NewDomainError("ALREADY_EXISTS", "Product is already in the wishlist")
	}

	item, err := identity.NewWishlistItem(userID, productID)
	if err != nil {
		return err
	}
	return s.wishlistRepo.Save(ctx, item)
}

// Remove deletes a product from the caller's wishlist
func (s *WishlistService) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	exists, err := s.wishlistRepo.Exists(ctx, userID, productID)
	if err != nil {
		return err
	}
	if !exists {
		return shared.ErrNotFound
	}
	return s.wishlistRepo.Delete(ctx, userID, productID)
}
