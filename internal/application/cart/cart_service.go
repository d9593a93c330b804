package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/techzone/backend/internal/domain/cart"
	"github.com/techzone/backend/internal/domain/catalog"
	"github.com/techzone/backend/internal/domain/shared"
)

// CartService handles shopping cart operations
type CartService struct {
	cartRepo    cart.CartRepository
	productRepo catalog.ProductRepository
}

// NewCartService creates a new CartService
func NewCartService(cartRepo cart.CartRepository, productRepo catalog.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// Get returns the user's cart, resolving lines against the current
// catalog for name, image, and stock availability. Users without a
// cart get an empty one.
func (s *CartService) Get(ctx context.Context, userID uuid.UUID) (*CartResponse, error) {
	c, err := s.findOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	products, err := s.resolveProducts(ctx, c)
	if err != nil {
		return nil, err
	}

	return toCartResponse(c, products), nil
}

// AddItem adds a product to the user's cart, creating the cart on first
// use. Stock is not checked here; the checkout is the authoritative
// gate, and carts may hold more than is currently available.
func (s *CartService) AddItem(ctx context.Context, userID uuid.UUID, req AddItemRequest) (*CartResponse, error) {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	c, err := s.findOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := c.AddItem(product.ID, product.Name, product.EffectivePrice(), req.Quantity); err != nil {
		return nil, err
	}
	if err := s.cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	products, err := s.resolveProducts(ctx, c)
	if err != nil {
		return nil, err
	}
	return toCartResponse(c, products), nil
}

// UpdateItem overwrites a line quantity
func (s *CartService) UpdateItem(ctx context.Context, userID, productID uuid.UUID, req UpdateItemRequest) (*CartResponse, error) {
	c, err := s.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := c.UpdateItemQuantity(productID, req.Quantity); err != nil {
		return nil, err
	}
	if err := s.cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	products, err := s.resolveProducts(ctx, c)
	if err != nil {
		return nil, err
	}
	return toCartResponse(c, products), nil
}

// RemoveItem deletes a line from the user's cart
func (s *CartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*CartResponse, error) {
	c, err := s.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := c.RemoveItem(productID); err != nil {
		return nil, err
	}
	if err := s.cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	products, err := s.resolveProducts(ctx, c)
	if err != nil {
		return nil, err
	}
	return toCartResponse(c, products), nil
}

// Clear empties the user's cart. A user without a cart gets not found.
func (s *CartService) Clear(ctx context.Context, userID uuid.UUID) error {
	c, err := s.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}

	c.Clear()
	return s.cartRepo.Save(ctx, c)
}

func (s *CartService) findOrCreate(ctx context.Context, userID uuid.UUID) (*cart.Cart, error) {
	c, err := s.cartRepo.FindByUserID(ctx, userID)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	c, err = cart.NewCart(userID)
	if err != nil {
		return nil, err
	}
	if err := s.cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CartService) resolveProducts(ctx context.Context, c *cart.Cart) (map[uuid.UUID]*catalog.Product, error) {
	if len(c.Items) == 0 {
		return map[uuid.UUID]*catalog.Product{}, nil
	}

	ids := make([]uuid.UUID, 0, len(c.Items))
	for idx := range c.Items {
		ids = append(ids, c.Items[idx].ProductID)
	}

	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*catalog.Product, len(products))
	for idx := range products {
		byID[products[idx].ID] = &products[idx]
	}
	return byID, nil
}
