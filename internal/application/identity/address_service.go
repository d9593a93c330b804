package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/techzone/backend/internal/domain/identity"
	"github.com/techzone/backend/internal/domain/shared"
)

// AddressService manages a user's address book
type AddressService struct {
	addressRepo identity.AddressRepository
}

// NewAddressService creates a new AddressService
func NewAddressService(addressRepo identity.AddressRepository) *AddressService {
	return &AddressService{addressRepo: addressRepo}
}

// List returns the caller's addresses
func (s *AddressService) List(ctx context.Context, userID uuid.UUID) ([]AddressResponse, error) {
	addresses, err := s.addressRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toAddressResponses(addresses), nil
}

// Create adds an address to the caller's book. Marking it default
// clears any previous default of the same type.
func (s *AddressService) Create(ctx context.Context, userID uuid.UUID, req CreateAddressRequest) (*AddressResponse, error) {
	address, err := identity.NewAddress(userID, identity.AddressType(req.Type),
		req.Line1, req.Line2, req.City, req.State, req.PostalCode, req.Country)
	if err != nil {
		return nil, err
	}

	if req.IsDefault {
		if err := s.addressRepo.ClearDefault(ctx, userID, address.Type); err != nil {
			return nil, err
		}
		address.SetDefault(true)
	}

	if err := s.addressRepo.Save(ctx, address); err != nil {
		return nil, err
	}

	return toAddressResponse(address), nil
}

// Update overwrites one of the caller's addresses
func (s *AddressService) Update(ctx context.Context, userID, addressID uuid.UUID, req UpdateAddressRequest) (*AddressResponse, error) {
	address, err := s.ownedAddress(ctx, userID, addressID)
	if err != nil {
		return nil, err
	}

	if err := address.Update(req.Line1, req.Line2, req.City, req.State, req.PostalCode, req.Country); err != nil {
		return nil, err
	}

	if req.IsDefault != nil && *req.IsDefault && !address.IsDefault {
		if err := s.addressRepo.ClearDefault(ctx, userID, address.Type); err != nil {
			return nil, err
		}
		address.SetDefault(true)
	}

	if err := s.addressRepo.Save(ctx, address); err != nil {
		return nil, err
	}

	return toAddressResponse(address), nil
}

// Delete removes one of the caller's addresses
func (s *AddressService) Delete(ctx context.Context, userID, addressID uuid.UUID) error {
	if _, err := s.ownedAddress(ctx, userID, addressID); err != nil {
		return err
	}
	return s.addressRepo.Delete(ctx, addressID)
}

func (s *AddressService) ownedAddress(ctx context.Context, userID, addressID uuid.UUID) (*identity.Address, error) {
	address, err := s.addressRepo.FindByID(ctx, addressID)
	if err != nil {
		return nil, err
	}
	if address.UserID != userID {
		return nil, shared.ErrForbidden
	}
	return address, nil
}
