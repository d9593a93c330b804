package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/techzone/backend/internal/domain/shared"
)

// AddressType distinguishes shipping and billing entries
type AddressType string

const (
	AddressTypeShipping AddressType = "shipping"
	AddressTypeBilling  AddressType = "billing"
)

// IsValid checks if the type is a known AddressType
func (t AddressType) IsValid() bool {
	return t == AddressTypeShipping || t == AddressTypeBilling
}

// Address is an entry in a user's address book
type Address struct {
	shared.BaseEntity
	UserID     uuid.UUID   `gorm:"type:uuid;not null;index"`
	Type       AddressType `gorm:"type:varchar(10);not null"`
	Line1      string      `gorm:"type:varchar(200);not null"`
	Line2      string      `gorm:"type:varchar(200)"`
	City       string      `gorm:"type:varchar(100);not null"`
	State      string      `gorm:"type:varchar(100)"`
	PostalCode string      `gorm:"type:varchar(20);not null"`
	Country    string      `gorm:"type:varchar(100);not null"`
	IsDefault  bool        `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (Address) TableName() string {
	return "addresses"
}

// NewAddress creates an address book entry
func NewAddress(userID uuid.UUID, addrType AddressType, line1, line2, city, state, postalCode, country string) (*Address, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	if !addrType.IsValid() {
		return nil, shared.NewDomainError("INVALID_ADDRESS_TYPE", "Address type must be shipping or billing")
	}
	if line1 == "" || city == "" || postalCode == "" || country == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Line 1, city, postal code, and country are required")
	}

	return &Address{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		Type:       addrType,
		Line1:      line1,
		Line2:      line2,
		City:       city,
		State:      state,
		PostalCode: postalCode,
		Country:    country,
	}, nil
}

// Update overwrites the address fields
func (a *Address) Update(line1, line2, city, state, postalCode, country string) error {
	if line1 == "" || city == "" || postalCode == "" || country == "" {
		return shared.NewDomainError("INVALID_ADDRESS", "Line 1, city, postal code, and country are required")
	}

	a.Line1 = line1
	a.Line2 = line2
	a.City = city
	a.State = state
	a.PostalCode = postalCode
	a.Country = country
	a.UpdatedAt = time.Now()

	return nil
}

// SetDefault toggles the default flag
func (a *Address) SetDefault(isDefault bool) {
	a.IsDefault = isDefault
	a.UpdatedAt = time.Now()
}

// Format renders the address as a single line for order snapshots
func (a *Address) Format() string {
	s := a.Line1
	if a.Line2 != "" {
		s += ", " + a.Line2
	}
	s += ", " + a.City
	if a.State != "" {
		s += ", " + a.State
	}
	s += " " + a.PostalCode + ", " + a.Country
	return s
}
