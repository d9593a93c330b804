package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/techzone/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// UserRole represents the role of a user
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleCustomer UserRole = "customer"
)

// IsValid checks if the role is a known UserRole
func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

// User represents an account in the system
type User struct {
	shared.BaseAggregateRoot
	Email        string   `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string   `gorm:"type:varchar(255);not null"`
	FirstName    string   `gorm:"type:varchar(100);not null"`
	LastName     string   `gorm:"type:varchar(100);not null"`
	Phone        string   `gorm:"type:varchar(30)"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'customer'"`
	IsActive     bool     `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a customer account with a hashed password
func NewUser(email, password, firstName, lastName string) (*User, error) {
	return newUser(email, password, firstName, lastName, RoleCustomer)
}

// NewAdmin creates an admin account with a hashed password
func NewAdmin(email, password, firstName, lastName string) (*User, error) {
	return newUser(email, password, firstName, lastName, RoleAdmin)
}

func newUser(email, password, firstName, lastName string, role UserRole) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email address is not valid")
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if firstName == "" || lastName == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "First and last name are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             email,
		PasswordHash:      string(hash),
		FirstName:         firstName,
		LastName:          lastName,
		Role:              role,
		IsActive:          true,
	}, nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ChangePassword verifies the current password and stores a new hash
func (u *User) ChangePassword(current, next string) error {
	if !u.CheckPassword(current) {
		return shared.NewDomainError("INVALID_PASSWORD", "Current password is incorrect")
	}
	if err := validatePassword(next); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcryptCost)
	if err != nil {
		return err
	}

	u.PasswordHash = string(hash)
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// UpdateProfile updates the user's editable profile fields
func (u *User) UpdateProfile(firstName, lastName, phone string) error {
	if firstName == "" || lastName == "" {
		return shared.NewDomainError("INVALID_NAME", "First and last name are required")
	}

	u.FirstName = firstName
	u.LastName = lastName
	u.Phone = phone
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// FullName returns the display name
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// IsAdmin returns true for admin accounts
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Deactivate disables the account
func (u *User) Deactivate() {
	u.IsActive = false
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 72 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 72 characters")
	}
	return nil
}
