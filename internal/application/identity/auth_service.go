package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/techzone/backend/internal/domain/identity"
	"github.com/techzone/backend/internal/domain/shared"
)

// TokenIssuer mints and refreshes access/refresh token pairs
type TokenIssuer interface {
	Issue(user *identity.User) (*TokenPair, error)
	Refresh(refreshToken string) (uuid.UUID, error)
}

// TokenRevoker invalidates outstanding tokens
type TokenRevoker interface {
	// RevokeToken blacklists a single presented token for its remaining lifetime
	RevokeToken(ctx context.Context, rawToken string) error
	// RevokeUser invalidates every token issued to the user so far
	RevokeUser(ctx context.Context, userID uuid.UUID) error
}

// AuthService handles registration, login, and account management
type AuthService struct {
	userRepo identity.UserRepository
	issuer   TokenIssuer
	revoker  TokenRevoker
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo identity.UserRepository, issuer TokenIssuer, revoker TokenRevoker) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		issuer:   issuer,
		revoker:  revoker,
	}
}

// Register creates a customer account and logs it in
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An account with this email already exists")
	}

	user, err := identity.NewUser(email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		return nil, err
	}
	if req.Phone != "" {
		if err := user.UpdateProfile(req.FirstName, req.LastName, req.Phone); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	return s.authResponse(user)
}

// Login verifies credentials and issues a token pair. Wrong email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, shared.NewDomainError("ACCOUNT_DISABLED", "This account has been disabled")
	}
	if !user.CheckPassword(req.Password) {
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	return s.authResponse(user)
}

// Refresh exchanges a valid refresh token for a new pair
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest) (*AuthResponse, error) {
	userID, err := s.issuer.Refresh(req.RefreshToken)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Refresh token is invalid or expired")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, shared.NewDomainError("ACCOUNT_DISABLED", "This account has been disabled")
	}

	return s.authResponse(user)
}

// Logout blacklists the presented access token
func (s *AuthService) Logout(ctx context.Context, rawToken string) error {
	return s.revoker.RevokeToken(ctx, rawToken)
}

// Profile returns the caller's account
func (s *AuthService) Profile(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// UpdateProfile updates the caller's editable fields
func (s *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := user.UpdateProfile(req.FirstName, req.LastName, req.Phone); err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

// ChangePassword rotates the password and invalidates every token
// issued before the change.
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := user.ChangePassword(req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	return s.revoker.RevokeUser(ctx, userID)
}

func (s *AuthService) authResponse(user *identity.User) (*AuthResponse, error) {
	tokens, err := s.issuer.Issue(user)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		User:   toUserResponse(user),
		Tokens: *tokens,
	}, nil
}
