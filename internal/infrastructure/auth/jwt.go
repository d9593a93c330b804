package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	appidentity "github.com/techzone/backend/internal/application/identity"
	"github.com/techzone/backend/internal/domain/identity"
	"github.com/techzone/backend/internal/infrastructure/config"
)

// TokenType distinguishes access and refresh tokens
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrInvalidTokenType = errors.New("invalid token type")
)

// Claims carries the identity embedded in a signed token
type Claims struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

// UserUUID parses the user id claim
func (c *Claims) UserUUID() (uuid.UUID, error) {
	return uuid.Parse(c.UserID)
}

// JWTService signs and validates access/refresh token pairs
type JWTService struct {
	cfg config.JWTConfig
}

// NewJWTService creates a new JWTService
func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{cfg: cfg}
}

var _ appidentity.TokenIssuer = (*JWTService)(nil)

// Issue mints an access/refresh pair for a user
func (s *JWTService) Issue(user *identity.User) (*appidentity.TokenPair, error) {
	now := time.Now()
	accessExpiry := now.Add(s.cfg.AccessExpiration)
	refreshExpiry := now.Add(s.cfg.RefreshExpiration)

	access, err := s.sign(user, TokenTypeAccess, now, accessExpiry, []byte(s.cfg.AccessSecret))
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}
	refresh, err := s.sign(user, TokenTypeRefresh, now, refreshExpiry, []byte(s.cfg.RefreshSecret))
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	return &appidentity.TokenPair{
		AccessToken:           access,
		RefreshToken:          refresh,
		AccessTokenExpiresAt:  accessExpiry,
		RefreshTokenExpiresAt: refreshExpiry,
		TokenType:             "Bearer",
	}, nil
}

// Refresh validates a refresh token and returns the subject user id
func (s *JWTService) Refresh(refreshToken string) (uuid.UUID, error) {
	claims, err := s.validate(refreshToken, []byte(s.cfg.RefreshSecret), TokenTypeRefresh)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.UserUUID()
}

// ValidateAccessToken parses and verifies an access token
func (s *JWTService) ValidateAccessToken(raw string) (*Claims, error) {
	return s.validate(raw, []byte(s.cfg.AccessSecret), TokenTypeAccess)
}

func (s *JWTService) sign(user *identity.User, tokenType TokenType, now, expiry time.Time, secret []byte) (string, error) {
	claims := &Claims{
		UserID:    user.ID.String(),
		Email:     user.Email,
		Role:      string(user.Role),
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID.String(),
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiry),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (s *JWTService) validate(raw string, secret []byte, expected TokenType) (*Claims, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != expected {
		return nil, ErrInvalidTokenType
	}
	return claims, nil
}
