package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	appidentity "github.com/techzone/backend/internal/application/identity"
)

// Revoker invalidates tokens through the blacklist
type Revoker struct {
	jwt       *JWTService
	blacklist TokenBlacklist
	userTTL   time.Duration
}

// NewRevoker creates a Revoker. userTTL should cover the refresh token
// lifetime so a user-wide revocation outlives every outstanding token.
func NewRevoker(jwt *JWTService, blacklist TokenBlacklist, userTTL time.Duration) *Revoker {
	return &Revoker{jwt: jwt, blacklist: blacklist, userTTL: userTTL}
}

var _ appidentity.TokenRevoker = (*Revoker)(nil)

// RevokeToken blacklists the presented access token for its remaining lifetime
func (r *Revoker) RevokeToken(ctx context.Context, rawToken string) error {
	claims, err := r.jwt.ValidateAccessToken(rawToken)
	if err != nil {
		// An invalid or expired token needs no revocation.
		return nil
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 0 {
		return nil
	}
	return r.blacklist.RevokeToken(ctx, claims.ID, remaining)
}

// RevokeUser invalidates every token issued to the user so far
func (r *Revoker) RevokeUser(ctx context.Context, userID uuid.UUID) error {
	return r.blacklist.RevokeUser(ctx, userID.String(), r.userTTL)
}
