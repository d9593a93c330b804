package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/techzone/backend/internal/domain/identity"
	"github.com/techzone/backend/internal/infrastructure/auth"
	"github.com/techzone/backend/internal/interfaces/http/dto"
)

// Context keys set by the auth middleware
const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
	ContextRole   = "role"
	ContextToken  = "raw_token"
)

// Auth validates the bearer token, rejects revoked tokens, and puts the
// caller's identity on the gin context.
func Auth(jwtService *auth.JWTService, blacklist auth.TokenBlacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			abortUnauthorized(c, "Missing authorization token")
			return
		}

		claims, err := jwtService.ValidateAccessToken(raw)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		// Revocation checks fail closed: an unreachable blacklist must
		// not admit a token that may have been revoked.
		revoked, err := blacklist.IsTokenRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			abortUnauthorized(c, "Unable to verify token")
			return
		}
		if revoked {
			abortUnauthorized(c, "Token has been revoked")
			return
		}

		// A password change revokes every token issued before the cutoff.
		cutoff, ok, err := blacklist.UserRevokedAt(c.Request.Context(), claims.UserID)
		if err != nil {
			abortUnauthorized(c, "Unable to verify token")
			return
		}
		if ok && claims.IssuedAt != nil && claims.IssuedAt.Time.Before(cutoff) {
			abortUnauthorized(c, "Token has been revoked")
			return
		}

		userID, err := claims.UserUUID()
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)
		c.Set(ContextToken, raw)
		c.Next()
	}
}

// RequireAdmin rejects callers without the admin role. It must run
// after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(ContextRole)
		if role != string(identity.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Error("Admin access required"))
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated caller's id
func UserID(c *gin.Context) uuid.UUID {
	v, _ := c.Get(ContextUserID)
	id, _ := v.(uuid.UUID)
	return id
}

// IsAdmin reports whether the caller has the admin role
func IsAdmin(c *gin.Context) bool {
	role, _ := c.Get(ContextRole)
	return role == string(identity.RoleAdmin)
}

// RawToken returns the bearer token the caller presented
func RawToken(c *gin.Context) string {
	v, _ := c.Get(ContextToken)
	raw, _ := v.(string)
	return raw
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error(message))
}
