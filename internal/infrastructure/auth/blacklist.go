package auth

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenBlacklist tracks revoked tokens and user-wide revocations
type TokenBlacklist interface {
	// RevokeToken blacklists a token id for the given lifetime
	RevokeToken(ctx context.Context, jti string, ttl time.Duration) error
	// IsTokenRevoked reports whether a token id is blacklisted
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
	// RevokeUser invalidates all tokens the user holds as of now
	RevokeUser(ctx context.Context, userID string, ttl time.Duration) error
	// UserRevokedAt returns the user's revocation cutoff, if any.
	// Tokens issued before the cutoff are invalid.
	UserRevokedAt(ctx context.Context, userID string) (time.Time, bool, error)
}

// MemoryBlacklist is a process-local blacklist for single-instance
// deployments and tests.
type MemoryBlacklist struct {
	mu     sync.RWMutex
	tokens map[string]time.Time
	users  map[string]userRevocation
}

type userRevocation struct {
	cutoff  time.Time
	expires time.Time
}

// NewMemoryBlacklist creates an in-memory token blacklist
func NewMemoryBlacklist() *MemoryBlacklist {
	return &MemoryBlacklist{
		tokens: make(map[string]time.Time),
		users:  make(map[string]userRevocation),
	}
}

var _ TokenBlacklist = (*MemoryBlacklist)(nil)

// RevokeToken blacklists a token id until its expiry
func (b *MemoryBlacklist) RevokeToken(_ context.Context, jti string, ttl time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tokens[jti] = time.Now().Add(ttl)
	b.sweepLocked()
	return nil
}

// IsTokenRevoked reports whether a token id is blacklisted
func (b *MemoryBlacklist) IsTokenRevoked(_ context.Context, jti string) (bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	expires, ok := b.tokens[jti]
	return ok && time.Now().Before(expires), nil
}

// RevokeUser records a revocation cutoff for all of the user's tokens
func (b *MemoryBlacklist) RevokeUser(_ context.Context, userID string, ttl time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	now := time.Now()
	b.users[userID] = userRevocation{cutoff: now, expires: now.Add(ttl)}
	b.sweepLocked()
	return nil
}

// UserRevokedAt returns the user's revocation cutoff, if still in effect
func (b *MemoryBlacklist) UserRevokedAt(_ context.Context, userID string) (time.Time, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	rev, ok := b.users[userID]
	if !ok || time.Now().After(rev.expires) {
		return time.Time{}, false, nil
	}
	return rev.cutoff, true, nil
}

// sweepLocked drops expired entries. Called under the write lock.
func (b *MemoryBlacklist) sweepLocked() {
	now := time.Now()
	for jti, expires := range b.tokens {
		if now.After(expires) {
			delete(b.tokens, jti)
		}
	}
	for id, rev := range b.users {
		if now.After(rev.expires) {
			delete(b.users, id)
		}
	}
}

// RedisBlacklist backs the blacklist with Redis so revocations hold
// across instances and restarts.
type RedisBlacklist struct {
	client *redis.Client
}

// NewRedisBlacklist creates a Redis-backed token blacklist
func NewRedisBlacklist(client *redis.Client) *RedisBlacklist {
	return &RedisBlacklist{client: client}
}

var _ TokenBlacklist = (*RedisBlacklist)(nil)

const (
	tokenKeyPrefix = "blacklist:token:"
	userKeyPrefix  = "blacklist:user:"
)

// RevokeToken blacklists a token id until its expiry
func (b *RedisBlacklist) RevokeToken(ctx context.Context, jti string, ttl time.Duration) error {
	return b.client.Set(ctx, tokenKeyPrefix+jti, "1", ttl).Err()
}

// IsTokenRevoked reports whether a token id is blacklisted
func (b *RedisBlacklist) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := b.client.Exists(ctx, tokenKeyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// RevokeUser records a revocation cutoff for all of the user's tokens
func (b *RedisBlacklist) RevokeUser(ctx context.Context, userID string, ttl time.Duration) error {
	cutoff := time.Now().UTC().Format(time.RFC3339Nano)
	return b.client.Set(ctx, userKeyPrefix+userID, cutoff, ttl).Err()
}

// UserRevokedAt returns the user's revocation cutoff, if any
func (b *RedisBlacklist) UserRevokedAt(ctx context.Context, userID string) (time.Time, bool, error) {
	val, err := b.client.Get(ctx, userKeyPrefix+userID).Result()
	if err == redis.Nil {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	cutoff, err := time.Parse(time.RFC3339Nano, val)
	if err != nil {
		return time.Time{}, false, err
	}
	return cutoff, true, nil
}
