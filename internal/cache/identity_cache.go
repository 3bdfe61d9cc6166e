// Package cache provides a Redis read-through cache for identity lookups on
// the token-verification path. Tokens themselves are stateless; only the
// stored identity record is cached, and never its password hash.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/auth-service/internal/domain"
)

const keyPrefix = "identity:id:"

// cachedIdentity is the wire form kept in Redis. The password hash is
// deliberately absent; cached records serve only authenticated-caller
// resolution.
type cachedIdentity struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

// IdentityCache caches identity records by id. A nil cache or nil client
// degrades to a pass-through so the service runs without Redis.
type IdentityCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewIdentityCache returns a new IdentityCache.
func NewIdentityCache(rdb *redis.Client, ttl time.Duration) *IdentityCache {
	return &IdentityCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached identity or nil on miss.
func (c *IdentityCache) Get(ctx context.Context, id string) (*domain.Identity, error) {
	if c == nil || c.rdb == nil {
		return nil, nil
	}
	b, err := c.rdb.Get(ctx, keyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var rec cachedIdentity
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, err
	}
	return &domain.Identity{
		ID:        rec.ID,
		Name:      rec.Name,
		Email:     rec.Email,
		AvatarURL: rec.AvatarURL,
		CreatedAt: rec.CreatedAt,
	}, nil
}

// Set stores the identity under its id.
func (c *IdentityCache) Set(ctx context.Context, identity *domain.Identity) error {
	if c == nil || c.rdb == nil || identity == nil {
		return nil
	}
	b, err := json.Marshal(cachedIdentity{
		ID:        identity.ID,
		Name:      identity.Name,
		Email:     identity.Email,
		AvatarURL: identity.AvatarURL,
		CreatedAt: identity.CreatedAt,
	})
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyPrefix+identity.ID, b, c.ttl).Err()
}

// Invalidate removes a cached identity.
func (c *IdentityCache) Invalidate(ctx context.Context, id string) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, keyPrefix+id).Err()
}
