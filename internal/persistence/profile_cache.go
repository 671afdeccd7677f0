package persistence

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const profileCachePrefix = "public_profile:"

// ProfileCache stores rendered public-profile snapshots in Redis. The
// auth and verification workflows never touch it; only the public read
// path does, so a cold or unreachable cache degrades to a database read.
type ProfileCache struct {
	redis *Redis
	ttl   time.Duration
}

// NewProfileCache builds a cache with the given entry TTL. A nil Redis
// wrapper or zero TTL disables caching entirely.
func NewProfileCache(r *Redis, ttl time.Duration) *ProfileCache {
	return &ProfileCache{redis: r, ttl: ttl}
}

func (c *ProfileCache) enabled() bool {
	return c != nil && c.redis != nil && c.redis.Client != nil && c.ttl > 0
}

// Get unmarshals a cached snapshot into dest. The bool reports a hit.
func (c *ProfileCache) Get(ctx context.Context, username string, dest any) (bool, error) {
	if !c.enabled() {
		return false, nil
	}
	raw, err := c.redis.Client.Get(ctx, profileCachePrefix+username).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set stores a snapshot under the username key.
func (c *ProfileCache) Set(ctx context.Context, username string, value any) error {
	if !c.enabled() {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.redis.Client.Set(ctx, profileCachePrefix+username, raw, c.ttl).Err()
}

// Invalidate drops the snapshot for a username after any profile mutation.
func (c *ProfileCache) Invalidate(ctx context.Context, username string) error {
	if !c.enabled() {
		return nil
	}
	return c.redis.Client.Del(ctx, profileCachePrefix+username).Err()
}
