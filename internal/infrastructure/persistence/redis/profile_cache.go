// Package redis implements a read-through cache in front of the remote
// profile mirror. Peer lookups during signup and login hit the mirror for
// the same usernames repeatedly; a short TTL cache absorbs that without
// weakening the last-write-wins semantics, because every upsert rewrites
// the cached copy.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hsc-elite/progress-hub/internal/domain/profile"
)

// Key prefix for cached profile rows.
const prefixProfile = "profile:"

// TTLProfile is how long a cached mirror row stays fresh. Short by design:
// the mirror is eventually consistent anyway and peers accept staleness.
const TTLProfile = 2 * time.Minute

// Config holds Redis connection configuration.
type Config struct {
	// Addr is the Redis server address in host:port form.
	Addr string

	// Password is the authentication password (empty if no auth).
	Password string

	// DB is the Redis database number.
	DB int

	// DialTimeout is the timeout for establishing new connections.
	DialTimeout time.Duration
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig(addr string) Config {
	return Config{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	}
}

// CachedMirror wraps a profile.Mirror with a Redis read-through cache.
type CachedMirror struct {
	inner  profile.Mirror
	client *redis.Client
	ttl    time.Duration
}

// NewCachedMirror creates the cache wrapper around an existing mirror.
func NewCachedMirror(inner profile.Mirror, cfg Config) *CachedMirror {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})
	return &CachedMirror{inner: inner, client: client, ttl: TTLProfile}
}

// Close releases the Redis client. The wrapped mirror is not closed.
func (c *CachedMirror) Close() error {
	return c.client.Close()
}

func cacheKey(username profile.Username) string {
	return prefixProfile + username.String()
}

// Get implements profile.Mirror. Cache failures fall through to the mirror;
// the cache is an optimization, never a dependency.
func (c *CachedMirror) Get(ctx context.Context, username profile.Username) (*profile.Profile, error) {
	if data, err := c.client.Get(ctx, cacheKey(username)).Bytes(); err == nil {
		var p profile.Profile
		if err := json.Unmarshal(data, &p); err == nil {
			p.Sanitize()
			return &p, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		// Connection trouble: skip the cache entirely for this call.
		return c.inner.Get(ctx, username)
	}

	p, err := c.inner.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	c.store(ctx, p)
	return p, nil
}

// Upsert implements profile.Mirror, rewriting the cached copy on success.
func (c *CachedMirror) Upsert(ctx context.Context, p *profile.Profile) error {
	if err := c.inner.Upsert(ctx, p); err != nil {
		return err
	}
	c.store(ctx, p)
	return nil
}

// Health implements profile.Mirror by delegating to the wrapped mirror.
func (c *CachedMirror) Health(ctx context.Context) profile.HealthStatus {
	return c.inner.Health(ctx)
}

// Invalidate drops a cached row.
func (c *CachedMirror) Invalidate(ctx context.Context, username profile.Username) error {
	if err := c.client.Del(ctx, cacheKey(username)).Err(); err != nil {
		return fmt.Errorf("redis: invalidate %q: %w", username, err)
	}
	return nil
}

func (c *CachedMirror) store(ctx context.Context, p *profile.Profile) {
	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	// Best effort: ignore cache write failures.
	c.client.Set(ctx, cacheKey(p.Username), data, c.ttl)
}
