package watchlist

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultCacheTTL matches the daily refresh cadence of the public lists.
const DefaultCacheTTL = 24 * time.Hour

// Cached decorates a Loader with a Redis-backed cache. Cache trouble is
// never fatal: a miss, a decode failure, or an unreachable Redis all fall
// through to the wrapped loader, and a nil client degrades to a plain
// pass-through.
type Cached struct {
	loader Loader
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewCached(loader Loader, client *redis.Client, ttl time.Duration, logger *slog.Logger) *Cached {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cached{loader: loader, client: client, ttl: ttl, logger: logger}
}

func (c *Cached) Source() string {
	return c.loader.Source()
}

func (c *Cached) cacheKey() string {
	return "watchlist:" + c.loader.Source()
}

func (c *Cached) Load(ctx context.Context) ([]string, error) {
	if c.client == nil {
		return c.loader.Load(ctx)
	}

	key := c.cacheKey()
	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var names []string
		if jsonErr := json.Unmarshal(raw, &names); jsonErr == nil {
			return names, nil
		}
		// A corrupt entry is overwritten by the refresh below.
	case !errors.Is(err, redis.Nil):
		c.warn(ctx, "watchlist cache read failed", key, err)
	}

	names, err := c.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(names); err == nil {
		if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			c.warn(ctx, "watchlist cache write failed", key, err)
		}
	}
	return names, nil
}

func (c *Cached) warn(ctx context.Context, msg, key string, err error) {
	if c.logger != nil {
		c.logger.WarnContext(ctx, msg, "key", key, "error", err)
	}
}
