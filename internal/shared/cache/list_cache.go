package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const DefaultTTL = 30 * time.Minute

// ListCache keeps read-mostly lists in redis. Concurrent misses for the same
// key share one load. A nil redis client disables caching but keeps the
// singleflight collapse.
type ListCache struct {
	rdb    *redis.Client
	sf     *singleflight.Group
	ttl    time.Duration
	logger *zap.Logger
}

func NewListCache(rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) *ListCache {
	l := zap.L().Named("cache.list")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("cache.list")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ListCache{rdb: rdb, sf: &singleflight.Group{}, ttl: ttl, logger: l}
}

// Fetch returns the cached value for key or loads, stores and returns it.
func Fetch[T any](ctx context.Context, c *ListCache, key string, load func(ctx context.Context) (T, error)) (T, error) {
	if c == nil {
		return load(ctx)
	}

	if c.rdb != nil {
		if cached, err := c.rdb.Get(ctx, key).Result(); err == nil {
			var out T
			if json.Unmarshal([]byte(cached), &out) == nil {
				return out, nil
			}
			c.logger.Warn("discarding undecodable cache entry", zap.String("key", key))
		} else if err != redis.Nil {
			c.logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		}
	}

	v, err, _ := c.sf.Do(key, func() (interface{}, error) {
		out, err := load(ctx)
		if err != nil {
			return nil, err
		}

		if c.rdb != nil {
			if payload, err := json.Marshal(out); err == nil {
				if err := c.rdb.Set(ctx, key, string(payload), c.ttl).Err(); err != nil {
					c.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
				}
			}
		}
		return out, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// Invalidate removes keys. Failures are logged only.
func (c *ListCache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.rdb == nil || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.logger.Error("failed to invalidate cache", zap.Strings("keys", keys), zap.Error(err))
	}
}
