package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/dotacourier/match-api/internal/models"
)

const redisKeyPrefix = "perf:"

// RedisCmdable defines the slice of the redis client the cache uses.
type RedisCmdable interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// Redis stores JSON-marshaled performance records in redis with a TTL.
// Singleflight collapses concurrent fills within this process; the record is
// immutable per key, so a racing fill from another process writes the same
// value.
type Redis struct {
	rdb    RedisCmdable
	ttl    time.Duration
	group  singleflight.Group
	logger *zap.SugaredLogger
}

// NewRedis creates a redis-backed cache. ttl of 0 stores without expiry.
func NewRedis(rdb RedisCmdable, ttl time.Duration, logger *zap.Logger) *Redis {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Redis{rdb: rdb, ttl: ttl, logger: logger.Sugar()}
}

func (c *Redis) GetOrCompute(ctx context.Context, accountID, matchID string, compute func(context.Context) (*models.PlayerPerformance, error)) (*models.PlayerPerformance, bool, error) {
	key := redisKeyPrefix + cacheKey(accountID, matchID)

	if perf, ok := c.lookup(ctx, key); ok {
		cacheHits.WithLabelValues("redis").Inc()
		return perf, true, nil
	}

	v, err, shared := c.group.Do(key, func() (any, error) {
		if perf, ok := c.lookup(ctx, key); ok {
			return perf, nil
		}

		cacheMisses.WithLabelValues("redis").Inc()
		perf, err := compute(ctx)
		if err != nil {
			return nil, err
		}

		// Storing is best effort: a cache write failure must not fail the
		// request that already has the record.
		payload, err := json.Marshal(perf)
		if err != nil {
			c.logger.Warnw("Failed to marshal performance for cache", "key", key, "error", err)
			return perf, nil
		}
		if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.logger.Warnw("Failed to store performance in redis", "key", key, "error", err)
		}
		return perf, nil
	})
	if err != nil {
		return nil, false, err
	}
	return v.(*models.PlayerPerformance), shared, nil
}

func (c *Redis) lookup(ctx context.Context, key string) (*models.PlayerPerformance, bool) {
	payload, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warnw("Redis lookup failed", "key", key, "error", err)
		}
		return nil, false
	}

	var perf models.PlayerPerformance
	if err := json.Unmarshal(payload, &perf); err != nil {
		c.logger.Warnw("Discarding undecodable cache entry", "key", key, "error", err)
		return nil, false
	}
	return &perf, true
}
