package redisadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"pulse-ads/internal/core/port"
)

const trendingKey = "ads:trending"

// TrendingCache implements port.TrendingCache on Redis. The whole ranked
// list is stored as one JSON value with a short TTL; a cold or failing
// Redis only costs a recomputation, never a request.
type TrendingCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewTrendingCache returns a cache with the given TTL.
func NewTrendingCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *TrendingCache {
	return &TrendingCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached ranking, reporting a miss through the second
// return value.
func (c *TrendingCache) Get(ctx context.Context) ([]port.TrendingAd, bool, error) {
	payload, err := c.client.Get(ctx, trendingKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		c.logger.Warn("trending cache read failed", slog.Any("error", err))
		return nil, false, err
	}
	var ads []port.TrendingAd
	if err = json.Unmarshal(payload, &ads); err != nil {
		c.logger.Warn("trending cache payload corrupt", slog.Any("error", err))
		return nil, false, err
	}
	return ads, true, nil
}

// Set stores the ranking with the configured TTL.
func (c *TrendingCache) Set(ctx context.Context, ads []port.TrendingAd) error {
	payload, err := json.Marshal(ads)
	if err != nil {
		return err
	}
	if err = c.client.Set(ctx, trendingKey, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("trending cache write failed", slog.Any("error", err))
		return err
	}
	return nil
}
