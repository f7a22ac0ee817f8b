package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"mealdrop/metrics-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

// StatsTTL bounds how stale a cached Stats can get when no order or review
// event arrives to invalidate it: the weekly windows slide with the clock,
// so entries must expire quickly even without writes.
const StatsTTL = time.Minute

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func statsKey(restaurantID string) string {
	return "metrics:restaurant:" + restaurantID
}

func (c *RedisCache) GetStats(ctx context.Context, restaurantID string) (*domain.Stats, error) {
	payload, err := c.Client.Get(ctx, statsKey(restaurantID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var stats domain.Stats
	if err := json.Unmarshal(payload, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *RedisCache) SetStats(ctx context.Context, restaurantID string, stats *domain.Stats) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, statsKey(restaurantID), payload, c.TTL).Err()
}

func (c *RedisCache) Invalidate(ctx context.Context, restaurantID string) error {
	return c.Client.Del(ctx, statsKey(restaurantID)).Err()
}
