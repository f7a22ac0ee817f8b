package storage

import (
	"context"
	"time"

	"mealdrop/rate-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func aggregateKey(restaurantID string) string {
	return "restaurant:" + restaurantID + ":rating"
}

func (c *RedisCache) GetAggregate(ctx context.Context, restaurantID string) (*domain.Aggregate, error) {
	fields, err := c.Client.HGetAll(ctx, aggregateKey(restaurantID)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}

	var agg domain.Aggregate
	agg.RestaurantID = restaurantID
	if err := c.Client.HGet(ctx, aggregateKey(restaurantID), "rating").Scan(&agg.Rating); err != nil {
		return nil, err
	}
	if err := c.Client.HGet(ctx, aggregateKey(restaurantID), "total_reviews").Scan(&agg.TotalReviews); err != nil {
		return nil, err
	}
	return &agg, nil
}

func (c *RedisCache) SetAggregate(ctx context.Context, agg *domain.Aggregate) error {
	key := aggregateKey(agg.RestaurantID)
	if err := c.Client.HSet(ctx, key,
		"rating", agg.Rating,
		"total_reviews", agg.TotalReviews,
	).Err(); err != nil {
		return err
	}
	return c.Client.Expire(ctx, key, c.TTL).Err()
}
