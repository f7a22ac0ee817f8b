package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealdrop/metrics-svc/internal/domain"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	return NewRedisCache(client, time.Hour), server
}

func TestRedisCache_StatsRoundtrip(t *testing.T) {
	cache, server := newTestCache(t)
	ctx := context.Background()

	stats := &domain.Stats{
		TotalOrders:  3,
		TotalRevenue: 600,
		This7Orders:  1,
		This7Revenue: 100,
		Prev7Orders:  1,
		Prev7Revenue: 200,
		RevenueDiff:  -100,
	}

	require.NoError(t, cache.SetStats(ctx, "rest-1", stats))

	got, err := cache.GetStats(ctx, "rest-1")
	require.NoError(t, err)
	assert.Equal(t, stats, got)

	ttl := server.TTL("metrics:restaurant:rest-1")
	assert.Equal(t, time.Hour, ttl)
}

func TestRedisCache_StatsTTLIsShort(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	cache := NewRedisCache(client, StatsTTL)
	ctx := context.Background()

	require.NoError(t, cache.SetStats(ctx, "rest-1", &domain.Stats{TotalOrders: 1}))
	assert.Equal(t, time.Minute, server.TTL("metrics:restaurant:rest-1"))

	// Entries vanish on their own once the windows have moved.
	server.FastForward(StatsTTL + time.Second)
	got, err := cache.GetStats(ctx, "rest-1")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisCache_GetStats_Miss(t *testing.T) {
	cache, _ := newTestCache(t)

	got, err := cache.GetStats(context.Background(), "rest-unknown")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisCache_Invalidate(t *testing.T) {
	cache, server := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetStats(ctx, "rest-1", &domain.Stats{TotalOrders: 1}))
	require.NoError(t, cache.Invalidate(ctx, "rest-1"))

	assert.False(t, server.Exists("metrics:restaurant:rest-1"))

	got, err := cache.GetStats(ctx, "rest-1")
	assert.NoError(t, err)
	assert.Nil(t, got)
}
