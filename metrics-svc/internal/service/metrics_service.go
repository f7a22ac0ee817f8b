package service

import (
	"context"
	"log"
	"time"

	"mealdrop/metrics-svc/internal/domain"
)

type MetricsService struct {
	repo  MetricsRepository
	cache StatsCache
	now   func() int64
}

func NewMetricsService(repo MetricsRepository, cache StatsCache) *MetricsService {
	return &MetricsService{
		repo:  repo,
		cache: cache,
		now:   func() int64 { return time.Now().UnixMilli() },
	}
}

// RestaurantStats serves the cached snapshot when one exists; otherwise it
// recomputes from the full order history and repopulates the cache. Every
// order and review event invalidates the entry, and the cache TTL keeps the
// sliding weekly windows from drifting between events.
func (s *MetricsService) RestaurantStats(ctx context.Context, restaurantID string) (*domain.Stats, error) {
	if s.cache != nil {
		if stats, err := s.cache.GetStats(ctx, restaurantID); err == nil && stats != nil {
			return stats, nil
		}
	}

	orders, err := s.repo.OrderStats(restaurantID)
	if err != nil {
		return nil, err
	}

	stats := domain.Compute(orders, s.now())
	if s.cache != nil {
		if err := s.cache.SetStats(ctx, restaurantID, &stats); err != nil {
			log.Printf("Warning: failed to cache stats for %s: %v", restaurantID, err)
		}
	}
	return &stats, nil
}

func (s *MetricsService) GlobalRatingDistribution() (map[int]int, error) {
	return s.repo.GlobalRatingDistribution()
}

func (s *MetricsService) InvalidateStats(ctx context.Context, restaurantID string) {
	if s.cache == nil || restaurantID == "" {
		return
	}
	if err := s.cache.Invalidate(ctx, restaurantID); err != nil {
		log.Printf("Warning: failed to invalidate stats for %s: %v", restaurantID, err)
	}
}
