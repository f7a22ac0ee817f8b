package service

import (
	"context"

	"mealdrop/metrics-svc/internal/domain"
)

type MetricsRepository interface {
	OrderStats(restaurantID string) ([]domain.OrderStat, error)
	GlobalRatingDistribution() (map[int]int, error)
}

type StatsCache interface {
	GetStats(ctx context.Context, restaurantID string) (*domain.Stats, error)
	SetStats(ctx context.Context, restaurantID string, stats *domain.Stats) error
	Invalidate(ctx context.Context, restaurantID string) error
}

type MetricsServiceInterface interface {
	RestaurantStats(ctx context.Context, restaurantID string) (*domain.Stats, error)
	GlobalRatingDistribution() (map[int]int, error)
	InvalidateStats(ctx context.Context, restaurantID string)
}

var _ MetricsServiceInterface = (*MetricsService)(nil)
