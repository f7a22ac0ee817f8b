package service

import (
	"context"

	"mealdrop/rate-svc/internal/domain"
)

type ReviewServiceInterface interface {
	AddOrUpdateReview(ctx context.Context, review *domain.Review) (*domain.Aggregate, error)
	RestaurantReviews(restaurantID string, limit int) ([]domain.Review, error)
	RatingDistribution(restaurantID string) (map[int]int, error)
	RestaurantAggregate(ctx context.Context, restaurantID string) (*domain.Aggregate, error)
}

type ReviewRepository interface {
	// ApplyReview validates the order, upserts the review, and folds it into
	// the restaurant aggregate in one transaction.
	ApplyReview(ctx context.Context, review *domain.Review) (*domain.Aggregate, error)
	ListRestaurantReviews(restaurantID string, limit int) ([]domain.Review, error)
	RatingDistribution(restaurantID string) (map[int]int, error)
	GetAggregate(restaurantID string) (*domain.Aggregate, error)
}

type AggregateCache interface {
	GetAggregate(ctx context.Context, restaurantID string) (*domain.Aggregate, error)
	SetAggregate(ctx context.Context, agg *domain.Aggregate) error
}

type ReviewPublisher interface {
	PublishReview(ctx context.Context, event domain.ReviewEvent) error
}

var _ ReviewServiceInterface = (*ReviewService)(nil)
