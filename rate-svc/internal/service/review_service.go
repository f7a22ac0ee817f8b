package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"mealdrop/rate-svc/internal/domain"
)

var ErrValidation = errors.New("validation failed")

const defaultReviewLimit = 20

type ReviewService struct {
	repository ReviewRepository
	cache      AggregateCache
	publisher  ReviewPublisher
}

func NewReviewService(repository ReviewRepository, cache AggregateCache, publisher ReviewPublisher) *ReviewService {
	return &ReviewService{
		repository: repository,
		cache:      cache,
		publisher:  publisher,
	}
}

// AddOrUpdateReview records a rating for a delivered order. Re-rating the
// same order replaces the previous review; the restaurant aggregate is
// adjusted either way and returned as committed.
func (s *ReviewService) AddOrUpdateReview(ctx context.Context, review *domain.Review) (*domain.Aggregate, error) {
	if review.OrderID == "" || review.RestaurantID == "" {
		return nil, fmt.Errorf("%w: orderId and restaurantId are required", ErrValidation)
	}
	if review.Rating < 1 || review.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	if review.CreatedAt == 0 {
		review.CreatedAt = time.Now().UnixMilli()
	}

	agg, err := s.repository.ApplyReview(ctx, review)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetAggregate(ctx, agg); err != nil {
			log.Printf("Warning: failed to refresh aggregate cache for %s: %v", agg.RestaurantID, err)
		}
	}

	if s.publisher != nil {
		_ = s.publisher.PublishReview(ctx, domain.ReviewEvent{
			Type:         domain.EventNewReview,
			OrderID:      review.OrderID,
			RestaurantID: review.RestaurantID,
			Rating:       review.Rating,
			Timestamp:    time.Now(),
		})
	}

	return agg, nil
}

func (s *ReviewService) RestaurantReviews(restaurantID string, limit int) ([]domain.Review, error) {
	if limit <= 0 {
		limit = defaultReviewLimit
	}
	return s.repository.ListRestaurantReviews(restaurantID, limit)
}

func (s *ReviewService) RatingDistribution(restaurantID string) (map[int]int, error) {
	return s.repository.RatingDistribution(restaurantID)
}

// RestaurantAggregate serves from the cache when it can, falling back to
// the store and repopulating on a miss.
func (s *ReviewService) RestaurantAggregate(ctx context.Context, restaurantID string) (*domain.Aggregate, error) {
	if s.cache != nil {
		if agg, err := s.cache.GetAggregate(ctx, restaurantID); err == nil && agg != nil {
			return agg, nil
		}
	}

	agg, err := s.repository.GetAggregate(restaurantID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetAggregate(ctx, agg)
	}
	return agg, nil
}
