package domain

import (
	"errors"
	"math"
	"time"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrOrderNotRatable    = errors.New("order cannot be rated")
)

// Review is one customer's rating of one order. The order ID is the review
// key: rating the same order again replaces the previous review.
type Review struct {
	OrderID      string `json:"orderId"`
	RestaurantID string `json:"restaurantId"`
	CustomerID   string `json:"customerId"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	CreatedAt    int64  `json:"createdAt"`
}

// Aggregate is the restaurant-level rating summary the reviews fold into.
type Aggregate struct {
	RestaurantID string  `json:"restaurantId"`
	Rating       float64 `json:"rating"`
	TotalReviews int     `json:"totalReviews"`
}

type ReviewEvent struct {
	Type         string    `json:"type"`
	OrderID      string    `json:"order_id"`
	RestaurantID string    `json:"restaurant_id"`
	Rating       int       `json:"rating"`
	Timestamp    time.Time `json:"timestamp"`
}

const EventNewReview = "new_review"

// Round2 matches the stored precision of restaurant rating aggregates.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// AddRating folds a first-time review into the aggregate.
func AddRating(avg float64, total, rating int) (float64, int) {
	newTotal := total + 1
	return Round2((avg*float64(total) + float64(rating)) / float64(newTotal)), newTotal
}

// ReplaceRating swaps an order's previous rating for a new one without
// changing the review count.
func ReplaceRating(avg float64, total, oldRating, rating int) float64 {
	if total <= 0 {
		return 0
	}
	return Round2((avg*float64(total) - float64(oldRating) + float64(rating)) / float64(total))
}
