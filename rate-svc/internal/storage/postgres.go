package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"mealdrop/rate-svc/internal/domain"

	"github.com/lib/pq"
)

const maxTxRetries = 5

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS reviews (
			order_id      TEXT PRIMARY KEY,
			restaurant_id TEXT NOT NULL,
			customer_id   TEXT NOT NULL DEFAULT '',
			rating        INT NOT NULL,
			comment       TEXT NOT NULL DEFAULT '',
			created_at    BIGINT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS reviews_restaurant_idx ON reviews (restaurant_id, created_at DESC)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// retryable reports serialization and deadlock failures, which Postgres
// asks the client to re-run.
func retryable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "40001" || pqErr.Code == "40P01"
	}
	return false
}

// ApplyReview runs the whole rating flow in one serializable transaction:
// the order must exist, belong to the restaurant, and be delivered; the
// review is upserted by order ID; the restaurant aggregate and the order's
// rating fields are rewritten from the same snapshot. Conflicting
// transactions are retried, so concurrent reviews fold in one at a time.
func (r *PostgresRepository) ApplyReview(ctx context.Context, review *domain.Review) (*domain.Aggregate, error) {
	var agg *domain.Aggregate
	var err error
	for attempt := 0; attempt < maxTxRetries; attempt++ {
		agg, err = r.applyReviewOnce(ctx, review)
		if err == nil || !retryable(err) {
			return agg, err
		}
		time.Sleep(time.Duration(attempt+1) * 10 * time.Millisecond)
	}
	return nil, fmt.Errorf("review transaction kept conflicting: %w", err)
}

func (r *PostgresRepository) applyReviewOnce(ctx context.Context, review *domain.Review) (*domain.Aggregate, error) {
	tx, err := r.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var orderStatus, orderRestaurant string
	err = tx.QueryRowContext(ctx,
		"SELECT status, restaurant_id FROM orders WHERE order_id = $1", review.OrderID).
		Scan(&orderStatus, &orderRestaurant)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if orderRestaurant != review.RestaurantID {
		return nil, fmt.Errorf("%w: order belongs to another restaurant", domain.ErrOrderNotRatable)
	}
	if orderStatus != "delivered" {
		return nil, fmt.Errorf("%w: order is not delivered", domain.ErrOrderNotRatable)
	}

	var avg float64
	var total int
	err = tx.QueryRowContext(ctx,
		"SELECT rating, total_reviews FROM restaurants WHERE owner_id = $1", review.RestaurantID).
		Scan(&avg, &total)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRestaurantNotFound
	}
	if err != nil {
		return nil, err
	}

	var oldRating int
	err = tx.QueryRowContext(ctx,
		"SELECT rating FROM reviews WHERE order_id = $1", review.OrderID).Scan(&oldRating)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		avg, total = domain.AddRating(avg, total, review.Rating)
	case err != nil:
		return nil, err
	default:
		avg = domain.ReplaceRating(avg, total, oldRating, review.Rating)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO reviews (order_id, restaurant_id, customer_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (order_id) DO UPDATE SET
			rating = EXCLUDED.rating, comment = EXCLUDED.comment, created_at = EXCLUDED.created_at
	`, review.OrderID, review.RestaurantID, review.CustomerID, review.Rating, review.Comment, review.CreatedAt); err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE restaurants SET rating = $1, total_reviews = $2 WHERE owner_id = $3",
		avg, total, review.RestaurantID); err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE orders SET rating = $1, review = $2 WHERE order_id = $3",
		review.Rating, review.Comment, review.OrderID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &domain.Aggregate{
		RestaurantID: review.RestaurantID,
		Rating:       avg,
		TotalReviews: total,
	}, nil
}

func (r *PostgresRepository) ListRestaurantReviews(restaurantID string, limit int) ([]domain.Review, error) {
	rows, err := r.DB.Query(`
		SELECT order_id, restaurant_id, customer_id, rating, comment, created_at
		FROM reviews
		WHERE restaurant_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, restaurantID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rev domain.Review
		if err := rows.Scan(&rev.OrderID, &rev.RestaurantID, &rev.CustomerID, &rev.Rating, &rev.Comment, &rev.CreatedAt); err != nil {
			continue
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

func (r *PostgresRepository) RatingDistribution(restaurantID string) (map[int]int, error) {
	rows, err := r.DB.Query(`
		SELECT rating, COUNT(*) AS count
		FROM reviews
		WHERE restaurant_id = $1
		GROUP BY rating
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	distribution := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for rows.Next() {
		var rating, count int
		if err := rows.Scan(&rating, &count); err != nil {
			continue
		}
		distribution[rating] = count
	}
	return distribution, rows.Err()
}

func (r *PostgresRepository) GetAggregate(restaurantID string) (*domain.Aggregate, error) {
	agg := domain.Aggregate{RestaurantID: restaurantID}
	err := r.DB.QueryRow(
		"SELECT rating, total_reviews FROM restaurants WHERE owner_id = $1", restaurantID).
		Scan(&agg.Rating, &agg.TotalReviews)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRestaurantNotFound
	}
	if err != nil {
		return nil, err
	}
	return &agg, nil
}
