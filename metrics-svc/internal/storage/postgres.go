package storage

import (
	"database/sql"

	"mealdrop/metrics-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// OrderStats loads the full order snapshot for one restaurant. Reporting
// recomputes from scratch, so this stays a plain scan with no windowing
// pushed into SQL.
func (r *PostgresRepository) OrderStats(restaurantID string) ([]domain.OrderStat, error) {
	rows, err := r.DB.Query(`
		SELECT status, total, placed_at
		FROM orders
		WHERE restaurant_id = $1
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.OrderStat
	for rows.Next() {
		var stat domain.OrderStat
		if err := rows.Scan(&stat.Status, &stat.Total, &stat.PlacedAt); err != nil {
			continue
		}
		orders = append(orders, stat)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) GlobalRatingDistribution() (map[int]int, error) {
	rows, err := r.DB.Query(`
		SELECT rating, COUNT(*) AS count
		FROM reviews
		GROUP BY rating
	`)
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
