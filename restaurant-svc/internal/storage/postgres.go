package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"mealdrop/restaurant-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS restaurants (
			owner_id      TEXT PRIMARY KEY,
			name          TEXT NOT NULL DEFAULT '',
			address       TEXT NOT NULL DEFAULT '',
			owner_name    TEXT NOT NULL DEFAULT '',
			owner_contact TEXT NOT NULL DEFAULT '',
			opening_time  TEXT NOT NULL DEFAULT '09:00',
			closing_time  TEXT NOT NULL DEFAULT '22:00',
			open          BOOLEAN NOT NULL DEFAULT TRUE,
			rating        DOUBLE PRECISION NOT NULL DEFAULT 0,
			total_reviews INT NOT NULL DEFAULT 0,
			total_orders  INT NOT NULL DEFAULT 0,
			menus         JSONB NOT NULL DEFAULT '{}'::jsonb
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

const restaurantColumns = `owner_id, name, address, owner_name, owner_contact,
	opening_time, closing_time, open, rating, total_reviews, total_orders, menus`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRestaurant(row rowScanner) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	var menus []byte
	if err := row.Scan(
		&rest.OwnerID, &rest.Name, &rest.Address, &rest.OwnerName, &rest.OwnerContact,
		&rest.OpeningTime, &rest.ClosingTime, &rest.Open,
		&rest.Rating, &rest.TotalReviews, &rest.TotalOrders, &menus,
	); err != nil {
		return nil, err
	}
	if len(menus) > 0 {
		if err := json.Unmarshal(menus, &rest.Menus); err != nil {
			return nil, fmt.Errorf("decode menus for %s: %w", rest.OwnerID, err)
		}
	}
	if rest.Menus == nil {
		rest.Menus = map[string]domain.MenuItem{}
	}
	return &rest, nil
}

func (r *PostgresRepository) GetRestaurant(ownerID string) (*domain.Restaurant, error) {
	row := r.DB.QueryRow(
		"SELECT "+restaurantColumns+" FROM restaurants WHERE owner_id = $1", ownerID)
	return scanRestaurant(row)
}

func (r *PostgresRepository) ListRestaurants() ([]domain.Restaurant, error) {
	rows, err := r.DB.Query("SELECT " + restaurantColumns + " FROM restaurants ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			continue
		}
		restaurants = append(restaurants, *rest)
	}
	return restaurants, rows.Err()
}

// SaveRestaurant upserts the profile and menus. The rating and order
// aggregates are owned by other services and never written here.
func (r *PostgresRepository) SaveRestaurant(rest *domain.Restaurant) error {
	menus, err := json.Marshal(rest.Menus)
	if err != nil {
		return fmt.Errorf("encode menus: %w", err)
	}

	_, err = r.DB.Exec(`
		INSERT INTO restaurants (owner_id, name, address, owner_name, owner_contact,
			opening_time, closing_time, open, menus)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (owner_id) DO UPDATE SET
			name          = EXCLUDED.name,
			address       = EXCLUDED.address,
			owner_name    = EXCLUDED.owner_name,
			owner_contact = EXCLUDED.owner_contact,
			opening_time  = EXCLUDED.opening_time,
			closing_time  = EXCLUDED.closing_time,
			open          = EXCLUDED.open,
			menus         = EXCLUDED.menus`,
		rest.OwnerID, rest.Name, rest.Address, rest.OwnerName, rest.OwnerContact,
		rest.OpeningTime, rest.ClosingTime, rest.Open, menus)
	return err
}
