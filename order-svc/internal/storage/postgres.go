package storage

import (
	"database/sql"
	"fmt"

	"mealdrop/order-svc/internal/domain"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
			order_id TEXT PRIMARY KEY,
			customer_id TEXT NOT NULL,
			customer_name TEXT NOT NULL DEFAULT '',
			customer_phone TEXT NOT NULL DEFAULT '',
			customer_address TEXT NOT NULL DEFAULT '',
			restaurant_id TEXT NOT NULL,
			order_type TEXT NOT NULL DEFAULT 'delivery',
			status TEXT NOT NULL,
			subtotal DOUBLE PRECISION NOT NULL DEFAULT 0,
			vat DOUBLE PRECISION NOT NULL DEFAULT 0,
			delivery DOUBLE PRECISION NOT NULL DEFAULT 0,
			total DOUBLE PRECISION NOT NULL DEFAULT 0,
			rating INT,
			review TEXT NOT NULL DEFAULT '',
			qr_code BYTEA,
			placed_at BIGINT NOT NULL,
			updated_at BIGINT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id TEXT NOT NULL REFERENCES orders(order_id),
			product_id TEXT NOT NULL,
			name TEXT NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			quantity INT NOT NULL,
			image TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS order_history (
			id SERIAL PRIMARY KEY,
			order_id TEXT NOT NULL REFERENCES orders(order_id),
			status TEXT NOT NULL,
			ts BIGINT NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO orders (order_id, customer_id, customer_name, customer_phone, customer_address,
			restaurant_id, order_type, status, subtotal, vat, delivery, total, placed_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`, order.OrderID, order.CustomerID, order.CustomerName, order.CustomerPhone, order.CustomerAddress,
		order.RestaurantID, order.OrderType, string(order.Status),
		order.Subtotal, order.VAT, order.Delivery, order.Total,
		order.PlacedAt, order.UpdatedAt); err != nil {
		return err
	}

	for _, item := range order.Items {
		if _, err := tx.Exec(`
			INSERT INTO order_items (order_id, product_id, name, price, quantity, image)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, order.OrderID, item.ProductID, item.Name, item.Price, item.Quantity, item.Image); err != nil {
			return err
		}
	}

	for _, entry := range order.History {
		if _, err := tx.Exec(`
			INSERT INTO order_history (order_id, status, ts)
			VALUES ($1, $2, $3)
		`, order.OrderID, string(entry.Status), entry.Timestamp); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetOrder(orderID string) (*domain.Order, error) {
	order, err := r.scanOrder(r.DB.QueryRow(`
		SELECT order_id, customer_id, customer_name, customer_phone, customer_address,
			restaurant_id, order_type, status, subtotal, vat, delivery, total,
			rating, review, placed_at, updated_at
		FROM orders
		WHERE order_id = $1
	`, orderID))
	if err != nil {
		return nil, err
	}

	if err := r.attachDetails([]domain.Order{*order}, func(orders []domain.Order) {
		*order = orders[0]
	}); err != nil {
		return nil, err
	}
	return order, nil
}

// ApplyTransition writes the new status, appends the history entry, and on
// the transition into delivered bumps the restaurant order counter, all in
// one transaction. The status write is a compare-and-swap against from: a
// concurrent writer that got there first leaves zero rows updated and the
// caller gets ErrStatusConflict instead of a duplicate history row.
func (r *PostgresRepository) ApplyTransition(orderID string, from, to domain.Status, at int64) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
		UPDATE orders SET status = $1, updated_at = $2 WHERE order_id = $3 AND status = $4
	`, string(to), at, orderID, string(from))
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		var current string
		if err := tx.QueryRow(`SELECT status FROM orders WHERE order_id = $1`, orderID).Scan(&current); err != nil {
			return err
		}
		return fmt.Errorf("%w: now %s", domain.ErrStatusConflict, current)
	}

	if _, err := tx.Exec(`
		INSERT INTO order_history (order_id, status, ts) VALUES ($1, $2, $3)
	`, orderID, string(to), at); err != nil {
		return err
	}

	if to == domain.StatusDelivered {
		if _, err := tx.Exec(`
			UPDATE restaurants SET total_orders = total_orders + 1
			WHERE owner_id = (SELECT restaurant_id FROM orders WHERE order_id = $1)
		`, orderID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) OrdersByRestaurant(restaurantID string, statuses []domain.Status) ([]domain.Order, error) {
	query := `
		SELECT order_id, customer_id, customer_name, customer_phone, customer_address,
			restaurant_id, order_type, status, subtotal, vat, delivery, total,
			rating, review, placed_at, updated_at
		FROM orders
		WHERE restaurant_id = $1`
	args := []interface{}{restaurantID}

	if len(statuses) > 0 {
		names := make([]string, 0, len(statuses))
		for _, s := range statuses {
			names = append(names, string(s))
		}
		query += " AND status = ANY($2)"
		args = append(args, pq.Array(names))
	}

	return r.queryOrders(query, args...)
}

func (r *PostgresRepository) OrdersByCustomer(customerID string) ([]domain.Order, error) {
	return r.queryOrders(`
		SELECT order_id, customer_id, customer_name, customer_phone, customer_address,
			restaurant_id, order_type, status, subtotal, vat, delivery, total,
			rating, review, placed_at, updated_at
		FROM orders
		WHERE customer_id = $1
	`, customerID)
}

func (r *PostgresRepository) SaveQRCode(orderID string, qr []byte) error {
	_, err := r.DB.Exec(`UPDATE orders SET qr_code = $1 WHERE order_id = $2`, qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID string) ([]byte, error) {
	var qr []byte
	err := r.DB.QueryRow(`SELECT qr_code FROM orders WHERE order_id = $1`, orderID).Scan(&qr)
	if err != nil {
		return nil, err
	}
	return qr, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *PostgresRepository) scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	var status string
	var rating sql.NullInt64
	if err := row.Scan(&order.OrderID, &order.CustomerID, &order.CustomerName,
		&order.CustomerPhone, &order.CustomerAddress, &order.RestaurantID,
		&order.OrderType, &status, &order.Subtotal, &order.VAT, &order.Delivery,
		&order.Total, &rating, &order.Review, &order.PlacedAt, &order.UpdatedAt); err != nil {
		return nil, err
	}
	order.Status = domain.Status(status)
	if rating.Valid {
		value := int(rating.Int64)
		order.Rating = &value
	}
	return &order, nil
}

func (r *PostgresRepository) queryOrders(query string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := r.scanOrder(rows)
		if err != nil {
			continue
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachDetails(orders, func(updated []domain.Order) {
		orders = updated
	}); err != nil {
		return nil, err
	}
	return orders, nil
}

// attachDetails batch-loads line items and history for the given orders.
func (r *PostgresRepository) attachDetails(orders []domain.Order, assign func([]domain.Order)) error {
	if len(orders) == 0 {
		assign(orders)
		return nil
	}

	ids := make([]string, 0, len(orders))
	index := make(map[string]int, len(orders))
	for i, order := range orders {
		ids = append(ids, order.OrderID)
		index[order.OrderID] = i
	}

	itemRows, err := r.DB.Query(`
		SELECT order_id, product_id, name, price, quantity, image
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY id
	`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderID string
		var item domain.LineItem
		if err := itemRows.Scan(&orderID, &item.ProductID, &item.Name, &item.Price, &item.Quantity, &item.Image); err != nil {
			continue
		}
		i := index[orderID]
		orders[i].Items = append(orders[i].Items, item)
	}

	historyRows, err := r.DB.Query(`
		SELECT order_id, status, ts
		FROM order_history
		WHERE order_id = ANY($1)
		ORDER BY ts, id
	`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer historyRows.Close()

	for historyRows.Next() {
		var orderID, status string
		var ts int64
		if err := historyRows.Scan(&orderID, &status, &ts); err != nil {
			continue
		}
		i := index[orderID]
		orders[i].History = append(orders[i].History, domain.StatusEntry{Status: domain.Status(status), Timestamp: ts})
	}

	assign(orders)
	return nil
}
