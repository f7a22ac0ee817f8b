package domain

import "time"

// OrderEvent is the message emitted to Kafka on every order write. Consumers
// (live hub, metrics cache) re-fetch their snapshot rather than diffing.
type OrderEvent struct {
	Type         string    `json:"type"`
	OrderID      string    `json:"order_id"`
	RestaurantID string    `json:"restaurant_id"`
	CustomerID   string    `json:"customer_id"`
	Status       Status    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
}

const (
	EventOrderPlaced  = "order_placed"
	EventOrderUpdated = "order_updated"
)
