package domain

import (
	"errors"
	"math"
)

// ErrStatusConflict reports that an order's status changed between the
// legality check and the write. Callers re-read and re-decide.
var ErrStatusConflict = errors.New("order status changed concurrently")

type Status string

const (
	StatusPlaced    Status = "placed"
	StatusAccepted  Status = "accepted"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancel"
)

// forward is the only legal advance path; cancel is reachable from any
// non-terminal status and handled separately in CanTransition.
var forward = map[Status]Status{
	StatusPlaced:    StatusAccepted,
	StatusAccepted:  StatusPreparing,
	StatusPreparing: StatusReady,
	StatusReady:     StatusDelivered,
}

func (s Status) Valid() bool {
	switch s {
	case StatusPlaced, StatusAccepted, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Next returns the forward successor of s, or false when s has none.
func (s Status) Next() (Status, bool) {
	next, ok := forward[s]
	return next, ok
}

// CanTransition reports whether an order currently in from may be moved to
// to. Terminal statuses accept nothing; every non-terminal status accepts its
// forward successor and cancel.
func CanTransition(from, to Status) bool {
	if from.Terminal() || !to.Valid() {
		return false
	}
	if to == StatusCancelled {
		return true
	}
	return forward[from] == to
}

func LiveStatuses() []Status {
	return []Status{StatusPlaced, StatusAccepted, StatusPreparing, StatusReady}
}

type LineItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
}

type StatusEntry struct {
	Status    Status `json:"status"`
	Timestamp int64  `json:"timestamp"`
}

type Order struct {
	OrderID         string        `json:"orderId"`
	CustomerID      string        `json:"customerId"`
	CustomerName    string        `json:"customerName"`
	CustomerPhone   string        `json:"customerPhone"`
	CustomerAddress string        `json:"customerAddress"`
	RestaurantID    string        `json:"restaurantId"`
	Items           []LineItem    `json:"items"`
	Total           float64       `json:"total"`
	Subtotal        float64       `json:"subtotal"`
	VAT             float64       `json:"vat"`
	Delivery        float64       `json:"delivery"`
	OrderType       string        `json:"orderType"`
	Status          Status        `json:"status"`
	History         []StatusEntry `json:"history"`
	PlacedAt        int64         `json:"placedAt"`
	UpdatedAt       int64         `json:"updatedAt"`
	Rating          *int          `json:"rating,omitempty"`
	Review          string        `json:"review,omitempty"`
}

const (
	VATRate     = 0.15
	DeliveryFee = 60.0
)

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	VAT      float64 `json:"vat"`
	Delivery float64 `json:"delivery"`
	Total    float64 `json:"total"`
}

// CalcTotals derives order totals from the line items. Malformed numeric
// inputs (negative, NaN, Inf) are coerced to zero instead of failing.
func CalcTotals(items []LineItem) Totals {
	var subtotal float64
	for _, item := range items {
		price := item.Price
		if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
			price = 0
		}
		quantity := item.Quantity
		if quantity < 0 {
			quantity = 0
		}
		subtotal += price * float64(quantity)
	}

	vat := subtotal * VATRate
	delivery := 0.0
	if len(items) > 0 {
		delivery = DeliveryFee
	}

	return Totals{
		Subtotal: subtotal,
		VAT:      vat,
		Delivery: delivery,
		Total:    subtotal + vat + delivery,
	}
}
