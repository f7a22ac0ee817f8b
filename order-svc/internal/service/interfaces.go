package service

import (
	"context"

	"mealdrop/order-svc/internal/domain"
)

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	GetOrder(orderID string) (*domain.Order, error)
	ApplyTransition(orderID string, from, to domain.Status, at int64) error
	OrdersByRestaurant(restaurantID string, statuses []domain.Status) ([]domain.Order, error)
	OrdersByCustomer(customerID string) ([]domain.Order, error)
	SaveQRCode(orderID string, qr []byte) error
	GetQRCode(orderID string) ([]byte, error)
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

type OrderServiceInterface interface {
	Place(ctx context.Context, params PlaceParams) (string, error)
	Get(orderID string) (*domain.Order, error)
	Advance(ctx context.Context, orderID string) (domain.Status, error)
	UpdateStatus(ctx context.Context, orderID string, target domain.Status) error
	Cancel(ctx context.Context, orderID string) error
	LiveOrders(restaurantID string) ([]domain.Order, error)
	AllOrders(restaurantID string) ([]domain.Order, error)
	CustomerOrders(customerID string) ([]domain.Order, error)
	QRCode(orderID string) ([]byte, error)
	TrackingLink(orderID string) string
}

var _ OrderServiceInterface = (*OrderService)(nil)
