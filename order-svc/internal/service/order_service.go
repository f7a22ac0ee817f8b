package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"mealdrop/order-svc/internal/domain"

	"github.com/lucsky/cuid"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrValidation        = errors.New("invalid order payload")
)

// PlaceParams carries everything an order needs at placement time, including
// the acting customer identity and a contact snapshot denormalized onto the
// order record.
type PlaceParams struct {
	CustomerID      string            `json:"customerId"`
	CustomerName    string            `json:"customerName"`
	CustomerPhone   string            `json:"customerPhone"`
	CustomerAddress string            `json:"customerAddress"`
	RestaurantID    string            `json:"restaurantId"`
	OrderType       string            `json:"orderType"`
	Items           []domain.LineItem `json:"items"`
}

type OrderService struct {
	repo      OrderRepository
	publisher OrderPublisher
	qrEncoder QRGenerator
}

func NewOrderService(repo OrderRepository, publisher OrderPublisher, qr QRGenerator) *OrderService {
	return &OrderService{repo: repo, publisher: publisher, qrEncoder: qr}
}

func (s *OrderService) Place(ctx context.Context, params PlaceParams) (string, error) {
	if len(params.Items) == 0 {
		return "", fmt.Errorf("%w: empty items", ErrValidation)
	}
	if params.CustomerID == "" || params.RestaurantID == "" {
		return "", fmt.Errorf("%w: missing customer or restaurant id", ErrValidation)
	}
	if params.CustomerName == "" || params.CustomerPhone == "" || params.CustomerAddress == "" {
		return "", fmt.Errorf("%w: missing customer contact", ErrValidation)
	}

	orderType := params.OrderType
	if orderType == "" {
		orderType = "delivery"
	}

	now := time.Now().UnixMilli()
	totals := domain.CalcTotals(params.Items)

	order := &domain.Order{
		OrderID:         cuid.New(),
		CustomerID:      params.CustomerID,
		CustomerName:    params.CustomerName,
		CustomerPhone:   params.CustomerPhone,
		CustomerAddress: params.CustomerAddress,
		RestaurantID:    params.RestaurantID,
		Items:           params.Items,
		Subtotal:        totals.Subtotal,
		VAT:             totals.VAT,
		Delivery:        totals.Delivery,
		Total:           totals.Total,
		OrderType:       orderType,
		Status:          domain.StatusPlaced,
		History:         []domain.StatusEntry{{Status: domain.StatusPlaced, Timestamp: now}},
		PlacedAt:        now,
		UpdatedAt:       now,
	}

	if err := s.repo.CreateOrder(order); err != nil {
		return "", fmt.Errorf("failed to create order: %w", err)
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.OrderID); err == nil {
			_ = s.repo.SaveQRCode(order.OrderID, qr)
		}
	}

	if s.publisher != nil {
		_ = s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
			Type:         domain.EventOrderPlaced,
			OrderID:      order.OrderID,
			RestaurantID: order.RestaurantID,
			CustomerID:   order.CustomerID,
			Status:       order.Status,
			Timestamp:    time.Now(),
		})
	}

	return order.OrderID, nil
}

func (s *OrderService) Get(orderID string) (*domain.Order, error) {
	order, err := s.repo.GetOrder(orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	return order, err
}

// UpdateStatus moves an order to target. A same-status call is a no-op: no
// history entry is appended and no error returned. Anything the transition
// table does not allow fails with ErrInvalidTransition.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, target domain.Status) error {
	order, err := s.Get(orderID)
	if err != nil {
		return err
	}

	if order.Status == target {
		return nil
	}
	if !domain.CanTransition(order.Status, target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, target)
	}

	now := time.Now().UnixMilli()
	if err := s.repo.ApplyTransition(orderID, order.Status, target, now); err != nil {
		if errors.Is(err, domain.ErrStatusConflict) {
			// Someone else moved the order first. If they landed on the same
			// status this call wanted, the work is done; otherwise the
			// transition we validated no longer applies.
			current, getErr := s.Get(orderID)
			if getErr != nil {
				return getErr
			}
			if current.Status == target {
				return nil
			}
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, target)
		}
		return fmt.Errorf("failed to update order status: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
			Type:         domain.EventOrderUpdated,
			OrderID:      orderID,
			RestaurantID: order.RestaurantID,
			CustomerID:   order.CustomerID,
			Status:       target,
			Timestamp:    time.Now(),
		})
	}

	return nil
}

// Advance moves an order one step along placed -> accepted -> preparing ->
// ready -> delivered.
func (s *OrderService) Advance(ctx context.Context, orderID string) (domain.Status, error) {
	order, err := s.Get(orderID)
	if err != nil {
		return "", err
	}

	next, ok := order.Status.Next()
	if !ok {
		return "", fmt.Errorf("%w: no successor for %s", ErrInvalidTransition, order.Status)
	}

	if err := s.UpdateStatus(ctx, orderID, next); err != nil {
		return "", err
	}
	return next, nil
}

func (s *OrderService) Cancel(ctx context.Context, orderID string) error {
	return s.UpdateStatus(ctx, orderID, domain.StatusCancelled)
}

func (s *OrderService) LiveOrders(restaurantID string) ([]domain.Order, error) {
	orders, err := s.repo.OrdersByRestaurant(restaurantID, domain.LiveStatuses())
	if err != nil {
		return nil, err
	}
	sortByPlacedAtDesc(orders)
	return orders, nil
}

func (s *OrderService) AllOrders(restaurantID string) ([]domain.Order, error) {
	orders, err := s.repo.OrdersByRestaurant(restaurantID, nil)
	if err != nil {
		return nil, err
	}
	sortByPlacedAtDesc(orders)
	return orders, nil
}

func (s *OrderService) CustomerOrders(customerID string) ([]domain.Order, error) {
	orders, err := s.repo.OrdersByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	sortByPlacedAtDesc(orders)
	return orders, nil
}

func (s *OrderService) QRCode(orderID string) ([]byte, error) {
	qr, err := s.repo.GetQRCode(orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(orderID); err == nil {
			_ = s.repo.SaveQRCode(orderID, regenerated)
			return regenerated, nil
		}
	}
	return qr, nil
}

func (s *OrderService) TrackingLink(orderID string) string {
	return fmt.Sprintf("/api/orders/%s/qrcode", orderID)
}

// Stores are queried without a sort; ordering is applied here so no compound
// index is required on the backing store.
func sortByPlacedAtDesc(orders []domain.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].PlacedAt > orders[j].PlacedAt
	})
}
