package tests

import (
	"context"
	"testing"

	"mealdrop/order-svc/internal/domain"
	"mealdrop/order-svc/internal/mocks"
	"mealdrop/order-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func validPlaceParams() service.PlaceParams {
	return service.PlaceParams{
		CustomerID:      "cust-1",
		CustomerName:    "Ayesha",
		CustomerPhone:   "01700000000",
		CustomerAddress: "12 Lake Road",
		RestaurantID:    "rest-1",
		Items: []domain.LineItem{
			{ProductID: "p1", Name: "Burger", Price: 100, Quantity: 2},
		},
	}
}

func TestOrderService_Place(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		publisher := mocks.NewOrderPublisher(t)
		qr := mocks.NewQRGenerator(t)
		svc := service.NewOrderService(repo, publisher, qr)

		var created *domain.Order
		repo.On("CreateOrder", mock.Anything).Run(func(args mock.Arguments) {
			created = args.Get(0).(*domain.Order)
		}).Return(nil).Once()
		qr.On("Generate", mock.Anything).Return([]byte("png"), nil).Once()
		repo.On("SaveQRCode", mock.Anything, []byte("png")).Return(nil).Once()
		publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil).Once()

		orderID, err := svc.Place(ctx, validPlaceParams())
		assert.NoError(t, err)
		assert.NotEmpty(t, orderID)

		assert.Equal(t, orderID, created.OrderID)
		assert.Equal(t, domain.StatusPlaced, created.Status)
		assert.Equal(t, "delivery", created.OrderType)
		assert.Len(t, created.History, 1)
		assert.Equal(t, domain.StatusPlaced, created.History[0].Status)
		assert.Equal(t, created.PlacedAt, created.History[0].Timestamp)
		assert.InDelta(t, 200.0, created.Subtotal, 1e-9)
		assert.InDelta(t, 30.0, created.VAT, 1e-9)
		assert.InDelta(t, 60.0, created.Delivery, 1e-9)
		assert.InDelta(t, 290.0, created.Total, 1e-9)
	})

	t.Run("empty_items_rejected", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		svc := service.NewOrderService(repo, nil, nil)

		params := validPlaceParams()
		params.Items = nil

		_, err := svc.Place(ctx, params)
		assert.ErrorIs(t, err, service.ErrValidation)
	})

	t.Run("missing_contact_rejected", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		svc := service.NewOrderService(repo, nil, nil)

		params := validPlaceParams()
		params.CustomerPhone = ""

		_, err := svc.Place(ctx, params)
		assert.ErrorIs(t, err, service.ErrValidation)
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	order := func(status domain.Status) *domain.Order {
		return &domain.Order{OrderID: "ord-1", RestaurantID: "rest-1", CustomerID: "cust-1", Status: status}
	}

	t.Run("legal_forward_step", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		publisher := mocks.NewOrderPublisher(t)
		svc := service.NewOrderService(repo, publisher, nil)

		repo.On("GetOrder", "ord-1").Return(order(domain.StatusPlaced), nil).Once()
		repo.On("ApplyTransition", "ord-1", domain.StatusPlaced, domain.StatusAccepted, mock.Anything).Return(nil).Once()
		publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil).Once()

		assert.NoError(t, svc.UpdateStatus(ctx, "ord-1", domain.StatusAccepted))
	})

	t.Run("concurrent_advance_to_same_status_is_noop", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		svc := service.NewOrderService(repo, nil, nil)

		// First read sees placed; the write loses the race to a writer that
		// also moved the order to accepted, so the re-read settles it.
		repo.On("GetOrder", "ord-1").Return(order(domain.StatusPlaced), nil).Once()
		repo.On("ApplyTransition", "ord-1", domain.StatusPlaced, domain.StatusAccepted, mock.Anything).
			Return(domain.ErrStatusConflict).Once()
		repo.On("GetOrder", "ord-1").Return(order(domain.StatusAccepted), nil).Once()

		assert.NoError(t, svc.UpdateStatus(ctx, "ord-1", domain.StatusAccepted))
	})

	t.Run("advance_losing_race_to_cancel_rejected", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		svc := service.NewOrderService(repo, nil, nil)

		repo.On("GetOrder", "ord-1").Return(order(domain.StatusPlaced), nil).Once()
		repo.On("ApplyTransition", "ord-1", domain.StatusPlaced, domain.StatusAccepted, mock.Anything).
			Return(domain.ErrStatusConflict).Once()
		repo.On("GetOrder", "ord-1").Return(order(domain.StatusCancelled), nil).Once()

		err := svc.UpdateStatus(ctx, "ord-1", domain.StatusAccepted)
		assert.ErrorIs(t, err, service.ErrInvalidTransition)
	})

	t.Run("same_status_is_noop", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		svc := service.NewOrderService(repo, nil, nil)

		repo.On("GetOrder", "ord-1").Return(order(domain.StatusPreparing), nil).Once()

		assert.NoError(t, svc.UpdateStatus(ctx, "ord-1", domain.StatusPreparing))
	})

	t.Run("skipping_steps_rejected", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		svc := service.NewOrderService(repo, nil, nil)

		repo.On("GetOrder", "ord-1").Return(order(domain.StatusPlaced), nil).Once()

		err := svc.UpdateStatus(ctx, "ord-1", domain.StatusDelivered)
		assert.ErrorIs(t, err, service.ErrInvalidTransition)
	})

	t.Run("terminal_status_rejects_everything", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		svc := service.NewOrderService(repo, nil, nil)

		repo.On("GetOrder", "ord-1").Return(order(domain.StatusDelivered), nil).Once()

		err := svc.UpdateStatus(ctx, "ord-1", domain.StatusCancelled)
		assert.ErrorIs(t, err, service.ErrInvalidTransition)
	})

	t.Run("cancel_from_any_live_status", func(t *testing.T) {
		for _, from := range domain.LiveStatuses() {
			repo := mocks.NewOrderRepository(t)
			publisher := mocks.NewOrderPublisher(t)
			svc := service.NewOrderService(repo, publisher, nil)

			repo.On("GetOrder", "ord-1").Return(order(from), nil).Once()
			repo.On("ApplyTransition", "ord-1", from, domain.StatusCancelled, mock.Anything).Return(nil).Once()
			publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil).Once()

			assert.NoError(t, svc.Cancel(ctx, "ord-1"), "cancel from %s", from)
		}
	})
}

func TestOrderService_Advance(t *testing.T) {
	ctx := context.Background()

	t.Run("advances_one_step", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		publisher := mocks.NewOrderPublisher(t)
		svc := service.NewOrderService(repo, publisher, nil)

		order := &domain.Order{OrderID: "ord-1", RestaurantID: "rest-1", Status: domain.StatusReady}
		repo.On("GetOrder", "ord-1").Return(order, nil).Twice()
		repo.On("ApplyTransition", "ord-1", domain.StatusReady, domain.StatusDelivered, mock.Anything).Return(nil).Once()
		publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil).Once()

		next, err := svc.Advance(ctx, "ord-1")
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusDelivered, next)
	})

	t.Run("no_successor_from_terminal", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		svc := service.NewOrderService(repo, nil, nil)

		order := &domain.Order{OrderID: "ord-1", Status: domain.StatusCancelled}
		repo.On("GetOrder", "ord-1").Return(order, nil).Once()

		_, err := svc.Advance(ctx, "ord-1")
		assert.ErrorIs(t, err, service.ErrInvalidTransition)
	})
}

func TestOrderService_Views(t *testing.T) {
	unsorted := []domain.Order{
		{OrderID: "a", PlacedAt: 100},
		{OrderID: "b", PlacedAt: 300},
		{OrderID: "c", PlacedAt: 200},
	}

	t.Run("live_orders_sorted_desc", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		svc := service.NewOrderService(repo, nil, nil)

		repo.On("OrdersByRestaurant", "rest-1", domain.LiveStatuses()).Return(unsorted, nil).Once()

		orders, err := svc.LiveOrders("rest-1")
		assert.NoError(t, err)
		assert.Equal(t, []string{"b", "c", "a"}, []string{orders[0].OrderID, orders[1].OrderID, orders[2].OrderID})
	})

	t.Run("all_orders_unfiltered", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		svc := service.NewOrderService(repo, nil, nil)

		repo.On("OrdersByRestaurant", "rest-1", []domain.Status(nil)).Return(unsorted, nil).Once()

		orders, err := svc.AllOrders("rest-1")
		assert.NoError(t, err)
		assert.Len(t, orders, 3)
		assert.Equal(t, "b", orders[0].OrderID)
	})

	t.Run("customer_orders_sorted_desc", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		svc := service.NewOrderService(repo, nil, nil)

		repo.On("OrdersByCustomer", "cust-1").Return(unsorted, nil).Once()

		orders, err := svc.CustomerOrders("cust-1")
		assert.NoError(t, err)
		assert.Equal(t, "b", orders[0].OrderID)
	})
}
