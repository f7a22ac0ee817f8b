package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "mealdrop/order-svc/internal/api/http"
	"mealdrop/order-svc/internal/domain"
	"mealdrop/order-svc/internal/mocks"
	"mealdrop/order-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter(mockSvc *mocks.OrderServiceInterface) *mux.Router {
	handler := httpapi.NewHandler(mockSvc, nil)
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestHandler_placeOrder(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		header       map[string]string
		prepareMocks func(*mocks.OrderServiceInterface)
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success",
			payload: `{"customerId":"cust-1","customerName":"Ayesha","customerPhone":"01700000000","customerAddress":"12 Lake Road","restaurantId":"rest-1","items":[{"productId":"p1","name":"Burger","price":100,"quantity":2}]}`,
			prepareMocks: func(mockSvc *mocks.OrderServiceInterface) {
				mockSvc.On("Place", mock.Anything, mock.Anything).Return("ord-123", nil).Once()
				mockSvc.On("TrackingLink", "ord-123").Return("/api/orders/ord-123/qrcode").Once()
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"orderId":"ord-123"`,
		},
		{
			name:         "invalid_json",
			payload:      `bad json`,
			prepareMocks: func(*mocks.OrderServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "validation_error",
			payload: `{"customerId":"cust-1"}`,
			prepareMocks: func(mockSvc *mocks.OrderServiceInterface) {
				mockSvc.On("Place", mock.Anything, mock.Anything).
					Return("", service.ErrValidation).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "gateway_identity_overrides_body",
			payload: `{"customerId":"spoofed","customerName":"Ayesha","customerPhone":"01700000000","customerAddress":"12 Lake Road","restaurantId":"rest-1","items":[{"productId":"p1","price":100,"quantity":1}]}`,
			header:  map[string]string{"X-User-Id": "cust-real"},
			prepareMocks: func(mockSvc *mocks.OrderServiceInterface) {
				mockSvc.On("Place", mock.Anything, mock.MatchedBy(func(params service.PlaceParams) bool {
					return params.CustomerID == "cust-real"
				})).Return("ord-124", nil).Once()
				mockSvc.On("TrackingLink", "ord-124").Return("/api/orders/ord-124/qrcode").Once()
			},
			expectedCode: http.StatusCreated,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockSvc := mocks.NewOrderServiceInterface(t)
			router := setupTestRouter(mockSvc)
			testCase.prepareMocks(mockSvc)

			req := httptest.NewRequest("POST", "/api/orders", bytes.NewBufferString(testCase.payload))
			for k, v := range testCase.header {
				req.Header.Set(k, v)
			}
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_advanceOrder(t *testing.T) {
	tests := []struct {
		name         string
		prepareMocks func(*mocks.OrderServiceInterface)
		expectedCode int
	}{
		{
			name: "success",
			prepareMocks: func(mockSvc *mocks.OrderServiceInterface) {
				mockSvc.On("Advance", mock.Anything, "ord-1").Return(domain.StatusAccepted, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "not_found",
			prepareMocks: func(mockSvc *mocks.OrderServiceInterface) {
				mockSvc.On("Advance", mock.Anything, "ord-1").Return(domain.Status(""), service.ErrOrderNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "invalid_transition",
			prepareMocks: func(mockSvc *mocks.OrderServiceInterface) {
				mockSvc.On("Advance", mock.Anything, "ord-1").Return(domain.Status(""), service.ErrInvalidTransition).Once()
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockSvc := mocks.NewOrderServiceInterface(t)
			router := setupTestRouter(mockSvc)
			testCase.prepareMocks(mockSvc)

			req := httptest.NewRequest("POST", "/api/orders/ord-1/advance", nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_updateOrderStatus(t *testing.T) {
	mockSvc := mocks.NewOrderServiceInterface(t)
	router := setupTestRouter(mockSvc)

	mockSvc.On("UpdateStatus", mock.Anything, "ord-1", domain.StatusCancelled).Return(nil).Once()

	req := httptest.NewRequest("PUT", "/api/orders/ord-1/status", bytes.NewBufferString(`{"status":"cancel"}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"cancel"`)
}

func TestHandler_getRestaurantOrders(t *testing.T) {
	orders := []domain.Order{
		{OrderID: "a", Status: domain.StatusPlaced, PlacedAt: 200},
		{OrderID: "b", Status: domain.StatusPreparing, PlacedAt: 100},
	}

	t.Run("live_view", func(t *testing.T) {
		mockSvc := mocks.NewOrderServiceInterface(t)
		router := setupTestRouter(mockSvc)

		mockSvc.On("LiveOrders", "rest-1").Return(orders, nil).Once()

		req := httptest.NewRequest("GET", "/api/restaurants/rest-1/orders?view=live", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var decoded []domain.Order
		json.NewDecoder(recorder.Body).Decode(&decoded)
		assert.Len(t, decoded, 2)
	})

	t.Run("default_view_is_all", func(t *testing.T) {
		mockSvc := mocks.NewOrderServiceInterface(t)
		router := setupTestRouter(mockSvc)

		mockSvc.On("AllOrders", "rest-1").Return(orders, nil).Once()

		req := httptest.NewRequest("GET", "/api/restaurants/rest-1/orders", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestHandler_getOrder(t *testing.T) {
	mockSvc := mocks.NewOrderServiceInterface(t)
	router := setupTestRouter(mockSvc)

	order := &domain.Order{OrderID: "ord-1", Status: domain.StatusDelivered}
	mockSvc.On("Get", "ord-1").Return(order, nil).Once()

	req := httptest.NewRequest("GET", "/api/orders/ord-1", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"orderId":"ord-1"`)
}
