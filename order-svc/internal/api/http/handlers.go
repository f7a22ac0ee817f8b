package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"mealdrop/order-svc/internal/domain"
	"mealdrop/order-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Orders service.OrderServiceInterface
	Hub    Subscriber
}

func NewHandler(orderSvc service.OrderServiceInterface, hub Subscriber) *Handler {
	return &Handler{Orders: orderSvc, Hub: hub}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/orders", h.placeOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
	r.HandleFunc("/api/orders/{id}/advance", h.advanceOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}/cancel", h.cancelOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("PUT")

	r.HandleFunc("/api/restaurants/{restaurantId}/orders", h.getRestaurantOrders).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/orders/ws", h.streamRestaurantOrders).Methods("GET")
	r.HandleFunc("/api/customers/{customerId}/orders", h.getCustomerOrders).Methods("GET")
	r.HandleFunc("/api/customers/{customerId}/orders/ws", h.streamCustomerOrders).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var params service.PlaceParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	// The gateway resolves the session; the service only ever sees an
	// explicit customer identity.
	if uid := r.Header.Get("X-User-Id"); uid != "" {
		params.CustomerID = uid
	}

	orderID, err := h.Orders.Place(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{
		"orderId": orderID,
		"qrCode":  h.Orders.TrackingLink(orderID),
	})
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]
	order, err := h.Orders.Get(orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]
	qr, err := h.Orders.QRCode(orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	if len(qr) == 0 {
		http.Error(w, "QR code not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(qr)
}

func (h *Handler) advanceOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]
	next, err := h.Orders.Advance(r.Context(), orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"orderId": orderID, "status": string(next)})
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]
	if err := h.Orders.Cancel(r.Context(), orderID); err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"orderId": orderID, "status": string(domain.StatusCancelled)})
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]
	var payload struct {
		Status domain.Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Orders.UpdateStatus(r.Context(), orderID, payload.Status); err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"orderId": orderID, "status": string(payload.Status)})
}

func (h *Handler) getRestaurantOrders(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["restaurantId"]

	var orders []domain.Order
	var err error
	if r.URL.Query().Get("view") == "live" {
		orders, err = h.Orders.LiveOrders(restaurantID)
	} else {
		orders, err = h.Orders.AllOrders(restaurantID)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

func (h *Handler) getCustomerOrders(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["customerId"]
	orders, err := h.Orders.CustomerOrders(customerID)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
