package httpapi

import (
	"log"
	"net/http"

	"mealdrop/order-svc/internal/live"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

// Subscriber is the slice of the live hub the websocket layer needs.
type Subscriber interface {
	Subscribe(view live.View, key string) (*live.Subscription, error)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func (h *Handler) streamRestaurantOrders(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["restaurantId"]
	view := live.ViewAll
	if r.URL.Query().Get("view") == "live" {
		view = live.ViewLive
	}
	h.stream(w, r, view, restaurantID)
}

func (h *Handler) streamCustomerOrders(w http.ResponseWriter, r *http.Request) {
	h.stream(w, r, live.ViewCustomer, mux.Vars(r)["customerId"])
}

func (h *Handler) stream(w http.ResponseWriter, r *http.Request, view live.View, key string) {
	if h.Hub == nil {
		http.Error(w, "live updates unavailable", http.StatusServiceUnavailable)
		return
	}

	sub, err := h.Hub.Subscribe(view, key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		sub.Close()
		return
	}
	defer conn.Close()
	defer sub.Close()

	// Reader goroutine only detects disconnects; clients never send data.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case snapshot, ok := <-sub.Updates():
			if !ok {
				return
			}
			if err := conn.WriteJSON(snapshot); err != nil {
				log.Printf("websocket write failed for %s/%s: %v", view, key, err)
				return
			}
		case <-done:
			return
		}
	}
}
