package live

import (
	"fmt"
	"log"
	"sync"

	"mealdrop/order-svc/internal/domain"

	"github.com/google/uuid"
)

type View string

const (
	ViewLive     View = "live"
	ViewAll      View = "all"
	ViewCustomer View = "customer"
)

// Fetcher supplies a fresh full snapshot for a view. The hub never diffs:
// every delivery replaces whatever the subscriber held before.
type Fetcher interface {
	LiveOrders(restaurantID string) ([]domain.Order, error)
	AllOrders(restaurantID string) ([]domain.Order, error)
	CustomerOrders(customerID string) ([]domain.Order, error)
}

type Subscription struct {
	ID   string
	view View
	key  string
	ch   chan []domain.Order
	hub  *Hub
	once sync.Once
}

// Updates yields snapshots, newest first. The channel is closed on Close.
func (s *Subscription) Updates() <-chan []domain.Order {
	return s.ch
}

// Close detaches the subscription; no delivery happens afterwards.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.remove(s.ID)
	})
}

type Hub struct {
	mu      sync.Mutex
	fetcher Fetcher
	subs    map[string]*Subscription
}

func NewHub(fetcher Fetcher) *Hub {
	return &Hub{
		fetcher: fetcher,
		subs:    make(map[string]*Subscription),
	}
}

// Subscribe registers a view over one restaurant or customer and immediately
// delivers the current snapshot.
func (h *Hub) Subscribe(view View, key string) (*Subscription, error) {
	snapshot, err := h.fetch(view, key)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch initial snapshot: %w", err)
	}

	sub := &Subscription{
		ID:   uuid.NewString(),
		view: view,
		key:  key,
		ch:   make(chan []domain.Order, 1),
		hub:  h,
	}
	sub.ch <- snapshot

	h.mu.Lock()
	h.subs[sub.ID] = sub
	h.mu.Unlock()

	return sub, nil
}

// Notify re-fetches and pushes snapshots to every subscription the event
// touches. Updates across different orders carry no ordering guarantee.
func (h *Hub) Notify(event domain.OrderEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.subs {
		if !sub.matches(event) {
			continue
		}
		snapshot, err := h.fetch(sub.view, sub.key)
		if err != nil {
			log.Printf("live hub: snapshot refresh failed for %s/%s: %v", sub.view, sub.key, err)
			continue
		}
		push(sub.ch, snapshot)
	}
}

func (s *Subscription) matches(event domain.OrderEvent) bool {
	switch s.view {
	case ViewCustomer:
		return s.key == event.CustomerID
	default:
		return s.key == event.RestaurantID
	}
}

func (h *Hub) fetch(view View, key string) ([]domain.Order, error) {
	switch view {
	case ViewLive:
		return h.fetcher.LiveOrders(key)
	case ViewAll:
		return h.fetcher.AllOrders(key)
	case ViewCustomer:
		return h.fetcher.CustomerOrders(key)
	}
	return nil, fmt.Errorf("unknown view %q", view)
}

func (h *Hub) remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if sub, ok := h.subs[id]; ok {
		delete(h.subs, id)
		close(sub.ch)
	}
}

// push replaces any pending snapshot instead of queueing behind it.
func push(ch chan []domain.Order, snapshot []domain.Order) {
	for {
		select {
		case ch <- snapshot:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}
