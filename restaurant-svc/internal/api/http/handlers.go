package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"mealdrop/restaurant-svc/internal/domain"
	"mealdrop/restaurant-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Restaurants service.RestaurantServiceInterface
}

func NewHandler(restaurantSvc service.RestaurantServiceInterface) *Handler {
	return &Handler{Restaurants: restaurantSvc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants", h.listRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{ownerId}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{ownerId}", h.saveProfile).Methods("PUT")
	r.HandleFunc("/api/restaurants/{ownerId}/menu", h.addMenuItem).Methods("POST")
	r.HandleFunc("/api/restaurants/{ownerId}/menu/{itemId}", h.updateMenuItem).Methods("PUT")
	r.HandleFunc("/api/restaurants/{ownerId}/menu/{itemId}", h.removeMenuItem).Methods("DELETE")
	r.HandleFunc("/api/restaurants/{ownerId}/menu/{itemId}/toggle", h.toggleItem).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "restaurant-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// ownerFrom prefers the gateway-resolved identity over the path for
// mutating routes, so an owner can only edit their own restaurant.
func ownerFrom(r *http.Request) string {
	if uid := r.Header.Get("X-User-Id"); uid != "" {
		return uid
	}
	return mux.Vars(r)["ownerId"]
}

// restaurantView adds the derived openNow flag: the owner toggle must be on
// and the current time must fall inside the opening window.
type restaurantView struct {
	*domain.Restaurant
	OpenNow bool `json:"openNow"`
}

func viewOf(rest *domain.Restaurant) restaurantView {
	return restaurantView{
		Restaurant: rest,
		OpenNow:    rest.Open && rest.WithinHours(time.Now()),
	}
}

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Restaurants.List()
	if err != nil {
		writeError(w, err)
		return
	}

	views := make([]restaurantView, 0, len(restaurants))
	for i := range restaurants {
		views = append(views, viewOf(&restaurants[i]))
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(views)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Restaurants.Get(mux.Vars(r)["ownerId"])
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(viewOf(rest))
}

func (h *Handler) saveProfile(w http.ResponseWriter, r *http.Request) {
	var params service.ProfileParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	rest, err := h.Restaurants.SaveProfile(ownerFrom(r), params)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rest)
}

func (h *Handler) addMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	itemID, err := h.Restaurants.AddMenuItem(ownerFrom(r), item)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"id": itemID})
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	itemID := mux.Vars(r)["itemId"]
	if err := h.Restaurants.UpdateMenuItem(ownerFrom(r), itemID, item); err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"id": itemID})
}

func (h *Handler) toggleItem(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["itemId"]
	available, err := h.Restaurants.ToggleItemAvailability(ownerFrom(r), itemID)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"id": itemID, "available": available})
}

func (h *Handler) removeMenuItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Restaurants.RemoveMenuItem(ownerFrom(r), mux.Vars(r)["itemId"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrRestaurantNotFound), errors.Is(err, service.ErrMenuItemNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
