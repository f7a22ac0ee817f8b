package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"mealdrop/rate-svc/internal/domain"
	"mealdrop/rate-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Reviews service.ReviewServiceInterface
}

func NewHandler(reviews service.ReviewServiceInterface) *Handler {
	return &Handler{Reviews: reviews}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants/{restaurantId}/reviews", h.addReview).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/reviews", h.getRestaurantReviews).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/reviews/distribution", h.getDistribution).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/rating", h.getAggregate).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "rate-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) addReview(w http.ResponseWriter, r *http.Request) {
	var review domain.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	review.RestaurantID = mux.Vars(r)["restaurantId"]
	if uid := r.Header.Get("X-User-Id"); uid != "" {
		review.CustomerID = uid
	}

	agg, err := h.Reviews.AddOrUpdateReview(r.Context(), &review)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"review":    review,
		"aggregate": agg,
	})
}

func (h *Handler) getRestaurantReviews(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	reviews, err := h.Reviews.RestaurantReviews(mux.Vars(r)["restaurantId"], limit)
	if err != nil {
		writeError(w, err)
		return
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(reviews)
}

func (h *Handler) getDistribution(w http.ResponseWriter, r *http.Request) {
	distribution, err := h.Reviews.RatingDistribution(mux.Vars(r)["restaurantId"])
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(distribution)
}

func (h *Handler) getAggregate(w http.ResponseWriter, r *http.Request) {
	agg, err := h.Reviews.RestaurantAggregate(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(agg)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound), errors.Is(err, domain.ErrRestaurantNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrOrderNotRatable):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
