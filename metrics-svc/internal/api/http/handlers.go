package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"mealdrop/metrics-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Metrics service.MetricsServiceInterface
}

func NewHandler(metrics service.MetricsServiceInterface) *Handler {
	return &Handler{Metrics: metrics}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants/{restaurantId}/metrics", h.getRestaurantMetrics).Methods("GET")
	r.HandleFunc("/api/reviews/distribution", h.getGlobalDistribution).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "metrics-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) getRestaurantMetrics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Metrics.RestaurantStats(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

func (h *Handler) getGlobalDistribution(w http.ResponseWriter, r *http.Request) {
	distribution, err := h.Metrics.GlobalRatingDistribution()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(distribution)
}
