package gateway

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt"
	"github.com/gorilla/mux"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	OrderSvcURL      string
	RestaurantSvcURL string
	RateSvcURL       string
	MetricsSvcURL    string
	JWTSecret        []byte
}

type Gateway struct {
	config Config
	client HTTPClient
}

func NewGateway(config Config, client HTTPClient) *Gateway {
	return &Gateway{
		config: config,
		client: client,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// identity extracts the caller from a Bearer token. An absent header is an
// anonymous request; a present but unparseable token is rejected upstream.
type identity struct {
	UserID string
	Email  string
}

func (g *Gateway) authenticate(r *http.Request) (*identity, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, nil
	}

	tokenString := strings.TrimPrefix(header, "Bearer ")
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return g.config.JWTSecret, nil
	})
	if err != nil {
		return nil, err
	}

	id := &identity{}
	if sub, ok := claims["user_id"].(string); ok {
		id.UserID = sub
	}
	if email, ok := claims["email"].(string); ok {
		id.Email = email
	}
	return id, nil
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string, caller *identity) {
	log.Printf("PROXY: %s %s -> %s%s", r.Method, r.URL.Path, targetURL, r.URL.Path)

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequest(r.Method, url, r.Body)
	if err != nil {
		log.Printf("ERROR: Failed to create request: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}

	// Identity headers are owned by the gateway; clients cannot smuggle them.
	req.Header.Del("X-User-Id")
	req.Header.Del("X-User-Email")
	if caller != nil {
		req.Header.Set("X-User-Id", caller.UserID)
		req.Header.Set("X-User-Email", caller.Email)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("ERROR: Failed to proxy to %s: %v", targetURL, err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("ERROR: Failed to copy response: %v", err)
	}
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	log.Printf("ROUTE: %s %s", r.Method, path)

	caller, err := g.authenticate(r)
	if err != nil {
		log.Printf("[GATEWAY] Rejected token on %s: %v", path, err)
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	if path == "/api/reviews/distribution" {
		g.ProxyRequest(w, r, g.config.MetricsSvcURL, caller)
		return
	}

	if strings.HasPrefix(path, "/api/restaurants/") && strings.HasSuffix(path, "/metrics") {
		g.ProxyRequest(w, r, g.config.MetricsSvcURL, caller)
		return
	}

	if strings.Contains(path, "/reviews") || strings.HasSuffix(path, "/rating") {
		g.ProxyRequest(w, r, g.config.RateSvcURL, caller)
		return
	}

	// Restaurant and customer order listings live in the order service
	// alongside /api/orders itself.
	if strings.HasPrefix(path, "/api/orders") || strings.Contains(path, "/orders") ||
		strings.HasPrefix(path, "/api/customers/") {
		g.ProxyRequest(w, r, g.config.OrderSvcURL, caller)
		return
	}

	if path == "/api/restaurants" || strings.HasPrefix(path, "/api/restaurants/") {
		g.ProxyRequest(w, r, g.config.RestaurantSvcURL, caller)
		return
	}

	if strings.HasPrefix(path, "/api/") {
		log.Printf("[GATEWAY] Unmatched API route: %s", path)
		http.Error(w, "API route not found", http.StatusNotFound)
		return
	}

	http.ServeFile(w, r, "./frontend/index.html")
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("./frontend/"))))
	r.PathPrefix("/").HandlerFunc(g.RouteHandler)
	return r
}
