package main

import (
	"log"
	"net/http"
	"os"

	"mealdrop/api-gateway/internal/gateway"
	"mealdrop/config"

	"github.com/rs/cors"
)

func main() {
	gwConfig := gateway.Config{
		OrderSvcURL:      getEnv("ORDER_SVC_URL", "http://localhost:8081"),
		RestaurantSvcURL: getEnv("RESTAURANT_SVC_URL", "http://localhost:8082"),
		RateSvcURL:       getEnv("RATE_SVC_URL", "http://localhost:8083"),
		MetricsSvcURL:    getEnv("METRICS_SVC_URL", "http://localhost:8084"),
		JWTSecret:        config.JWTSecret(),
	}

	gw := gateway.NewGateway(gwConfig, &http.Client{})

	r := gw.SetupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://127.0.0.1:8080", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(r)

	log.Println("API Gateway starting on port 8080")
	log.Fatal(http.ListenAndServe(":8080", handler))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
