package main

import (
	"context"
	"log"
	"os"

	"mealdrop/config"
	httpapi "mealdrop/order-svc/internal/api/http"
	"mealdrop/order-svc/internal/live"
	"mealdrop/order-svc/internal/service"
	"mealdrop/order-svc/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	writer := config.NewKafkaWriter("orders")
	defer writer.Close()

	baseURL := os.Getenv("PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost"
	}

	orderSvc := service.NewOrderService(repo, storage.NewKafkaPublisher(writer), service.DefaultQRGenerator{BaseURL: baseURL})

	hub := live.NewHub(orderSvc)
	reader := config.NewKafkaReader("orders", "order-svc-live")
	defer reader.Close()
	go live.NewConsumer(reader, hub).Start(context.Background())

	handler := httpapi.NewHandler(orderSvc, hub)
	httpapi.StartServer(":8081", httpapi.NewRouter(handler))
}
