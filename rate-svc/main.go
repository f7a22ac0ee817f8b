package main

import (
	"log"
	"time"

	"mealdrop/config"
	httpapi "mealdrop/rate-svc/internal/api/http"
	"mealdrop/rate-svc/internal/service"
	"mealdrop/rate-svc/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()
	cache := storage.NewRedisCache(rdb, 24*time.Hour)

	writer := config.NewKafkaWriter("reviews")
	defer writer.Close()

	reviewSvc := service.NewReviewService(repo, cache, storage.NewKafkaPublisher(writer))
	handler := httpapi.NewHandler(reviewSvc)
	httpapi.StartServer(":8083", httpapi.NewRouter(handler))
}
