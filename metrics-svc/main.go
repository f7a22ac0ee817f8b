package main

import (
	"context"

	"mealdrop/config"
	httpapi "mealdrop/metrics-svc/internal/api/http"
	"mealdrop/metrics-svc/internal/service"
	"mealdrop/metrics-svc/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	repo := storage.NewPostgresRepository(db)
	cache := storage.NewRedisCache(rdb, storage.StatsTTL)
	metricsSvc := service.NewMetricsService(repo, cache)

	ctx := context.Background()
	for _, topic := range []string{"orders", "reviews"} {
		reader := config.NewKafkaReader(topic, "metrics-svc-"+topic)
		defer reader.Close()
		go service.NewConsumer(reader, metricsSvc).Start(ctx)
	}

	handler := httpapi.NewHandler(metricsSvc)
	httpapi.StartServer(":8084", httpapi.NewRouter(handler))
}
