package main

import (
	"log"

	"mealdrop/config"
	httpapi "mealdrop/restaurant-svc/internal/api/http"
	"mealdrop/restaurant-svc/internal/service"
	"mealdrop/restaurant-svc/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	restaurantSvc := service.NewRestaurantService(repo)
	handler := httpapi.NewHandler(restaurantSvc)
	httpapi.StartServer(":8082", httpapi.NewRouter(handler))
}
