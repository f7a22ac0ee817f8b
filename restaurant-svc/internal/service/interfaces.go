package service

import "mealdrop/restaurant-svc/internal/domain"

type RestaurantRepository interface {
	GetRestaurant(ownerID string) (*domain.Restaurant, error)
	ListRestaurants() ([]domain.Restaurant, error)
	SaveRestaurant(rest *domain.Restaurant) error
}

type RestaurantServiceInterface interface {
	Get(ownerID string) (*domain.Restaurant, error)
	List() ([]domain.Restaurant, error)
	SaveProfile(ownerID string, params ProfileParams) (*domain.Restaurant, error)
	AddMenuItem(ownerID string, item domain.MenuItem) (string, error)
	UpdateMenuItem(ownerID, itemID string, item domain.MenuItem) error
	ToggleItemAvailability(ownerID, itemID string) (bool, error)
	RemoveMenuItem(ownerID, itemID string) error
}

var _ RestaurantServiceInterface = (*RestaurantService)(nil)
