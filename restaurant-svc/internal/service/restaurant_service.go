package service

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"

	"mealdrop/restaurant-svc/internal/domain"

	"github.com/lucsky/cuid"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrValidation         = errors.New("validation failed")
)

// ProfileParams carries a partial profile update. Nil fields are left as
// they are, mirroring a merge-style document write.
type ProfileParams struct {
	Name         *string `json:"name"`
	Address      *string `json:"address"`
	OwnerName    *string `json:"ownerName"`
	OwnerContact *string `json:"ownerContact"`
	OpeningTime  *string `json:"openingTime"`
	ClosingTime  *string `json:"closingTime"`
	Open         *bool   `json:"open"`
}

type RestaurantService struct {
	repo RestaurantRepository
}

func NewRestaurantService(repo RestaurantRepository) *RestaurantService {
	return &RestaurantService{repo: repo}
}

// Get returns the stored profile, or a fresh default one when the owner
// has never saved anything. The default is not persisted until a save.
func (s *RestaurantService) Get(ownerID string) (*domain.Restaurant, error) {
	rest, err := s.repo.GetRestaurant(ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DefaultProfile(ownerID), nil
	}
	if err != nil {
		return nil, err
	}
	if rest.Menus == nil {
		rest.Menus = map[string]domain.MenuItem{}
	}
	return rest, nil
}

func (s *RestaurantService) List() ([]domain.Restaurant, error) {
	return s.repo.ListRestaurants()
}

func (s *RestaurantService) SaveProfile(ownerID string, params ProfileParams) (*domain.Restaurant, error) {
	rest, err := s.Get(ownerID)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		rest.Name = strings.TrimSpace(*params.Name)
	}
	if params.Address != nil {
		rest.Address = strings.TrimSpace(*params.Address)
	}
	if params.OwnerName != nil {
		rest.OwnerName = strings.TrimSpace(*params.OwnerName)
	}
	if params.OwnerContact != nil {
		rest.OwnerContact = strings.TrimSpace(*params.OwnerContact)
	}
	if params.OpeningTime != nil {
		rest.OpeningTime = *params.OpeningTime
	}
	if params.ClosingTime != nil {
		rest.ClosingTime = *params.ClosingTime
	}
	if params.Open != nil {
		rest.Open = *params.Open
	}

	if err := s.repo.SaveRestaurant(rest); err != nil {
		return nil, err
	}
	return rest, nil
}

func sanitizeItem(item domain.MenuItem) domain.MenuItem {
	item.Name = strings.TrimSpace(item.Name)
	item.Description = strings.TrimSpace(item.Description)
	item.Image = strings.TrimSpace(item.Image)
	if math.IsNaN(item.Price) || math.IsInf(item.Price, 0) || item.Price < 0 {
		item.Price = 0
	}
	return item
}

func (s *RestaurantService) AddMenuItem(ownerID string, item domain.MenuItem) (string, error) {
	item = sanitizeItem(item)
	if item.Name == "" {
		return "", fmt.Errorf("%w: item name is required", ErrValidation)
	}

	rest, err := s.Get(ownerID)
	if err != nil {
		return "", err
	}

	itemID := cuid.New()
	rest.Menus[itemID] = item
	if err := s.repo.SaveRestaurant(rest); err != nil {
		return "", err
	}
	return itemID, nil
}

func (s *RestaurantService) UpdateMenuItem(ownerID, itemID string, item domain.MenuItem) error {
	item = sanitizeItem(item)
	if item.Name == "" {
		return fmt.Errorf("%w: item name is required", ErrValidation)
	}

	rest, err := s.Get(ownerID)
	if err != nil {
		return err
	}
	if _, ok := rest.Menus[itemID]; !ok {
		return fmt.Errorf("%w: %s", ErrMenuItemNotFound, itemID)
	}

	rest.Menus[itemID] = item
	return s.repo.SaveRestaurant(rest)
}

func (s *RestaurantService) ToggleItemAvailability(ownerID, itemID string) (bool, error) {
	rest, err := s.Get(ownerID)
	if err != nil {
		return false, err
	}
	item, ok := rest.Menus[itemID]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrMenuItemNotFound, itemID)
	}

	item.Available = !item.Available
	rest.Menus[itemID] = item
	if err := s.repo.SaveRestaurant(rest); err != nil {
		return false, err
	}
	return item.Available, nil
}

func (s *RestaurantService) RemoveMenuItem(ownerID, itemID string) error {
	rest, err := s.Get(ownerID)
	if err != nil {
		return err
	}
	if _, ok := rest.Menus[itemID]; !ok {
		return fmt.Errorf("%w: %s", ErrMenuItemNotFound, itemID)
	}

	delete(rest.Menus, itemID)
	return s.repo.SaveRestaurant(rest)
}
