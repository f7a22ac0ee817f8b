package domain

import (
	"strconv"
	"strings"
	"time"
)

// MenuItem is a single dish on a restaurant's menu. Menus are stored as a
// map keyed by item ID so clients can address items directly.
type MenuItem struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
	Available   bool    `json:"available"`
}

// Restaurant is the public profile plus its rating and order aggregates.
// Restaurants are keyed by their owner's user ID: one account, one shop.
type Restaurant struct {
	OwnerID      string              `json:"ownerId"`
	Name         string              `json:"name"`
	Address      string              `json:"address"`
	OwnerName    string              `json:"ownerName,omitempty"`
	OwnerContact string              `json:"ownerContact,omitempty"`
	OpeningTime  string              `json:"openingTime"`
	ClosingTime  string              `json:"closingTime"`
	Open         bool                `json:"open"`
	Rating       float64             `json:"rating"`
	TotalReviews int                 `json:"totalReviews"`
	TotalOrders  int                 `json:"totalOrders"`
	Menus        map[string]MenuItem `json:"menus"`
}

// DefaultProfile is what a restaurant account looks like before the owner
// fills anything in. Reading a missing profile returns this instead of an
// error so the dashboard always has something to render.
func DefaultProfile(ownerID string) *Restaurant {
	return &Restaurant{
		OwnerID:     ownerID,
		OpeningTime: "09:00",
		ClosingTime: "22:00",
		Open:        true,
		Menus:       map[string]MenuItem{},
	}
}

func toMinutes(hhmm string) int {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0
	}
	return h*60 + m
}

// WithinHours reports whether t falls inside the restaurant's opening
// window. A window that wraps midnight (e.g. 18:00-02:00) is handled;
// equal opening and closing times mean never open.
func (r *Restaurant) WithinHours(t time.Time) bool {
	nowMins := t.Hour()*60 + t.Minute()
	openMins := toMinutes(r.OpeningTime)
	closeMins := toMinutes(r.ClosingTime)

	switch {
	case openMins == closeMins:
		return false
	case openMins < closeMins:
		return nowMins >= openMins && nowMins < closeMins
	default:
		return nowMins >= openMins || nowMins < closeMins
	}
}
