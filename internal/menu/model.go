package menu

import "time"

// Item is the persisted, restaurant-scoped menu item.
// Name must be non-empty; Price, when set, must be non-negative.
type Item struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Price        *float64  `json:"price"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// AllergenLink associates an item with a catalog allergen.
type AllergenLink struct {
	AllergenID string `json:"allergen_id"`
	Severity   int    `json:"severity"`
}
