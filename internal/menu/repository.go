package menu

import "context"

// Repository defines all database operations for menu items.
type Repository interface {

	// CreateItem inserts one item and fills in its generated ID.
	CreateItem(ctx context.Context, item *Item) error

	// LinkAllergens writes all of an item's allergen links in one batch.
	LinkAllergens(ctx context.Context, itemID string, links []AllergenLink) error

	// ListByRestaurant returns every item for a restaurant, newest first.
	ListByRestaurant(ctx context.Context, restaurantID string) ([]Item, error)
}
