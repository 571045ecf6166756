package toggles

import "context"

type Repository interface {
	Upsert(ctx context.Context, toggle *Toggle) error
	ListByRestaurant(ctx context.Context, restaurantID string) ([]*Toggle, error)
}
