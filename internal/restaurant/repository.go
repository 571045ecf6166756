package restaurant

import "context"

type Repository interface {
	Create(ctx context.Context, restaurant *Restaurant) error
	ListByOwner(ctx context.Context, ownerID string) ([]*Restaurant, error)
	Get(ctx context.Context, restaurantID string) (*Restaurant, error)
	UpdateSettings(ctx context.Context, restaurant *Restaurant) error

	// ownership check used by every scoped endpoint
	IsOwner(ctx context.Context, restaurantID, userID string) (bool, error)
}
