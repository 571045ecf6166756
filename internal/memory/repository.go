package memory

import "context"

type Repository interface {
	Save(ctx context.Context, memory *Memory) error
	ListByRestaurant(ctx context.Context, restaurantID string) ([]*Memory, error)
	ListByGuest(ctx context.Context, restaurantID, guestName string) ([]*Memory, error)
	Delete(ctx context.Context, restaurantID, memoryID string) error
}
