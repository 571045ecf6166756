package team

import "context"

type Repository interface {
	Add(ctx context.Context, member *Member) error
	ListByRestaurant(ctx context.Context, restaurantID string) ([]*Member, error)
	UpdateRole(ctx context.Context, restaurantID, memberID, role string) error
	Remove(ctx context.Context, restaurantID, memberID string) error
}
