package restaurant

import (
	"context"
	"sync"
	"time"
)

// InMemoryRepository is used in tests.
type InMemoryRepository struct {
	mu          sync.Mutex
	Restaurants map[string]*Restaurant
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{Restaurants: make(map[string]*Restaurant)}
}

func (r *InMemoryRepository) Create(ctx context.Context, restaurant *Restaurant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	restaurant.CreatedAt = now
	restaurant.UpdatedAt = now
	copied := *restaurant
	r.Restaurants[restaurant.ID] = &copied
	return nil
}

func (r *InMemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Restaurant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*Restaurant
	for _, res := range r.Restaurants {
		if res.OwnerID == ownerID {
			copied := *res
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, restaurantID string) (*Restaurant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.Restaurants[restaurantID]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *res
	return &copied, nil
}

func (r *InMemoryRepository) UpdateSettings(ctx context.Context, restaurant *Restaurant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.Restaurants[restaurant.ID]
	if !ok {
		return ErrNotFound
	}
	stored.Name = restaurant.Name
	stored.Address = restaurant.Address
	stored.Phone = restaurant.Phone
	stored.UpdatedAt = time.Now()
	restaurant.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r *InMemoryRepository) IsOwner(ctx context.Context, restaurantID, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.Restaurants[restaurantID]
	return ok && res.OwnerID == userID, nil
}
