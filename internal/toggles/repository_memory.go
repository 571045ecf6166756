package toggles

import (
	"context"
	"sort"
	"sync"
	"time"
)

// InMemoryRepository is used in tests.
type InMemoryRepository struct {
	mu      sync.Mutex
	Toggles map[string]map[string]*Toggle
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{Toggles: make(map[string]map[string]*Toggle)}
}

func (r *InMemoryRepository) Upsert(ctx context.Context, toggle *Toggle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Toggles[toggle.RestaurantID] == nil {
		r.Toggles[toggle.RestaurantID] = make(map[string]*Toggle)
	}

	toggle.UpdatedAt = time.Now()
	copied := *toggle
	r.Toggles[toggle.RestaurantID][toggle.Feature] = &copied
	return nil
}

func (r *InMemoryRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]*Toggle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*Toggle
	for _, t := range r.Toggles[restaurantID] {
		copied := *t
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Feature < out[j].Feature })
	return out, nil
}
