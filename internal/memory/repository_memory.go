package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// InMemoryRepository is used in tests.
type InMemoryRepository struct {
	mu       sync.Mutex
	Memories map[string]*Memory
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{Memories: make(map[string]*Memory)}
}

func (r *InMemoryRepository) Save(ctx context.Context, memory *Memory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	memory.CreatedAt = time.Now()
	copied := *memory
	r.Memories[memory.ID] = &copied
	return nil
}

func (r *InMemoryRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]*Memory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*Memory
	for _, m := range r.Memories {
		if m.RestaurantID == restaurantID {
			copied := *m
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *InMemoryRepository) ListByGuest(ctx context.Context, restaurantID, guestName string) ([]*Memory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*Memory
	for _, m := range r.Memories {
		if m.RestaurantID == restaurantID && strings.EqualFold(m.GuestName, guestName) {
			copied := *m
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, restaurantID, memoryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.Memories[memoryID]
	if !ok || m.RestaurantID != restaurantID {
		return ErrMemoryNotFound
	}
	delete(r.Memories, memoryID)
	return nil
}
