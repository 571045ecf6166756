package team

import (
	"context"
	"sync"
	"time"
)

// InMemoryRepository is used in tests.
type InMemoryRepository struct {
	mu      sync.Mutex
	Members map[string]*Member
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{Members: make(map[string]*Member)}
}

func (r *InMemoryRepository) Add(ctx context.Context, member *Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.Members {
		if m.RestaurantID == member.RestaurantID && m.Email == member.Email {
			return ErrAlreadyMember
		}
	}

	member.CreatedAt = time.Now()
	copied := *member
	r.Members[member.ID] = &copied
	return nil
}

func (r *InMemoryRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]*Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*Member
	for _, m := range r.Members {
		if m.RestaurantID == restaurantID {
			copied := *m
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) UpdateRole(ctx context.Context, restaurantID, memberID, role string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.Members[memberID]
	if !ok || m.RestaurantID != restaurantID {
		return ErrMemberNotFound
	}
	m.Role = role
	return nil
}

func (r *InMemoryRepository) Remove(ctx context.Context, restaurantID, memberID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.Members[memberID]
	if !ok || m.RestaurantID != restaurantID {
		return ErrMemberNotFound
	}
	delete(r.Members, memberID)
	return nil
}
