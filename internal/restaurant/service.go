package restaurant

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotOwner = errors.New("unauthorized")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Create restaurant
// --------------------------------------------------
func (s *Service) CreateRestaurant(
	ctx context.Context,
	name string,
	address string,
	phone string,
	ownerID string,
) (*Restaurant, error) {

	if name == "" {
		return nil, errors.New("restaurant name is required")
	}

	restaurant := &Restaurant{
		ID:      uuid.New().String(),
		OwnerID: ownerID,
		Name:    name,
		Address: address,
		Phone:   phone,
	}

	if err := s.repo.Create(ctx, restaurant); err != nil {
		return nil, err
	}

	return restaurant, nil
}

// --------------------------------------------------
// List restaurants owned by user
// --------------------------------------------------
func (s *Service) ListMyRestaurants(ctx context.Context, ownerID string) ([]*Restaurant, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// --------------------------------------------------
// Fetch a single restaurant (owner only)
// --------------------------------------------------
func (s *Service) GetRestaurant(ctx context.Context, restaurantID, userID string) (*Restaurant, error) {
	isOwner, err := s.repo.IsOwner(ctx, restaurantID, userID)
	if err != nil {
		return nil, err
	}
	if !isOwner {
		return nil, ErrNotOwner
	}

	return s.repo.Get(ctx, restaurantID)
}

// --------------------------------------------------
// Update profile settings (owner only)
// --------------------------------------------------
func (s *Service) UpdateSettings(
	ctx context.Context,
	restaurantID string,
	userID string,
	name string,
	address string,
	phone string,
) (*Restaurant, error) {

	isOwner, err := s.repo.IsOwner(ctx, restaurantID, userID)
	if err != nil {
		return nil, err
	}
	if !isOwner {
		return nil, ErrNotOwner
	}

	if name == "" {
		return nil, errors.New("restaurant name is required")
	}

	restaurant := &Restaurant{
		ID:      restaurantID,
		Name:    name,
		Address: address,
		Phone:   phone,
	}

	if err := s.repo.UpdateSettings(ctx, restaurant); err != nil {
		return nil, err
	}

	return s.repo.Get(ctx, restaurantID)
}

// --------------------------------------------------
// Ownership check for other packages
// --------------------------------------------------
func (s *Service) IsOwner(ctx context.Context, restaurantID, userID string) (bool, error) {
	return s.repo.IsOwner(ctx, restaurantID, userID)
}
