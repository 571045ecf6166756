package menu

import (
	"context"
	"errors"
)

var errInjected = errors.New("injected repository failure")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateItem validates and persists one manually entered item.
// Unlike bulk import, manual entry carries per-allergen severity.
func (s *Service) CreateItem(
	ctx context.Context,
	item *Item,
	links []AllergenLink,
) error {

	if item.Name == "" {
		return errors.New("item name is required")
	}
	if item.Price != nil && *item.Price < 0 {
		return errors.New("price must be non-negative")
	}

	for _, link := range links {
		if link.Severity < 1 || link.Severity > 5 {
			return errors.New("severity must be between 1 and 5")
		}
	}

	if err := s.repo.CreateItem(ctx, item); err != nil {
		return err
	}

	return s.repo.LinkAllergens(ctx, item.ID, links)
}

func (s *Service) ListItems(
	ctx context.Context,
	restaurantID string,
) ([]Item, error) {
	return s.repo.ListByRestaurant(ctx, restaurantID)
}
