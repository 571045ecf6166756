package toggles

import (
	"context"
	"errors"
)

var ErrUnknownFeature = errors.New("unknown feature")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SetToggle switches a known feature on or off for a restaurant.
func (s *Service) SetToggle(ctx context.Context, restaurantID, feature string, enabled bool) (*Toggle, error) {
	if !knownFeatures[feature] {
		return nil, ErrUnknownFeature
	}

	toggle := &Toggle{
		RestaurantID: restaurantID,
		Feature:      feature,
		Enabled:      enabled,
	}

	if err := s.repo.Upsert(ctx, toggle); err != nil {
		return nil, err
	}

	return toggle, nil
}

// ListToggles returns every stored toggle plus defaults for features
// the restaurant never touched. Unstored features default to enabled.
func (s *Service) ListToggles(ctx context.Context, restaurantID string) ([]*Toggle, error) {
	stored, err := s.repo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(stored))
	for _, t := range stored {
		seen[t.Feature] = true
	}

	for feature := range knownFeatures {
		if !seen[feature] {
			stored = append(stored, &Toggle{
				RestaurantID: restaurantID,
				Feature:      feature,
				Enabled:      true,
			})
		}
	}

	return stored, nil
}

// IsEnabled reports whether a feature is on for the restaurant.
func (s *Service) IsEnabled(ctx context.Context, restaurantID, feature string) (bool, error) {
	if !knownFeatures[feature] {
		return false, ErrUnknownFeature
	}

	stored, err := s.repo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return false, err
	}

	for _, t := range stored {
		if t.Feature == feature {
			return t.Enabled, nil
		}
	}
	return true, nil
}
