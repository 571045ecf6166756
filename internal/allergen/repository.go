package allergen

import "context"

// Repository reads the allergen catalog.
type Repository interface {
	ListAll(ctx context.Context) ([]Allergen, error)
}
