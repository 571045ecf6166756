package menu

import (
	"context"

	"github.com/google/uuid"
)

// InMemoryRepository backs service and importer tests.
// FailCreateAt > 0 makes the Nth CreateItem call fail.
type InMemoryRepository struct {
	Items        []Item
	Links        map[string][]AllergenLink
	FailCreateAt int
	FailLinks    bool
	createCalls  int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		Links: make(map[string][]AllergenLink),
	}
}

func (r *InMemoryRepository) CreateItem(ctx context.Context, item *Item) error {
	r.createCalls++
	if r.FailCreateAt > 0 && r.createCalls == r.FailCreateAt {
		return errInjected
	}

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	r.Items = append(r.Items, *item)
	return nil
}

func (r *InMemoryRepository) LinkAllergens(
	ctx context.Context,
	itemID string,
	links []AllergenLink,
) error {
	if r.FailLinks {
		return errInjected
	}
	r.Links[itemID] = append(r.Links[itemID], links...)
	return nil
}

func (r *InMemoryRepository) ListByRestaurant(
	ctx context.Context,
	restaurantID string,
) ([]Item, error) {
	var items []Item
	for _, item := range r.Items {
		if item.RestaurantID == restaurantID {
			items = append(items, item)
		}
	}
	return items, nil
}
