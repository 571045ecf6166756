package menu

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateItem(ctx context.Context, item *Item) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO menu_items (
			id, restaurant_id, name, description, category, price, active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		item.ID,
		item.RestaurantID,
		item.Name,
		item.Description,
		item.Category,
		item.Price,
		item.Active,
	)
	return err
}

// LinkAllergens writes every link for one item in a single batch round trip.
func (r *PostgresRepository) LinkAllergens(
	ctx context.Context,
	itemID string,
	links []AllergenLink,
) error {

	if len(links) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, link := range links {
		batch.Queue(`
			INSERT INTO menu_item_allergens (menu_item_id, allergen_id, severity)
			VALUES ($1, $2, $3)
			ON CONFLICT (menu_item_id, allergen_id) DO NOTHING
		`, itemID, link.AllergenID, link.Severity)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range links {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}

	return nil
}

func (r *PostgresRepository) ListByRestaurant(
	ctx context.Context,
	restaurantID string,
) ([]Item, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, restaurant_id, name, description, category, price, active, created_at
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY created_at DESC
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var item Item
		if err := rows.Scan(
			&item.ID,
			&item.RestaurantID,
			&item.Name,
			&item.Description,
			&item.Category,
			&item.Price,
			&item.Active,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
