package toggles

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Upsert(ctx context.Context, toggle *Toggle) error {
	query := `
		INSERT INTO feature_toggles (restaurant_id, feature, enabled, updated_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		ON CONFLICT (restaurant_id, feature)
		DO UPDATE SET enabled = $3, updated_at = CURRENT_TIMESTAMP
		RETURNING updated_at
	`

	return r.db.QueryRow(
		ctx,
		query,
		toggle.RestaurantID,
		toggle.Feature,
		toggle.Enabled,
	).Scan(&toggle.UpdatedAt)
}

func (r *PostgresRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]*Toggle, error) {
	query := `
		SELECT restaurant_id, feature, enabled, updated_at
		FROM feature_toggles
		WHERE restaurant_id = $1
		ORDER BY feature
	`

	rows, err := r.db.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Toggle

	for rows.Next() {
		var t Toggle
		if err := rows.Scan(&t.RestaurantID, &t.Feature, &t.Enabled, &t.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &t)
	}

	return out, rows.Err()
}
