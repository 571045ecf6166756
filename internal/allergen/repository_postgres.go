package allergen

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

func (r *PostgresRepository) ListAll(ctx context.Context) ([]Allergen, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name
		FROM allergens
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var allergens []Allergen
	for rows.Next() {
		var a Allergen
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, err
		}
		allergens = append(allergens, a)
	}
	return allergens, nil
}
