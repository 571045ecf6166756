package restaurant

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("restaurant not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Create a new restaurant
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, restaurant *Restaurant) error {
	query := `
		INSERT INTO restaurants (id, owner_id, name, address, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	return r.db.QueryRow(
		ctx,
		query,
		restaurant.ID,
		restaurant.OwnerID,
		restaurant.Name,
		restaurant.Address,
		restaurant.Phone,
	).Scan(&restaurant.CreatedAt, &restaurant.UpdatedAt)
}

// --------------------------------------------------
// List restaurants owned by a user
// --------------------------------------------------
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Restaurant, error) {
	query := `
		SELECT id, owner_id, name, address, phone, created_at, updated_at
		FROM restaurants
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []*Restaurant

	for rows.Next() {
		var res Restaurant
		if err := rows.Scan(
			&res.ID,
			&res.OwnerID,
			&res.Name,
			&res.Address,
			&res.Phone,
			&res.CreatedAt,
			&res.UpdatedAt,
		); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, &res)
	}

	return restaurants, rows.Err()
}

// --------------------------------------------------
// Fetch a single restaurant
// --------------------------------------------------
func (r *PostgresRepository) Get(ctx context.Context, restaurantID string) (*Restaurant, error) {
	query := `
		SELECT id, owner_id, name, address, phone, created_at, updated_at
		FROM restaurants
		WHERE id = $1
	`

	var res Restaurant
	err := r.db.QueryRow(ctx, query, restaurantID).Scan(
		&res.ID,
		&res.OwnerID,
		&res.Name,
		&res.Address,
		&res.Phone,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &res, nil
}

// --------------------------------------------------
// Update profile settings
// --------------------------------------------------
func (r *PostgresRepository) UpdateSettings(ctx context.Context, restaurant *Restaurant) error {
	query := `
		UPDATE restaurants
		SET name = $2, address = $3, phone = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRow(
		ctx,
		query,
		restaurant.ID,
		restaurant.Name,
		restaurant.Address,
		restaurant.Phone,
	).Scan(&restaurant.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// --------------------------------------------------
// Ownership check
// --------------------------------------------------
func (r *PostgresRepository) IsOwner(ctx context.Context, restaurantID, userID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM restaurants
			WHERE id = $1 AND owner_id = $2
		)
	`, restaurantID, userID).Scan(&exists)

	return exists, err
}
