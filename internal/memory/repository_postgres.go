package memory

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrMemoryNotFound = errors.New("memory not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Save(ctx context.Context, memory *Memory) error {
	query := `
		INSERT INTO memories (id, restaurant_id, guest_name, note, summary)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	return r.db.QueryRow(
		ctx,
		query,
		memory.ID,
		memory.RestaurantID,
		memory.GuestName,
		memory.Note,
		memory.Summary,
	).Scan(&memory.CreatedAt)
}

func (r *PostgresRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]*Memory, error) {
	query := `
		SELECT id, restaurant_id, guest_name, note, summary, created_at
		FROM memories
		WHERE restaurant_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMemories(rows)
}

func (r *PostgresRepository) ListByGuest(ctx context.Context, restaurantID, guestName string) ([]*Memory, error) {
	query := `
		SELECT id, restaurant_id, guest_name, note, summary, created_at
		FROM memories
		WHERE restaurant_id = $1 AND LOWER(guest_name) = LOWER($2)
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, restaurantID, guestName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMemories(rows)
}

func (r *PostgresRepository) Delete(ctx context.Context, restaurantID, memoryID string) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM memories
		WHERE restaurant_id = $1 AND id = $2
	`, restaurantID, memoryID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMemoryNotFound
	}
	return nil
}

func scanMemories(rows pgx.Rows) ([]*Memory, error) {
	var memories []*Memory
	for rows.Next() {
		var m Memory
		if err := rows.Scan(&m.ID, &m.RestaurantID, &m.GuestName, &m.Note, &m.Summary, &m.CreatedAt); err != nil {
			return nil, err
		}
		memories = append(memories, &m)
	}
	return memories, rows.Err()
}
