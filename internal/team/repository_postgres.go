package team

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrMemberNotFound = errors.New("team member not found")
	ErrAlreadyMember  = errors.New("email already invited")
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Invite a member
// --------------------------------------------------
func (r *PostgresRepository) Add(ctx context.Context, member *Member) error {
	query := `
		INSERT INTO team_members (id, restaurant_id, email, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (restaurant_id, email) DO NOTHING
		RETURNING created_at
	`

	err := r.db.QueryRow(
		ctx,
		query,
		member.ID,
		member.RestaurantID,
		member.Email,
		member.Role,
	).Scan(&member.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		// DO NOTHING fired, the email is already on the team
		return ErrAlreadyMember
	}
	return err
}

// --------------------------------------------------
// List members of a restaurant
// --------------------------------------------------
func (r *PostgresRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]*Member, error) {
	query := `
		SELECT id, restaurant_id, email, role, created_at
		FROM team_members
		WHERE restaurant_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*Member

	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.ID, &m.RestaurantID, &m.Email, &m.Role, &m.CreatedAt); err != nil {
			return nil, err
		}
		members = append(members, &m)
	}

	return members, rows.Err()
}

// --------------------------------------------------
// Change a member's role
// --------------------------------------------------
func (r *PostgresRepository) UpdateRole(ctx context.Context, restaurantID, memberID, role string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE team_members
		SET role = $3
		WHERE restaurant_id = $1 AND id = $2
	`, restaurantID, memberID, role)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMemberNotFound
	}
	return nil
}

// --------------------------------------------------
// Remove a member
// --------------------------------------------------
func (r *PostgresRepository) Remove(ctx context.Context, restaurantID, memberID string) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM team_members
		WHERE restaurant_id = $1 AND id = $2
	`, restaurantID, memberID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMemberNotFound
	}
	return nil
}
