package importer

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateCSVUpload(
	ctx context.Context,
	restaurantID string,
	rows []RawRow,
) (int, error) {

	data, err := json.Marshal(rows)
	if err != nil {
		return 0, err
	}

	var id int
	err = r.db.QueryRow(ctx, `
		INSERT INTO import_uploads (restaurant_id, source, status, rows)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, restaurantID, SourceCSV, StatusRowsReady, data).Scan(&id)

	return id, err
}

func (r *PostgresRepository) CreateImageUpload(
	ctx context.Context,
	restaurantID, imageURL string,
) (int, error) {

	var id int
	err := r.db.QueryRow(ctx, `
		INSERT INTO import_uploads (restaurant_id, source, image_url, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, restaurantID, SourceImage, imageURL, StatusImageUploaded).Scan(&id)

	return id, err
}

func (r *PostgresRepository) Get(ctx context.Context, id int) (*Upload, error) {
	var (
		upload   Upload
		rowsJSON []byte
	)

	err := r.db.QueryRow(ctx, `
		SELECT id, restaurant_id, source, image_url, status, rows, error
		FROM import_uploads
		WHERE id = $1
	`, id).Scan(
		&upload.ID,
		&upload.RestaurantID,
		&upload.Source,
		&upload.ImageURL,
		&upload.Status,
		&rowsJSON,
		&upload.Error,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("import not found")
		}
		return nil, err
	}

	if len(rowsJSON) > 0 {
		if err := json.Unmarshal(rowsJSON, &upload.Rows); err != nil {
			return nil, err
		}
	}

	return &upload, nil
}

// ClaimPendingImage claims the oldest image session awaiting OCR,
// marking it OCR_PROCESSING inside one transaction so concurrent
// workers never pick the same job.
func (r *PostgresRepository) ClaimPendingImage(ctx context.Context) (int, string, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, "", err
	}
	defer tx.Rollback(ctx)

	var (
		id  int
		url string
	)

	err = tx.QueryRow(ctx, `
		SELECT id, image_url
		FROM import_uploads
		WHERE status = $1
		ORDER BY created_at
		LIMIT 1
		FOR UPDATE SKIP LOCKED
	`, StatusImageUploaded).Scan(&id, &url)

	// No pending jobs is NOT an error
	if err != nil {
		return 0, "", nil
	}

	_, err = tx.Exec(ctx, `
		UPDATE import_uploads
		SET status = $1, updated_at = now()
		WHERE id = $2
	`, StatusOCRProcessing, id)
	if err != nil {
		return 0, "", err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, "", err
	}

	return id, url, nil
}

func (r *PostgresRepository) SaveRows(ctx context.Context, id int, rows []RawRow) error {
	data, err := json.Marshal(rows)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		UPDATE import_uploads
		SET rows = $1,
		    status = $2,
		    error = NULL,
		    updated_at = now()
		WHERE id = $3
	`, data, StatusRowsReady, id)

	return err
}

func (r *PostgresRepository) MarkImported(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `
		UPDATE import_uploads
		SET status = $1, updated_at = now()
		WHERE id = $2
	`, StatusImported, id)

	return err
}

func (r *PostgresRepository) MarkFailed(ctx context.Context, id int, reason string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE import_uploads
		SET status = $1,
		    error = $2,
		    updated_at = now()
		WHERE id = $3
	`, StatusFailed, reason, id)

	return err
}
