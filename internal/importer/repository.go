package importer

import "context"

// Upload is one import session's durable record.
type Upload struct {
	ID           int      `json:"id"`
	RestaurantID string   `json:"restaurant_id"`
	Source       Source   `json:"source"`
	ImageURL     string   `json:"image_url,omitempty"`
	Status       string   `json:"status"`
	Rows         []RawRow `json:"rows,omitempty"`
	Error        *string  `json:"error,omitempty"`
}

// Repository defines all database operations for import sessions.
type Repository interface {

	// CreateCSVUpload stores an already-parsed CSV session (ROWS_READY).
	CreateCSVUpload(ctx context.Context, restaurantID string, rows []RawRow) (int, error)

	// CreateImageUpload stores an image session awaiting OCR.
	CreateImageUpload(ctx context.Context, restaurantID, imageURL string) (int, error)

	// Get reads one session.
	Get(ctx context.Context, id int) (*Upload, error)

	// ClaimPendingImage atomically claims the next image session awaiting
	// OCR. Returns (0, "", nil) when none are pending.
	ClaimPendingImage(ctx context.Context) (int, string, error)

	// SaveRows stores parsed preview rows and marks the session ROWS_READY.
	SaveRows(ctx context.Context, id int, rows []RawRow) error

	// MarkImported finalizes a committed session.
	MarkImported(ctx context.Context, id int) error

	// MarkFailed records a failure reason.
	MarkFailed(ctx context.Context, id int, reason string) error
}
