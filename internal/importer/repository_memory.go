package importer

import (
	"context"
	"errors"
)

// InMemoryRepository backs handler and worker tests.
type InMemoryRepository struct {
	uploads map[int]*Upload
	nextID  int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		uploads: make(map[int]*Upload),
		nextID:  1,
	}
}

func (r *InMemoryRepository) CreateCSVUpload(
	ctx context.Context,
	restaurantID string,
	rows []RawRow,
) (int, error) {
	id := r.nextID
	r.nextID++
	r.uploads[id] = &Upload{
		ID:           id,
		RestaurantID: restaurantID,
		Source:       SourceCSV,
		Status:       StatusRowsReady,
		Rows:         rows,
	}
	return id, nil
}

func (r *InMemoryRepository) CreateImageUpload(
	ctx context.Context,
	restaurantID, imageURL string,
) (int, error) {
	id := r.nextID
	r.nextID++
	r.uploads[id] = &Upload{
		ID:           id,
		RestaurantID: restaurantID,
		Source:       SourceImage,
		ImageURL:     imageURL,
		Status:       StatusImageUploaded,
	}
	return id, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id int) (*Upload, error) {
	upload, ok := r.uploads[id]
	if !ok {
		return nil, errors.New("import not found")
	}
	return upload, nil
}

func (r *InMemoryRepository) ClaimPendingImage(ctx context.Context) (int, string, error) {
	for id, upload := range r.uploads {
		if upload.Status == StatusImageUploaded {
			upload.Status = StatusOCRProcessing
			return id, upload.ImageURL, nil
		}
	}
	return 0, "", nil
}

func (r *InMemoryRepository) SaveRows(ctx context.Context, id int, rows []RawRow) error {
	upload, ok := r.uploads[id]
	if !ok {
		return errors.New("import not found")
	}
	upload.Rows = rows
	upload.Status = StatusRowsReady
	upload.Error = nil
	return nil
}

func (r *InMemoryRepository) MarkImported(ctx context.Context, id int) error {
	upload, ok := r.uploads[id]
	if !ok {
		return errors.New("import not found")
	}
	upload.Status = StatusImported
	return nil
}

func (r *InMemoryRepository) MarkFailed(ctx context.Context, id int, reason string) error {
	upload, ok := r.uploads[id]
	if !ok {
		return errors.New("import not found")
	}
	upload.Status = StatusFailed
	upload.Error = &reason
	return nil
}
