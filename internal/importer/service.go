package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/log-ai-n/manassistant/internal/allergen"
	"github.com/log-ai-n/manassistant/internal/menu"
)

// Storage stores uploaded menu images and returns a fetchable URL.
type Storage interface {
	Upload(ctx context.Context, key string, body io.Reader) (string, error)
}

// Broadcaster pushes progress events to a restaurant's live listeners.
type Broadcaster interface {
	Broadcast(restaurantID string, payload any)
}

type Service struct {
	repo         Repository
	storage      Storage
	menuRepo     menu.Repository
	allergenRepo allergen.Repository
	broadcaster  Broadcaster
}

func NewService(
	repo Repository,
	storage Storage,
	menuRepo menu.Repository,
	allergenRepo allergen.Repository,
	broadcaster Broadcaster,
) *Service {
	return &Service{
		repo:         repo,
		storage:      storage,
		menuRepo:     menuRepo,
		allergenRepo: allergenRepo,
		broadcaster:  broadcaster,
	}
}

// --------------------------------------------------
// Start Import (CSV parses inline, images queue for OCR)
// --------------------------------------------------
func (s *Service) StartImport(
	ctx context.Context,
	restaurantID string,
	file io.Reader,
	filename string,
	contentType string,
) (*Upload, error) {

	if err := ValidateFileExtension(filename); err != nil {
		return nil, err
	}

	source, err := DetectSource(contentType, filename)
	if err != nil {
		return nil, err
	}

	switch source {
	case SourceCSV:
		rows, err := ExtractCSV(file)
		if err != nil {
			return nil, err
		}

		id, err := s.repo.CreateCSVUpload(ctx, restaurantID, rows)
		if err != nil {
			return nil, err
		}

		return s.repo.Get(ctx, id)

	case SourceImage:
		if s.storage == nil {
			return nil, errors.New("image imports not configured")
		}

		key := fmt.Sprintf(
			"imports/%s/%s%s",
			restaurantID,
			uuid.New().String(),
			strings.ToLower(filepath.Ext(filename)),
		)

		url, err := s.storage.Upload(ctx, key, file)
		if err != nil {
			return nil, err
		}

		id, err := s.repo.CreateImageUpload(ctx, restaurantID, url)
		if err != nil {
			return nil, err
		}

		return s.repo.Get(ctx, id)
	}

	return nil, errors.New("file type not allowed")
}

// --------------------------------------------------
// Preview (parsed rows before commit)
// --------------------------------------------------
func (s *Service) GetPreview(
	ctx context.Context,
	id int,
	restaurantID string,
) (*Upload, error) {

	upload, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if upload.RestaurantID != restaurantID {
		return nil, errors.New("import not found")
	}

	return upload, nil
}

// --------------------------------------------------
// Commit (sequential, progress broadcast per row)
// --------------------------------------------------
func (s *Service) Commit(
	ctx context.Context,
	id int,
	restaurantID string,
) (*Result, error) {

	upload, err := s.GetPreview(ctx, id, restaurantID)
	if err != nil {
		return nil, err
	}

	if upload.Status != StatusRowsReady {
		return nil, ErrNotReady
	}

	// Allergen catalog is fetched once per import session.
	resolver, err := s.buildResolver(ctx)
	if err != nil {
		return nil, err
	}

	committer := NewCommitter(s.menuRepo, resolver, func(percent int) {
		if s.broadcaster != nil {
			s.broadcaster.Broadcast(restaurantID, map[string]any{
				"import_id": id,
				"percent":   percent,
			})
		}
	})

	result, commitErr := committer.Commit(ctx, restaurantID, upload.Rows)
	if commitErr != nil {
		_ = s.repo.MarkFailed(ctx, id, ErrImportFailed.Error())
		return result, commitErr
	}

	if err := s.repo.MarkImported(ctx, id); err != nil {
		return result, err
	}

	return result, nil
}

func (s *Service) buildResolver(ctx context.Context) (*allergen.Resolver, error) {
	if s.allergenRepo == nil {
		return allergen.NewResolver(nil), nil
	}

	catalog, err := s.allergenRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return allergen.NewResolver(catalog), nil
}
