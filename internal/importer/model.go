package importer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// RawRow is an unvalidated menu item extracted from CSV or OCR text.
// It lives only between extraction and commit; it is never persisted
// as-is.
type RawRow struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       string `json:"price"`
	Allergens   string `json:"allergens"`
}

// Import session statuses.
const (
	StatusImageUploaded = "IMAGE_UPLOADED"
	StatusOCRProcessing = "OCR_PROCESSING"
	StatusRowsReady     = "ROWS_READY"
	StatusImported      = "IMPORTED"
	StatusFailed        = "FAILED"
)

var (
	ErrMissingNameColumn = errors.New("csv must include a name column")
	ErrCSVParse          = errors.New("error parsing CSV file")
	ErrImageProcess      = errors.New("failed to process image")
	ErrImportFailed      = errors.New("failed to import menu items")
	ErrNotReady          = errors.New("import is not ready to commit")
)

// Validate fails closed: a row with no name or an unparseable/negative
// price is rejected before anything is written.
func (r RawRow) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	if _, err := r.ParsePrice(); err != nil {
		return err
	}
	return nil
}

// ParsePrice returns nil for an empty price field.
func (r RawRow) ParsePrice() (*float64, error) {
	raw := strings.TrimSpace(r.Price)
	if raw == "" {
		return nil, nil
	}

	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q", raw)
	}
	if price < 0 {
		return nil, fmt.Errorf("negative price %q", raw)
	}
	return &price, nil
}
