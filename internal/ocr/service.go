package ocr

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/log-ai-n/manassistant/internal/importer"
)

// Recognizer converts an image file into plain text.
type Recognizer func(filePath string) (string, error)

// Service drains image import sessions: download, recognize, line-parse,
// store the preview rows. Any failure marks the session FAILED with the
// generic image error; the worker itself never stops on a bad job.
type Service struct {
	repo      importer.Repository
	recognize Recognizer
}

func NewService(repo importer.Repository) *Service {
	return &Service{repo: repo, recognize: ExtractText}
}

// ProcessOne picks ONE pending image import and processes it safely
func (s *Service) ProcessOne(ctx context.Context) error {
	id, url, err := s.repo.ClaimPendingImage(ctx)
	if err != nil || id == 0 {
		// No pending jobs is NOT an error
		return nil
	}

	text, err := s.recognizeURL(ctx, id, url)
	if err != nil {
		log.Printf("OCR_FAILED id=%d err=%v", id, err)
		_ = s.repo.MarkFailed(ctx, id, importer.ErrImageProcess.Error())
		return nil // do NOT block the worker
	}

	log.Printf("OCR_DONE id=%d text_length=%d", id, len(text))

	rows := importer.ParseMenuText(text)
	return s.repo.SaveRows(ctx, id, rows)
}

// recognizeURL fetches the stored image into a temp file and runs the
// engine over it. The temp file is released on every path.
func (s *Service) recognizeURL(ctx context.Context, id int, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image fetch returned status %d", resp.StatusCode)
	}

	tmpFile, err := os.CreateTemp("", "import-*.img")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmpFile.Name())

	written, err := io.Copy(tmpFile, resp.Body)
	if err != nil || written == 0 {
		_ = tmpFile.Close()
		return "", fmt.Errorf("failed to write temp image")
	}
	_ = tmpFile.Close()

	log.Printf("OCR_PROCESSING id=%d file=%s bytes=%d", id, tmpFile.Name(), written)

	return s.recognize(tmpFile.Name())
}
