package memory

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo       Repository
	summarizer Summarizer
}

// NewService accepts a nil summarizer; memories are then stored without
// summaries instead of failing.
func NewService(repo Repository, summarizer Summarizer) *Service {
	return &Service{repo: repo, summarizer: summarizer}
}

// --------------------------------------------------
// Record a guest memory
// --------------------------------------------------
func (s *Service) Record(ctx context.Context, restaurantID, guestName, note string) (*Memory, error) {
	guestName = strings.TrimSpace(guestName)
	note = strings.TrimSpace(note)

	if guestName == "" {
		return nil, errors.New("guest name is required")
	}
	if note == "" {
		return nil, errors.New("note is required")
	}

	memory := &Memory{
		ID:           uuid.New().String(),
		RestaurantID: restaurantID,
		GuestName:    guestName,
		Note:         note,
	}

	// A failed summary never blocks the save
	if s.summarizer != nil {
		summary, err := s.summarizer.Summarize(ctx, note)
		if err != nil {
			log.Printf("MEMORY_SUMMARY_FAILED restaurant=%s err=%v", restaurantID, err)
		} else {
			memory.Summary = strings.TrimSpace(summary)
		}
	}

	if err := s.repo.Save(ctx, memory); err != nil {
		return nil, err
	}

	return memory, nil
}

// --------------------------------------------------
// List memories
// --------------------------------------------------
func (s *Service) List(ctx context.Context, restaurantID, guestName string) ([]*Memory, error) {
	if guestName != "" {
		return s.repo.ListByGuest(ctx, restaurantID, guestName)
	}
	return s.repo.ListByRestaurant(ctx, restaurantID)
}

// --------------------------------------------------
// Delete a memory
// --------------------------------------------------
func (s *Service) Delete(ctx context.Context, restaurantID, memoryID string) error {
	return s.repo.Delete(ctx, restaurantID, memoryID)
}
