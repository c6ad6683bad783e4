package application

import (
	"context"
	"strings"

	"github.com/lacosdigitais/lacosctl/internal/domain/model"
	"github.com/lacosdigitais/lacosctl/internal/domain/port/driven"
)

// DiaryService manages the local-only progress diary. Entries belong to
// the signed-in user and never leave the device.
type DiaryService struct {
	store driven.DiaryStore
}

// NewDiaryService creates a DiaryService.
func NewDiaryService(store driven.DiaryStore) *DiaryService {
	return &DiaryService{store: store}
}

// AddEntry validates and stores a new diary entry.
func (s *DiaryService) AddEntry(ctx context.Context, entry model.DiaryEntry) (model.DiaryEntry, error) {
	if strings.TrimSpace(entry.Username) == "" {
		return model.DiaryEntry{}, &model.ValidationError{Field: "username", Message: "username is required"}
	}
	if entry.Mood < 1 || entry.Mood > 5 {
		return model.DiaryEntry{}, &model.ValidationError{Field: "mood", Message: "mood must be between 1 and 5"}
	}
	if entry.ScreenTimeMinutes < 0 {
		return model.DiaryEntry{}, &model.ValidationError{Field: "screen_time", Message: "screen time cannot be negative"}
	}

	return s.store.Add(ctx, entry)
}

// Entries returns a user's diary entries, newest first.
func (s *DiaryService) Entries(ctx context.Context, username string) ([]model.DiaryEntry, error) {
	return s.store.ListByUser(ctx, username)
}

// DeleteEntry removes an entry by ID.
func (s *DiaryService) DeleteEntry(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}
