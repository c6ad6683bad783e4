package driven

import (
	"context"

	"github.com/lacosdigitais/lacosctl/internal/domain/model"
)

// DiaryStore defines the driven port for the local progress diary.
// Entries are keyed by username and never synchronized to the server.
type DiaryStore interface {
	// Add inserts a new entry and returns it with its assigned ID.
	Add(ctx context.Context, entry model.DiaryEntry) (model.DiaryEntry, error)

	// ListByUser returns a user's entries, newest first.
	ListByUser(ctx context.Context, username string) ([]model.DiaryEntry, error)

	// Delete removes an entry by ID. Deleting an absent entry is not
	// an error.
	Delete(ctx context.Context, id int64) error
}
