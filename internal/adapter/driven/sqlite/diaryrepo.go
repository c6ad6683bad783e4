package sqlite

import (
	"context"
	"fmt"

	"github.com/lacosdigitais/lacosctl/internal/domain/model"
	"github.com/lacosdigitais/lacosctl/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.DiaryStore = (*DiaryRepo)(nil)

// DiaryRepo is the SQLite implementation of the DiaryStore port interface.
type DiaryRepo struct {
	db *DB
}

// NewDiaryRepo creates a new DiaryRepo backed by the given DB.
func NewDiaryRepo(db *DB) *DiaryRepo {
	return &DiaryRepo{db: db}
}

// Add inserts a new entry and returns it with its assigned ID and
// creation timestamp.
func (r *DiaryRepo) Add(ctx context.Context, entry model.DiaryEntry) (model.DiaryEntry, error) {
	const query = `INSERT INTO diary_entries (username, mood, screen_time_minutes, note)
		VALUES (?, ?, ?, ?) RETURNING id, created_at`

	var createdAt string
	err := r.db.Writer.QueryRowContext(ctx, query,
		entry.Username, entry.Mood, entry.ScreenTimeMinutes, entry.Note,
	).Scan(&entry.ID, &createdAt)
	if err != nil {
		return model.DiaryEntry{}, fmt.Errorf("add diary entry for %q: %w", entry.Username, err)
	}

	entry.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return model.DiaryEntry{}, fmt.Errorf("parse created_at for diary entry %d: %w", entry.ID, err)
	}

	return entry, nil
}

// ListByUser returns a user's entries, newest first.
func (r *DiaryRepo) ListByUser(ctx context.Context, username string) ([]model.DiaryEntry, error) {
	const query = `SELECT id, username, mood, screen_time_minutes, note, created_at
		FROM diary_entries WHERE username = ? ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Reader.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("list diary entries for %q: %w", username, err)
	}
	defer rows.Close()

	var entries []model.DiaryEntry
	for rows.Next() {
		var e model.DiaryEntry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Username, &e.Mood, &e.ScreenTimeMinutes, &e.Note, &createdAt); err != nil {
			return nil, fmt.Errorf("scan diary entry: %w", err)
		}
		e.CreatedAt, err = parseTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at for diary entry %d: %w", e.ID, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate diary entries: %w", err)
	}

	return entries, nil
}

// Delete removes an entry by ID. No-op if the entry does not exist.
func (r *DiaryRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM diary_entries WHERE id = ?`
	_, err := r.db.Writer.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete diary entry %d: %w", id, err)
	}
	return nil
}
