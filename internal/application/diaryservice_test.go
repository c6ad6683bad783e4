package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacosdigitais/lacosctl/internal/domain/model"
)

// fakeDiaryStore implements driven.DiaryStore in memory.
type fakeDiaryStore struct {
	entries []model.DiaryEntry
	nextID  int64
}

func (f *fakeDiaryStore) Add(_ context.Context, entry model.DiaryEntry) (model.DiaryEntry, error) {
	f.nextID++
	entry.ID = f.nextID
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeDiaryStore) ListByUser(_ context.Context, username string) ([]model.DiaryEntry, error) {
	var out []model.DiaryEntry
	for _, e := range f.entries {
		if e.Username == username {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeDiaryStore) Delete(_ context.Context, id int64) error {
	for i, e := range f.entries {
		if e.ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestDiaryService_AddEntry(t *testing.T) {
	svc := NewDiaryService(&fakeDiaryStore{})

	entry, err := svc.AddEntry(context.Background(), model.DiaryEntry{
		Username:          "tester1",
		Mood:              3,
		ScreenTimeMinutes: 120,
	})
	require.NoError(t, err)
	assert.NotZero(t, entry.ID)
}

func TestDiaryService_AddEntryValidation(t *testing.T) {
	svc := NewDiaryService(&fakeDiaryStore{})
	ctx := context.Background()

	tests := []struct {
		name      string
		entry     model.DiaryEntry
		wantField string
	}{
		{"missing username", model.DiaryEntry{Mood: 3}, "username"},
		{"mood too low", model.DiaryEntry{Username: "tester1", Mood: 0}, "mood"},
		{"mood too high", model.DiaryEntry{Username: "tester1", Mood: 6}, "mood"},
		{"negative screen time", model.DiaryEntry{Username: "tester1", Mood: 3, ScreenTimeMinutes: -1}, "screen_time"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddEntry(ctx, tt.entry)
			require.Error(t, err)

			var valErr *model.ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, tt.wantField, valErr.Field)
		})
	}
}

func TestDiaryService_EntriesScopedToUser(t *testing.T) {
	store := &fakeDiaryStore{}
	svc := NewDiaryService(store)
	ctx := context.Background()

	_, err := svc.AddEntry(ctx, model.DiaryEntry{Username: "tester1", Mood: 4})
	require.NoError(t, err)
	_, err = svc.AddEntry(ctx, model.DiaryEntry{Username: "other", Mood: 2})
	require.NoError(t, err)

	entries, err := svc.Entries(ctx, "tester1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "tester1", entries[0].Username)
}
