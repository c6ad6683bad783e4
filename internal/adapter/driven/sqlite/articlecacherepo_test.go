package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacosdigitais/lacosctl/internal/domain/model"
)

func testArticle(id int64, title string, createdAt time.Time) model.Article {
	return model.Article{
		ID:        id,
		Title:     title,
		Authors:   "Silva, J.; Souza, M.",
		Summary:   "## Resumo\n\nUm resumo curto.",
		Category:  model.CategoryPrevention,
		URL:       "https://example.org/artigo",
		Keywords:  "redes sociais, adolescentes",
		Status:    model.ArticleStatusApproved,
		Views:     42,
		CreatedAt: createdAt,
	}
}

func TestArticleCacheRepo_ReplaceAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleCacheRepo(db)
	ctx := context.Background()

	older := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

	err := repo.Replace(ctx, []model.Article{
		testArticle(1, "Artigo antigo", older),
		testArticle(2, "Artigo novo", newer),
	})
	require.NoError(t, err)

	articles, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 2)

	// Newest first.
	assert.Equal(t, int64(2), articles[0].ID)
	assert.Equal(t, int64(1), articles[1].ID)
	assert.Equal(t, "Artigo novo", articles[0].Title)
	assert.Equal(t, model.CategoryPrevention, articles[0].Category)
	assert.Equal(t, model.ArticleStatusApproved, articles[0].Status)
	assert.True(t, articles[0].CreatedAt.Equal(newer))
}

func TestArticleCacheRepo_ReplaceSwapsWholeSet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleCacheRepo(db)
	ctx := context.Background()

	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

	err := repo.Replace(ctx, []model.Article{
		testArticle(1, "Primeiro", now),
		testArticle(2, "Segundo", now),
	})
	require.NoError(t, err)

	err = repo.Replace(ctx, []model.Article{
		testArticle(3, "Terceiro", now),
	})
	require.NoError(t, err)

	articles, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, int64(3), articles[0].ID)
}

func TestArticleCacheRepo_ReplaceEmptyClears(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleCacheRepo(db)
	ctx := context.Background()

	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

	err := repo.Replace(ctx, []model.Article{testArticle(1, "Primeiro", now)})
	require.NoError(t, err)

	err = repo.Replace(ctx, nil)
	require.NoError(t, err)

	articles, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, articles)
}

func TestArticleCacheRepo_Get(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleCacheRepo(db)
	ctx := context.Background()

	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	want := testArticle(7, "Procurado", now)
	want.RejectionReason = "fora do escopo"
	want.Status = model.ArticleStatusRejected

	err := repo.Replace(ctx, []model.Article{want})
	require.NoError(t, err)

	got, found, err := repo.Get(ctx, 7)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, want.Title, got.Title)
	assert.Equal(t, want.RejectionReason, got.RejectionReason)
	assert.Equal(t, model.ArticleStatusRejected, got.Status)
}

func TestArticleCacheRepo_GetMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleCacheRepo(db)
	ctx := context.Background()

	_, found, err := repo.Get(ctx, 999)
	require.NoError(t, err)
	assert.False(t, found)
}
