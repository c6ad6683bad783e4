package driven

import (
	"context"

	"github.com/lacosdigitais/lacosctl/internal/domain/model"
)

// ArticleCache defines the driven port for the local offline article
// cache. The content service replaces the cache after each successful
// fetch and reads from it when the network is unreachable.
type ArticleCache interface {
	// Replace deletes the cached set and stores articles in its place.
	Replace(ctx context.Context, articles []model.Article) error

	// List returns all cached articles, newest first.
	List(ctx context.Context) ([]model.Article, error)

	// Get returns a single cached article by ID. The second return is
	// false when the article is not cached.
	Get(ctx context.Context, id int64) (model.Article, bool, error)
}
