package driven

import (
	"context"

	"github.com/lacosdigitais/lacosctl/internal/domain/model"
)

// ContentAPI defines the driven port for the platform's public content
// endpoints.
type ContentAPI interface {
	// Articles lists published articles. status filters by moderation
	// state when non-empty.
	Articles(ctx context.Context, status model.ArticleStatus) ([]model.Article, error)

	// Article fetches a single article by ID.
	Article(ctx context.Context, id int64) (model.Article, error)

	// Quizzes lists the available self-assessment questionnaires.
	Quizzes(ctx context.Context) ([]model.Quiz, error)
}
