package driven

import (
	"context"

	"github.com/lacosdigitais/lacosctl/internal/domain/model"
)

// InstitutionAPI defines the driven port for the authenticated partner
// institution endpoints (publication management and engagement stats).
type InstitutionAPI interface {
	// Stats returns the institution's engagement dashboard data.
	Stats(ctx context.Context) (model.InstitutionStats, error)

	// OwnArticles lists the institution's own submissions, optionally
	// filtered by moderation status.
	OwnArticles(ctx context.Context, status model.ArticleStatus) ([]model.Article, error)

	// SubmitArticle submits a new publication for moderation. The
	// returned article starts in pending status with zero views.
	SubmitArticle(ctx context.Context, draft model.ArticleDraft) (model.Article, error)

	// UpdateArticle edits an existing submission.
	UpdateArticle(ctx context.Context, id int64, draft model.ArticleDraft) (model.Article, error)

	// DeleteArticle removes a submission.
	DeleteArticle(ctx context.Context, id int64) error
}
