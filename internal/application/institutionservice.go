package application

import (
	"context"
	"strings"

	"github.com/lacosdigitais/lacosctl/internal/domain/model"
	"github.com/lacosdigitais/lacosctl/internal/domain/port/driven"
)

// InstitutionService fronts the partner institution endpoints, running
// submission drafts through pre-flight validation so malformed input
// never reaches the network.
type InstitutionService struct {
	api driven.InstitutionAPI
}

// NewInstitutionService creates an InstitutionService.
func NewInstitutionService(api driven.InstitutionAPI) *InstitutionService {
	return &InstitutionService{api: api}
}

// Stats returns the institution's engagement dashboard data.
func (s *InstitutionService) Stats(ctx context.Context) (model.InstitutionStats, error) {
	return s.api.Stats(ctx)
}

// OwnArticles lists the institution's submissions.
func (s *InstitutionService) OwnArticles(ctx context.Context, status model.ArticleStatus) ([]model.Article, error) {
	return s.api.OwnArticles(ctx, status)
}

// Submit validates a draft and submits it for moderation.
func (s *InstitutionService) Submit(ctx context.Context, draft model.ArticleDraft) (model.Article, error) {
	if err := validateDraft(draft); err != nil {
		return model.Article{}, err
	}
	return s.api.SubmitArticle(ctx, draft)
}

// Update validates a draft and applies it to an existing submission.
func (s *InstitutionService) Update(ctx context.Context, id int64, draft model.ArticleDraft) (model.Article, error) {
	if err := validateDraft(draft); err != nil {
		return model.Article{}, err
	}
	return s.api.UpdateArticle(ctx, id, draft)
}

// Delete removes a submission.
func (s *InstitutionService) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteArticle(ctx, id)
}

func validateDraft(draft model.ArticleDraft) error {
	if strings.TrimSpace(draft.Title) == "" {
		return &model.ValidationError{Field: "title", Message: "title is required"}
	}
	if strings.TrimSpace(draft.Authors) == "" {
		return &model.ValidationError{Field: "authors", Message: "authors is required"}
	}
	switch draft.Category {
	case model.CategoryResearch, model.CategoryPrevention, model.CategoryTreatment:
	default:
		return &model.ValidationError{Field: "category", Message: "category must be pesquisa, prevencao, or tratamento"}
	}
	return nil
}
