// Package mock implements the platform API ports entirely in-process,
// for running the client without a reachable backend. It is selected
// only by an explicit configuration flag (LACOS_OFFLINE), never
// silently.
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lacosdigitais/lacosctl/internal/domain/model"
	"github.com/lacosdigitais/lacosctl/internal/domain/port/driven"
)

// Fixed credentials accepted by the offline backend.
const (
	TestUsername     = "tester1"
	TestPassword     = "teste123"
	TestRegistration = "20231234"
)

// Compile-time interface satisfaction checks.
var (
	_ driven.AuthAPI        = (*API)(nil)
	_ driven.ContentAPI     = (*API)(nil)
	_ driven.InstitutionAPI = (*API)(nil)
)

// API is the offline implementation of the platform ports, backed by
// fixture data. Article submissions mutate in-memory state so the
// institution flows are exercisable end to end within one process.
type API struct {
	mu       sync.Mutex
	articles []model.Article
	nextID   int64
}

// NewAPI creates an offline API pre-loaded with fixture articles.
func NewAPI() *API {
	return &API{
		articles: fixtureArticles(),
		nextID:   100,
	}
}

// Register accepts any well-formed credentials and issues a canned token.
func (a *API) Register(_ context.Context, username, _ string) (model.Principal, string, error) {
	return model.Principal{ID: 1, DisplayName: username, Kind: model.PrincipalKindUser}, "offline-token-user", nil
}

// Login accepts only the fixed offline credentials.
func (a *API) Login(_ context.Context, username, password string) (model.Principal, string, error) {
	if username != TestUsername || password != TestPassword {
		return model.Principal{}, "", &model.AuthError{Kind: model.AuthErrorInvalidCredentials, Message: "invalid credentials"}
	}
	return model.Principal{ID: 1, DisplayName: username, Kind: model.PrincipalKindUser}, "offline-token-user", nil
}

// InstitutionLogin accepts only the fixed offline registration number.
func (a *API) InstitutionLogin(_ context.Context, registration, password string) (model.Principal, string, error) {
	if registration != TestRegistration || password != TestPassword {
		return model.Principal{}, "", &model.AuthError{Kind: model.AuthErrorInvalidCredentials, Message: "registration or password incorrect"}
	}
	return model.Principal{
		ID:          1,
		DisplayName: "UNINASSAU - Instituição de Teste",
		Kind:        model.PrincipalKindInstitution,
	}, "offline-token-institution", nil
}

// Verify always succeeds offline.
func (a *API) Verify(context.Context) error {
	return nil
}

// Articles lists fixture articles, optionally filtered by status.
func (a *API) Articles(_ context.Context, status model.ArticleStatus) ([]model.Article, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]model.Article, 0, len(a.articles))
	for _, article := range a.articles {
		if status == "" || article.Status == status {
			out = append(out, article)
		}
	}
	return out, nil
}

// Article fetches a fixture article by ID.
func (a *API) Article(_ context.Context, id int64) (model.Article, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, article := range a.articles {
		if article.ID == id {
			return article, nil
		}
	}
	return model.Article{}, fmt.Errorf("article %d not found", id)
}

// Quizzes lists the fixture questionnaires.
func (a *API) Quizzes(context.Context) ([]model.Quiz, error) {
	return fixtureQuizzes(), nil
}

// Stats derives dashboard numbers from the current article set.
func (a *API) Stats(context.Context) (model.InstitutionStats, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	stats := model.InstitutionStats{
		MonthlyViews: []model.MonthlyViews{
			{Month: "Out", Views: 400},
			{Month: "Nov", Views: 650},
			{Month: "Dez", Views: 800},
		},
	}

	perCategory := map[model.ArticleCategory]*model.CategoryStats{}
	var order []model.ArticleCategory
	for _, article := range a.articles {
		stats.Overview.TotalArticles++
		stats.Overview.TotalViews += article.Views

		cs, ok := perCategory[article.Category]
		if !ok {
			cs = &model.CategoryStats{Category: article.Category}
			perCategory[article.Category] = cs
			order = append(order, article.Category)
		}
		cs.Count++
		cs.Views += article.Views

		if article.Views > 0 {
			stats.TopArticles = append(stats.TopArticles, model.TopArticle{
				ID:       article.ID,
				Title:    article.Title,
				Category: article.Category,
				Views:    article.Views,
			})
		}
	}

	for _, category := range order {
		stats.ByCategory = append(stats.ByCategory, *perCategory[category])
	}
	if stats.Overview.TotalArticles > 0 {
		stats.Overview.AvgViewsPerArticle = stats.Overview.TotalViews / stats.Overview.TotalArticles
	}

	return stats, nil
}

// OwnArticles is the institution view of the fixture set.
func (a *API) OwnArticles(ctx context.Context, status model.ArticleStatus) ([]model.Article, error) {
	return a.Articles(ctx, status)
}

// SubmitArticle appends a pending submission to the in-memory set.
func (a *API) SubmitArticle(_ context.Context, draft model.ArticleDraft) (model.Article, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.nextID++
	article := model.Article{
		ID:        a.nextID,
		Title:     draft.Title,
		Authors:   draft.Authors,
		Summary:   draft.Summary,
		Category:  draft.Category,
		URL:       draft.URL,
		Keywords:  draft.Keywords,
		Status:    model.ArticleStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	a.articles = append([]model.Article{article}, a.articles...)
	return article, nil
}

// UpdateArticle edits an existing submission in place.
func (a *API) UpdateArticle(_ context.Context, id int64, draft model.ArticleDraft) (model.Article, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i, article := range a.articles {
		if article.ID != id {
			continue
		}
		article.Title = draft.Title
		article.Authors = draft.Authors
		article.Summary = draft.Summary
		article.Category = draft.Category
		article.URL = draft.URL
		article.Keywords = draft.Keywords
		a.articles[i] = article
		return article, nil
	}
	return model.Article{}, fmt.Errorf("article %d not found", id)
}

// DeleteArticle removes a submission.
func (a *API) DeleteArticle(_ context.Context, id int64) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i, article := range a.articles {
		if article.ID == id {
			a.articles = append(a.articles[:i], a.articles[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("article %d not found", id)
}
