package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lacosdigitais/lacosctl/internal/domain/model"
	"github.com/lacosdigitais/lacosctl/internal/domain/port/driven"
)

// ContentService serves platform content with an offline fallback: each
// successful unfiltered fetch refreshes the local cache, and a network
// failure answers from the cache instead of erroring out.
type ContentService struct {
	api    driven.ContentAPI
	cache  driven.ArticleCache
	logger *slog.Logger
}

// NewContentService creates a ContentService.
func NewContentService(api driven.ContentAPI, cache driven.ArticleCache, logger *slog.Logger) *ContentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContentService{api: api, cache: cache, logger: logger}
}

// Articles lists articles from the platform, filtered by status when
// non-empty. Unfiltered results refresh the offline cache; on a
// transport failure the cached copy is returned (filtered client-side).
func (s *ContentService) Articles(ctx context.Context, status model.ArticleStatus) ([]model.Article, error) {
	articles, err := s.api.Articles(ctx, status)
	if err != nil {
		var transportErr *model.TransportError
		if !errors.As(err, &transportErr) {
			return nil, err
		}

		s.logger.Warn("article fetch failed, serving offline cache", "error", err)
		cached, cacheErr := s.cache.List(ctx)
		if cacheErr != nil {
			return nil, fmt.Errorf("offline cache after transport failure: %w", cacheErr)
		}
		return filterByStatus(cached, status), nil
	}

	if status == "" {
		if err := s.cache.Replace(ctx, articles); err != nil {
			s.logger.Error("refresh article cache", "error", err)
		}
	}
	return articles, nil
}

// Article fetches one article, falling back to the offline cache on a
// transport failure.
func (s *ContentService) Article(ctx context.Context, id int64) (model.Article, error) {
	article, err := s.api.Article(ctx, id)
	if err != nil {
		var transportErr *model.TransportError
		if !errors.As(err, &transportErr) {
			return model.Article{}, err
		}

		s.logger.Warn("article fetch failed, trying offline cache", "id", id, "error", err)
		cached, ok, cacheErr := s.cache.Get(ctx, id)
		if cacheErr != nil {
			return model.Article{}, fmt.Errorf("offline cache after transport failure: %w", cacheErr)
		}
		if !ok {
			return model.Article{}, err
		}
		return cached, nil
	}
	return article, nil
}

// Quizzes lists the available questionnaires. Quizzes are not cached
// locally; they are only meaningful with a reachable server.
func (s *ContentService) Quizzes(ctx context.Context) ([]model.Quiz, error) {
	return s.api.Quizzes(ctx)
}

func filterByStatus(articles []model.Article, status model.ArticleStatus) []model.Article {
	if status == "" {
		return articles
	}
	filtered := make([]model.Article, 0, len(articles))
	for _, a := range articles {
		if a.Status == status {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
