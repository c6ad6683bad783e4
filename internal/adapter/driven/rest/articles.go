package rest

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/lacosdigitais/lacosctl/internal/domain/model"
)

// articleJSON is the platform's article object.
type articleJSON struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Authors         string  `json:"authors"`
	Summary         string  `json:"summary"`
	Category        string  `json:"category"`
	URL             string  `json:"url"`
	Keywords        string  `json:"keywords"`
	Status          string  `json:"status"`
	Views           int     `json:"views"`
	CreatedAt       string  `json:"created_at"`
	RejectionReason *string `json:"rejection_reason"`
}

// quizJSON is the platform's quiz object.
type quizJSON struct {
	ID          int64              `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Questions   []quizQuestionJSON `json:"questions"`
	CreatedAt   string             `json:"created_at"`
}

type quizQuestionJSON struct {
	ID      int64    `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// articleListBody is the envelope for article list endpoints.
type articleListBody struct {
	Success bool          `json:"success"`
	Data    []articleJSON `json:"data"`
}

// articleBody is the envelope for single-article endpoints.
type articleBody struct {
	Success bool        `json:"success"`
	Data    articleJSON `json:"data"`
}

// quizListBody is the envelope for the quiz list endpoint.
type quizListBody struct {
	Success bool       `json:"success"`
	Data    []quizJSON `json:"data"`
}

// Articles lists published articles, optionally filtered by moderation status.
func (c *Client) Articles(ctx context.Context, status model.ArticleStatus) ([]model.Article, error) {
	path := "/articles"
	if status != "" {
		path += "?status=" + url.QueryEscape(string(status))
	}

	var body articleListBody
	if err := c.get(ctx, path, &body); err != nil {
		return nil, fmt.Errorf("listing articles: %w", err)
	}

	articles := make([]model.Article, 0, len(body.Data))
	for _, a := range body.Data {
		articles = append(articles, mapArticle(a))
	}
	return articles, nil
}

// Article fetches a single article by ID.
func (c *Client) Article(ctx context.Context, id int64) (model.Article, error) {
	var body articleBody
	if err := c.get(ctx, "/articles/"+strconv.FormatInt(id, 10), &body); err != nil {
		return model.Article{}, fmt.Errorf("fetching article %d: %w", id, err)
	}
	return mapArticle(body.Data), nil
}

// Quizzes lists the available self-assessment questionnaires.
func (c *Client) Quizzes(ctx context.Context) ([]model.Quiz, error) {
	var body quizListBody
	if err := c.get(ctx, "/quizzes", &body); err != nil {
		return nil, fmt.Errorf("listing quizzes: %w", err)
	}

	quizzes := make([]model.Quiz, 0, len(body.Data))
	for _, q := range body.Data {
		quizzes = append(quizzes, mapQuiz(q))
	}
	return quizzes, nil
}

// mapArticle converts a platform article object to the domain model.
func mapArticle(a articleJSON) model.Article {
	article := model.Article{
		ID:        a.ID,
		Title:     a.Title,
		Authors:   a.Authors,
		Summary:   a.Summary,
		Category:  model.ArticleCategory(a.Category),
		URL:       a.URL,
		Keywords:  a.Keywords,
		Status:    model.ArticleStatus(a.Status),
		Views:     a.Views,
		CreatedAt: parseAPITime(a.CreatedAt),
	}
	if a.RejectionReason != nil {
		article.RejectionReason = *a.RejectionReason
	}
	return article
}

// mapQuiz converts a platform quiz object to the domain model.
func mapQuiz(q quizJSON) model.Quiz {
	questions := make([]model.QuizQuestion, 0, len(q.Questions))
	for _, question := range q.Questions {
		questions = append(questions, model.QuizQuestion{
			ID:      question.ID,
			Text:    question.Text,
			Options: question.Options,
		})
	}

	return model.Quiz{
		ID:          q.ID,
		Title:       q.Title,
		Description: q.Description,
		Questions:   questions,
		CreatedAt:   parseAPITime(q.CreatedAt),
	}
}

// parseAPITime parses the platform's ISO 8601 timestamps. Unparseable or
// empty values map to the zero time rather than failing the whole payload.
func parseAPITime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, format := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.000Z"} {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
