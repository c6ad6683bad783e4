package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/lacosdigitais/lacosctl/internal/domain/model"
)

// statsBody is the envelope for the institution stats endpoint.
type statsBody struct {
	Success bool      `json:"success"`
	Data    statsJSON `json:"data"`
}

type statsJSON struct {
	Overview struct {
		TotalArticles      int `json:"totalArticles"`
		TotalViews         int `json:"totalViews"`
		AvgViewsPerArticle int `json:"avgViewsPerArticle"`
	} `json:"overview"`
	ArticlesByCategory []struct {
		Category string `json:"category"`
		Count    int    `json:"count"`
		Views    int    `json:"views"`
	} `json:"articlesByCategory"`
	TopArticles []struct {
		ID       int64  `json:"id"`
		Title    string `json:"title"`
		Category string `json:"category"`
		Views    int    `json:"views"`
	} `json:"topArticles"`
	MonthlyViews []struct {
		Month string  `json:"month"`
		Views flexInt `json:"views"`
	} `json:"monthlyViews"`
}

// flexInt decodes a JSON number or a numeric string. The stats endpoint
// has been observed serving monthly view counts both ways.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexInt(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("flexInt: %s is neither number nor string", data)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("flexInt: parse %q: %w", s, err)
	}
	*f = flexInt(n)
	return nil
}

// articleDraftJSON is the request body for submitting or editing an article.
type articleDraftJSON struct {
	Title    string `json:"title"`
	Authors  string `json:"authors"`
	Summary  string `json:"summary"`
	Category string `json:"category"`
	URL      string `json:"url"`
	Keywords string `json:"keywords"`
}

// Stats returns the institution's engagement dashboard data.
func (c *Client) Stats(ctx context.Context) (model.InstitutionStats, error) {
	var body statsBody
	if err := c.get(ctx, "/institution/stats", &body); err != nil {
		return model.InstitutionStats{}, fmt.Errorf("fetching institution stats: %w", err)
	}

	stats := model.InstitutionStats{
		Overview: model.StatsOverview{
			TotalArticles:      body.Data.Overview.TotalArticles,
			TotalViews:         body.Data.Overview.TotalViews,
			AvgViewsPerArticle: body.Data.Overview.AvgViewsPerArticle,
		},
	}
	for _, cs := range body.Data.ArticlesByCategory {
		stats.ByCategory = append(stats.ByCategory, model.CategoryStats{
			Category: model.ArticleCategory(cs.Category),
			Count:    cs.Count,
			Views:    cs.Views,
		})
	}
	for _, top := range body.Data.TopArticles {
		stats.TopArticles = append(stats.TopArticles, model.TopArticle{
			ID:       top.ID,
			Title:    top.Title,
			Category: model.ArticleCategory(top.Category),
			Views:    top.Views,
		})
	}
	for _, mv := range body.Data.MonthlyViews {
		stats.MonthlyViews = append(stats.MonthlyViews, model.MonthlyViews{
			Month: mv.Month,
			Views: int(mv.Views),
		})
	}

	return stats, nil
}

// OwnArticles lists the institution's own submissions.
func (c *Client) OwnArticles(ctx context.Context, status model.ArticleStatus) ([]model.Article, error) {
	path := "/institution/articles"
	if status != "" {
		path += "?status=" + url.QueryEscape(string(status))
	}

	var body articleListBody
	if err := c.get(ctx, path, &body); err != nil {
		return nil, fmt.Errorf("listing institution articles: %w", err)
	}

	articles := make([]model.Article, 0, len(body.Data))
	for _, a := range body.Data {
		articles = append(articles, mapArticle(a))
	}
	return articles, nil
}

// SubmitArticle submits a new publication for moderation.
func (c *Client) SubmitArticle(ctx context.Context, draft model.ArticleDraft) (model.Article, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/institution/articles", mapDraft(draft))
	if err != nil {
		return model.Article{}, err
	}

	var body articleBody
	if err := c.do(req, &body); err != nil {
		return model.Article{}, fmt.Errorf("submitting article: %w", err)
	}
	return mapArticle(body.Data), nil
}

// UpdateArticle edits an existing submission.
func (c *Client) UpdateArticle(ctx context.Context, id int64, draft model.ArticleDraft) (model.Article, error) {
	req, err := c.newRequest(ctx, http.MethodPut, "/institution/articles/"+strconv.FormatInt(id, 10), mapDraft(draft))
	if err != nil {
		return model.Article{}, err
	}

	var body articleBody
	if err := c.do(req, &body); err != nil {
		return model.Article{}, fmt.Errorf("updating article %d: %w", id, err)
	}
	return mapArticle(body.Data), nil
}

// DeleteArticle removes a submission.
func (c *Client) DeleteArticle(ctx context.Context, id int64) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/institution/articles/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return err
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("deleting article %d: %w", id, err)
	}
	return nil
}

func mapDraft(d model.ArticleDraft) articleDraftJSON {
	return articleDraftJSON{
		Title:    d.Title,
		Authors:  d.Authors,
		Summary:  d.Summary,
		Category: string(d.Category),
		URL:      d.URL,
		Keywords: d.Keywords,
	}
}
