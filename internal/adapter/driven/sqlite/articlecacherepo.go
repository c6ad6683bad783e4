package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lacosdigitais/lacosctl/internal/domain/model"
	"github.com/lacosdigitais/lacosctl/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.ArticleCache = (*ArticleCacheRepo)(nil)

// ArticleCacheRepo is the SQLite implementation of the ArticleCache port
// interface. It mirrors the last successfully fetched article list so
// content stays readable offline.
type ArticleCacheRepo struct {
	db *DB
}

// NewArticleCacheRepo creates a new ArticleCacheRepo backed by the given DB.
func NewArticleCacheRepo(db *DB) *ArticleCacheRepo {
	return &ArticleCacheRepo{db: db}
}

// Replace deletes the cached set and stores articles in its place. The
// swap runs in a single transaction so readers never observe a partially
// replaced cache.
func (r *ArticleCacheRepo) Replace(ctx context.Context, articles []model.Article) error {
	tx, err := r.db.Writer.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace cache: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cached_articles`); err != nil {
		return fmt.Errorf("clear article cache: %w", err)
	}

	const insert = `INSERT INTO cached_articles
		(id, title, authors, summary, category, url, keywords, status, views, rejection_reason, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	for _, a := range articles {
		_, err := tx.ExecContext(ctx, insert,
			a.ID, a.Title, a.Authors, a.Summary, string(a.Category), a.URL,
			a.Keywords, string(a.Status), a.Views, a.RejectionReason,
			a.CreatedAt.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("cache article %d: %w", a.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace cache: %w", err)
	}
	return nil
}

// List returns all cached articles, newest first.
func (r *ArticleCacheRepo) List(ctx context.Context) ([]model.Article, error) {
	const query = `SELECT id, title, authors, summary, category, url, keywords, status, views, rejection_reason, created_at
		FROM cached_articles ORDER BY created_at DESC`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list cached articles: %w", err)
	}
	defer rows.Close()

	var articles []model.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cached articles: %w", err)
	}

	return articles, nil
}

// Get returns a single cached article by ID.
func (r *ArticleCacheRepo) Get(ctx context.Context, id int64) (model.Article, bool, error) {
	const query = `SELECT id, title, authors, summary, category, url, keywords, status, views, rejection_reason, created_at
		FROM cached_articles WHERE id = ?`

	row := r.db.Reader.QueryRowContext(ctx, query, id)
	a, err := scanArticle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Article{}, false, nil
	}
	if err != nil {
		return model.Article{}, false, err
	}
	return a, true, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(row rowScanner) (model.Article, error) {
	var a model.Article
	var category, status, createdAt string

	err := row.Scan(&a.ID, &a.Title, &a.Authors, &a.Summary, &category, &a.URL,
		&a.Keywords, &status, &a.Views, &a.RejectionReason, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Article{}, err
		}
		return model.Article{}, fmt.Errorf("scan cached article: %w", err)
	}

	a.Category = model.ArticleCategory(category)
	a.Status = model.ArticleStatus(status)
	a.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return model.Article{}, fmt.Errorf("parse created_at for article %d: %w", a.ID, err)
	}

	return a, nil
}
