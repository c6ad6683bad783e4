package model

import "time"

// ArticleStatus is the moderation state of a submitted article.
type ArticleStatus string

const (
	ArticleStatusPending  ArticleStatus = "pending"
	ArticleStatusApproved ArticleStatus = "approved"
	ArticleStatusRejected ArticleStatus = "rejected"
)

// ArticleCategory groups articles by their subject area.
type ArticleCategory string

const (
	CategoryResearch   ArticleCategory = "pesquisa"
	CategoryPrevention ArticleCategory = "prevencao"
	CategoryTreatment  ArticleCategory = "tratamento"
)

// Article is a publication hosted on the platform. Summary is markdown
// as served by the API; callers needing HTML or terminal text should go
// through the content package.
type Article struct {
	ID              int64
	Title           string
	Authors         string
	Summary         string
	Category        ArticleCategory
	URL             string
	Keywords        string
	Status          ArticleStatus
	Views           int
	RejectionReason string
	CreatedAt       time.Time
}

// ArticleDraft is the writable subset of an article used when an
// institution submits or edits a publication. Status, views, and
// moderation fields are server-assigned.
type ArticleDraft struct {
	Title    string
	Authors  string
	Summary  string
	Category ArticleCategory
	URL      string
	Keywords string
}
