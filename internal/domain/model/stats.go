package model

// InstitutionStats is the engagement dashboard data for a partner
// institution's published articles.
type InstitutionStats struct {
	Overview     StatsOverview
	ByCategory   []CategoryStats
	TopArticles  []TopArticle
	MonthlyViews []MonthlyViews
}

// StatsOverview aggregates totals across all of an institution's articles.
type StatsOverview struct {
	TotalArticles      int
	TotalViews         int
	AvgViewsPerArticle int
}

// CategoryStats is the article count and view total for one category.
type CategoryStats struct {
	Category ArticleCategory
	Count    int
	Views    int
}

// TopArticle is one entry in the most-viewed ranking.
type TopArticle struct {
	ID       int64
	Title    string
	Category ArticleCategory
	Views    int
}

// MonthlyViews is the view count for one calendar month.
type MonthlyViews struct {
	Month string
	Views int
}
