// Package fixtures provides reusable test data generators.
// It keeps article literals out of individual test files so every suite
// builds catalogs the same way.
package fixtures

import (
	"fmt"
	"time"

	"news-app/internal/domain/entity"
)

// BaseTime is the default timestamp for generated articles.
var BaseTime = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

// ArticleOption is a functional option for customizing test articles.
type ArticleOption func(*entity.Article)

// NewTestArticle creates a valid Article with sensible defaults.
// Use functional options to customize the article for specific test cases.
//
// Example:
//
//	article := NewTestArticle()
//	article := NewTestArticle(WithID(7), WithCategory("Sports"))
func NewTestArticle(opts ...ArticleOption) entity.Article {
	a := entity.Article{
		ID:        1,
		Headline:  "Test Headline",
		Summary:   "Test summary for a generated article.",
		Category:  "Technology",
		Timestamp: BaseTime,
		Image:     "https://example.com/images/1.png",
	}

	for _, opt := range opts {
		opt(&a)
	}

	return a
}

// WithID sets the ID of the article.
func WithID(id int64) ArticleOption {
	return func(a *entity.Article) {
		a.ID = id
	}
}

// WithHeadline sets the headline of the article.
func WithHeadline(headline string) ArticleOption {
	return func(a *entity.Article) {
		a.Headline = headline
	}
}

// WithSummary sets the summary of the article.
func WithSummary(summary string) ArticleOption {
	return func(a *entity.Article) {
		a.Summary = summary
	}
}

// WithCategory sets the category of the article.
func WithCategory(category string) ArticleOption {
	return func(a *entity.Article) {
		a.Category = category
	}
}

// WithTimestamp sets the timestamp of the article.
func WithTimestamp(ts time.Time) ArticleOption {
	return func(a *entity.Article) {
		a.Timestamp = ts
	}
}

// WithImage sets the image URL of the article.
func WithImage(image string) ArticleOption {
	return func(a *entity.Article) {
		a.Image = image
	}
}

// categories cycles through the labels used by generated catalogs.
var categories = []string{"Technology", "Environment", "Sports", "Health", "Business"}

// GenerateCatalog returns n valid articles with ids 1..n, each one hour
// older than the previous.
//
// Example:
//
//	articles := GenerateCatalog(3)
//	// ids 1, 2, 3; timestamps BaseTime, BaseTime-1h, BaseTime-2h
func GenerateCatalog(n int) []entity.Article {
	articles := make([]entity.Article, 0, n)
	for i := 1; i <= n; i++ {
		articles = append(articles, NewTestArticle(
			WithID(int64(i)),
			WithHeadline(fmt.Sprintf("Headline %d", i)),
			WithSummary(fmt.Sprintf("Summary of article %d.", i)),
			WithCategory(categories[(i-1)%len(categories)]),
			WithTimestamp(BaseTime.Add(-time.Duration(i-1)*time.Hour)),
			WithImage(fmt.Sprintf("https://example.com/images/%d.png", i)),
		))
	}
	return articles
}
