package repository

import (
	"context"

	"news-app/internal/domain/entity"
)

// ArticleRepository is the read port of the article catalog.
type ArticleRepository interface {
	// List returns every article in catalog order (id 1 first).
	List(ctx context.Context) ([]entity.Article, error)
	// Get returns the article with the given id.
	// A miss is reported as (nil, nil).
	Get(ctx context.Context, id int64) (*entity.Article, error)
	// Count returns the number of articles held.
	Count(ctx context.Context) (int, error)
}
