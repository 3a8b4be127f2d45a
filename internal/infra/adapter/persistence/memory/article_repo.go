// Package memory provides an in-memory, read-only implementation of the article repository.
// The catalog is built once at startup and never mutated, so no locking is needed.
package memory

import (
	"context"
	"fmt"

	"news-app/internal/domain/entity"
	"news-app/internal/repository"
)

// ArticleRepo implements the ArticleRepository interface over a fixed slice.
type ArticleRepo struct {
	articles []entity.Article
	byID     map[int64]int
}

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

// NewArticleRepo validates the given articles and returns an immutable catalog.
// The input slice is copied; later changes to it are not observed.
// It fails if any article is invalid or if two articles share an id.
func NewArticleRepo(articles []entity.Article) (*ArticleRepo, error) {
	repo := &ArticleRepo{
		articles: make([]entity.Article, 0, len(articles)),
		byID:     make(map[int64]int, len(articles)),
	}

	for i, a := range articles {
		if err := entity.ValidateArticle(a); err != nil {
			return nil, fmt.Errorf("NewArticleRepo: article at index %d: %w", i, err)
		}
		if _, dup := repo.byID[a.ID]; dup {
			return nil, fmt.Errorf("NewArticleRepo: duplicate article id %d: %w", a.ID, entity.ErrValidationFailed)
		}
		repo.byID[a.ID] = len(repo.articles)
		repo.articles = append(repo.articles, a)
	}

	return repo, nil
}

// List returns a copy of every article in insertion order.
func (repo *ArticleRepo) List(_ context.Context) ([]entity.Article, error) {
	out := make([]entity.Article, len(repo.articles))
	copy(out, repo.articles)
	return out, nil
}

// Get returns a copy of the article with the given id, or (nil, nil) if absent.
func (repo *ArticleRepo) Get(_ context.Context, id int64) (*entity.Article, error) {
	idx, ok := repo.byID[id]
	if !ok {
		return nil, nil
	}
	a := repo.articles[idx]
	return &a, nil
}

// Count returns the catalog size.
func (repo *ArticleRepo) Count(_ context.Context) (int, error) {
	return len(repo.articles), nil
}
