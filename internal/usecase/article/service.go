package article

import (
	"context"
	"fmt"

	"news-app/internal/domain/entity"
	"news-app/internal/repository"
)

// Service provides article query use cases.
// The catalog is read-only, so Service exposes no mutating operations.
type Service struct {
	Repo repository.ArticleRepository
}

// List retrieves all articles in catalog order.
// Returns an error if the repository operation fails.
func (s *Service) List(ctx context.Context) ([]entity.Article, error) {
	articles, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// Get retrieves a single article by its ID.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	article, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// Count returns the number of articles in the catalog.
func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.Repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return n, nil
}
