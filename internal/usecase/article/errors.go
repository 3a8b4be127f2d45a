// Package article provides use cases for querying the article catalog.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID indicates that the provided article ID is invalid.
	// Article IDs must be positive integers, so such an ID can never match.
	ErrInvalidArticleID = errors.New("invalid article ID")
)
