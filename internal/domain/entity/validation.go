package entity

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

const (
	// maxURLLength defines the maximum allowed length for image URLs.
	maxURLLength = 2048
	// maxCategoryLength keeps category labels short enough for UI badges.
	maxCategoryLength = 32
)

// ValidateArticle checks every field of an article.
// It returns the first ValidationError encountered, or nil.
func ValidateArticle(a Article) error {
	if a.ID <= 0 {
		return &ValidationError{Field: "id", Message: "id must be positive"}
	}
	if strings.TrimSpace(a.Headline) == "" {
		return &ValidationError{Field: "headline", Message: "headline is required"}
	}
	if strings.TrimSpace(a.Summary) == "" {
		return &ValidationError{Field: "summary", Message: "summary is required"}
	}
	if strings.TrimSpace(a.Category) == "" {
		return &ValidationError{Field: "category", Message: "category is required"}
	}
	if utf8.RuneCountInString(a.Category) > maxCategoryLength {
		return &ValidationError{
			Field:   "category",
			Message: fmt.Sprintf("category must not exceed %d characters", maxCategoryLength),
		}
	}
	if a.Timestamp.IsZero() {
		return &ValidationError{Field: "timestamp", Message: "timestamp is required"}
	}
	return ValidateImageURL(a.Image)
}

// ValidateImageURL validates that an image reference is an absolute http(s) URL.
// Image URLs are only handed to browsers, so no network lookup is performed.
func ValidateImageURL(rawURL string) error {
	if rawURL == "" {
		return &ValidationError{Field: "image", Message: "image URL is required"}
	}

	if len(rawURL) > maxURLLength {
		return &ValidationError{
			Field:   "image",
			Message: fmt.Sprintf("image URL must not exceed %d characters", maxURLLength),
		}
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return &ValidationError{Field: "image", Message: "image URL is malformed"}
	}

	// HTTPまたはHTTPSスキームのみ許可
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return &ValidationError{Field: "image", Message: "image URL must use http or https scheme"}
	}

	if parsedURL.Host == "" {
		return &ValidationError{Field: "image", Message: "image URL must have a valid host"}
	}

	return nil
}
