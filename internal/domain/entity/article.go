// Package entity defines the core domain entities and validation logic for the application.
// It contains the Article news record along with its validation rules and
// domain-specific errors.
package entity

import "time"

// TimestampLayout is the ISO 8601 layout used when an article timestamp is
// rendered for clients (UTC, millisecond precision).
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Article represents a single news item held in the catalog.
type Article struct {
	ID        int64
	Headline  string
	Summary   string
	Category  string
	Timestamp time.Time
	Image     string
}

// FormatTimestamp renders the article timestamp in UTC using TimestampLayout.
func (a Article) FormatTimestamp() string {
	return a.Timestamp.UTC().Format(TimestampLayout)
}
