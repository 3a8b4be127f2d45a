package memory

import (
	"time"

	"news-app/internal/domain/entity"
)

// SeedArticles returns the built-in catalog. Article n is stamped n-1 hours
// before now so the list reads newest first.
func SeedArticles(now time.Time) []entity.Article {
	return []entity.Article{
		{
			ID:        1,
			Headline:  "Breaking: Technology Advances Reshape Global Economy",
			Summary:   "Latest developments in artificial intelligence and automation are transforming industries worldwide, creating new opportunities and challenges.",
			Category:  "Technology",
			Timestamp: now,
			Image:     "https://via.placeholder.com/400x250/FF5722/FFFFFF?text=Tech+News",
		},
		{
			ID:        2,
			Headline:  "Climate Summit Reaches Historic Agreement",
			Summary:   "World leaders unite on ambitious climate targets, promising significant reduction in carbon emissions over the next decade.",
			Category:  "Environment",
			Timestamp: now.Add(-1 * time.Hour),
			Image:     "https://via.placeholder.com/400x250/4CAF50/FFFFFF?text=Climate+News",
		},
		{
			ID:        3,
			Headline:  "Sports: Championship Finals Draw Record Viewership",
			Summary:   "This year's championship games have attracted the largest television audience in sporting history.",
			Category:  "Sports",
			Timestamp: now.Add(-2 * time.Hour),
			Image:     "https://via.placeholder.com/400x250/2196F3/FFFFFF?text=Sports+News",
		},
		{
			ID:        4,
			Headline:  "Health: New Medical Breakthrough Offers Hope",
			Summary:   "Researchers announce significant progress in treating chronic diseases, with clinical trials showing promising results.",
			Category:  "Health",
			Timestamp: now.Add(-3 * time.Hour),
			Image:     "https://via.placeholder.com/400x250/9C27B0/FFFFFF?text=Health+News",
		},
		{
			ID:        5,
			Headline:  "Business: Markets Show Strong Recovery Trends",
			Summary:   "Global financial markets demonstrate resilience with sustained growth across multiple sectors and regions.",
			Category:  "Business",
			Timestamp: now.Add(-4 * time.Hour),
			Image:     "https://via.placeholder.com/400x250/FF9800/FFFFFF?text=Business+News",
		},
	}
}
