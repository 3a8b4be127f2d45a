// Package article provides HTTP handlers for article-related endpoints.
// It includes handlers for listing the catalog and fetching one article by id.
package article

import (
	"news-app/internal/domain/entity"
	"news-app/internal/handler/http/respond"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID        int64  `json:"id" example:"1"`
	Headline  string `json:"headline" example:"Climate Summit Reaches Historic Agreement"`
	Summary   string `json:"summary" example:"World leaders unite on ambitious climate targets..."`
	Category  string `json:"category" example:"Environment"`
	Timestamp string `json:"timestamp" example:"2026-10-19T08:00:00.000Z"`
	Image     string `json:"image" example:"https://via.placeholder.com/400x250/4CAF50/FFFFFF?text=Climate+News"`
}

// ListResponse is the success envelope for the article list.
type ListResponse struct {
	Status string `json:"status" example:"success"`
	Data   []DTO  `json:"data"`
	Total  int    `json:"total" example:"5"`
}

// GetResponse is the success envelope for a single article.
type GetResponse struct {
	Status string `json:"status" example:"success"`
	Data   DTO    `json:"data"`
}

func toDTO(a entity.Article) DTO {
	return DTO{
		ID:        a.ID,
		Headline:  a.Headline,
		Summary:   a.Summary,
		Category:  a.Category,
		Timestamp: a.FormatTimestamp(),
		Image:     a.Image,
	}
}

func newListResponse(articles []entity.Article) ListResponse {
	dtos := make([]DTO, 0, len(articles))
	for _, a := range articles {
		dtos = append(dtos, toDTO(a))
	}
	return ListResponse{Status: respond.StatusSuccess, Data: dtos, Total: len(dtos)}
}
