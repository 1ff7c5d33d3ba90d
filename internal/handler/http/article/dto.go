// Package article provides HTTP handlers for article endpoints: the admin
// CRUD surface under /admin/articles and the public read API.
package article

import (
	"time"

	"pressroom/internal/repository"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID           int64      `json:"id" example:"1"`
	Title        string     `json:"title" example:"Shipping a CMS in Go"`
	Slug         string     `json:"slug" example:"shipping-a-cms-in-go"`
	Summary      string     `json:"summary" example:"What we learned moving the back office to Go."`
	Content      string     `json:"content,omitempty"`
	ThumbnailURL string     `json:"thumbnailUrl,omitempty" example:"https://cdn.example.com/thumbs/1.jpg"`
	Status       string     `json:"status" example:"PUBLISHED"`
	CategoryName string     `json:"categoryName" example:"Engineering"`
	CategorySlug string     `json:"categorySlug" example:"engineering"`
	AuthorName   string     `json:"authorName" example:"Jane Doe"`
	Tags         []string   `json:"tags"`
	PublishAt    *time.Time `json:"publishAt,omitempty" example:"2026-01-15T09:00:00Z"`
	CreatedAt    time.Time  `json:"createdAt" example:"2026-01-10T12:00:00Z"`
	UpdatedAt    time.Time  `json:"updatedAt" example:"2026-01-12T08:30:00Z"`
}

// toDTO converts a repository row to its transfer representation.
// includeContent controls whether the rendered HTML body is serialized;
// list endpoints leave it out to keep pages small.
func toDTO(item repository.ArticleWithRelations, includeContent bool) DTO {
	dto := DTO{
		ID:           item.Article.ID,
		Title:        item.Article.Title,
		Slug:         item.Article.Slug,
		Summary:      item.Article.Summary,
		ThumbnailURL: item.Article.ThumbnailURL,
		Status:       string(item.Article.Status),
		CategoryName: item.CategoryName,
		CategorySlug: item.CategorySlug,
		AuthorName:   item.AuthorName,
		Tags:         item.TagNames,
		PublishAt:    item.Article.PublishAt,
		CreatedAt:    item.Article.CreatedAt,
		UpdatedAt:    item.Article.UpdatedAt,
	}
	if dto.Tags == nil {
		dto.Tags = []string{}
	}
	if includeContent {
		dto.Content = item.Article.Content
	}
	return dto
}
