// Package category provides HTTP handlers for category management and the
// public category listing.
package category

import (
	"time"

	"pressroom/internal/domain/entity"
	"pressroom/internal/repository"
)

// DTO is the JSON representation of a category.
type DTO struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description,omitempty"`
	ArticleCount int64     `json:"articleCount,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toDTO(c *entity.Category) DTO {
	return DTO{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toDTOWithCount(c repository.CategoryWithCount) DTO {
	dto := toDTO(c.Category)
	dto.ArticleCount = c.ArticleCount
	return dto
}
