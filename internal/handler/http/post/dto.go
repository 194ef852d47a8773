package post

import (
	"time"

	"blog-backend/internal/domain/entity"
)

type DTO struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Summary   string    `json:"summary"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toDTO(p *entity.Post) DTO {
	return DTO{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Summary:   p.Summary,
		Category:  p.Category,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type createRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Summary  string `json:"summary"`
	Category string `json:"category"`
}

type updateRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Summary  *string `json:"summary"`
	Category *string `json:"category"`
}
