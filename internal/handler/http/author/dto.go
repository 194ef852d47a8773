package author

import (
	"time"

	"blog-backend/internal/domain/entity"
)

type DTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toDTO(a *entity.Author) DTO {
	return DTO{
		ID:          a.ID,
		Name:        a.Name,
		PhoneNumber: a.PhoneNumber,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

type createRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

// updateRequest fields left out of the body keep their stored values.
type updateRequest struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phone_number"`
}
