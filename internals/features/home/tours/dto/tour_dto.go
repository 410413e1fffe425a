// file: internals/features/home/tours/dto/tour_dto.go
package dto

import (
	"time"

	"agripadi_backend/internals/features/home/tours/model"
)

// CreateTourRequest dikirim multipart; gambar wajib saat create,
// opsional saat update (kalau kosong gambar lama dipertahankan)
type CreateTourRequest struct {
	TourTitle       string  `json:"tour_title" form:"tour_title" validate:"required,max=255"`
	TourDescription string  `json:"tour_description" form:"tour_description" validate:"required"`
	TourLocation    *string `json:"tour_location" form:"tour_location" validate:"omitempty,max=255"`
	TourEmbedURL    *string `json:"tour_embed_url" form:"tour_embed_url" validate:"omitempty,url"`
}

type UpdateTourRequest = CreateTourRequest

type TourDTO struct {
	TourID          string    `json:"tour_id"`
	TourTitle       string    `json:"tour_title"`
	TourDescription string    `json:"tour_description"`
	TourLocation    *string   `json:"tour_location,omitempty"`
	TourImageURL    string    `json:"tour_image_url"`
	TourEmbedURL    *string   `json:"tour_embed_url,omitempty"`
	TourCreatedAt   time.Time `json:"tour_created_at"`
	TourUpdatedAt   time.Time `json:"tour_updated_at"`
}

func ToTourDTO(m model.TourModel) TourDTO {
	return TourDTO{
		TourID:          m.TourID.String(),
		TourTitle:       m.TourTitle,
		TourDescription: m.TourDescription,
		TourLocation:    m.TourLocation,
		TourImageURL:    m.TourImageURL,
		TourEmbedURL:    m.TourEmbedURL,
		TourCreatedAt:   m.TourCreatedAt,
		TourUpdatedAt:   m.TourUpdatedAt,
	}
}
