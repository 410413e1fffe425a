// file: internals/features/home/announcements/dto/announcement_dto.go
package dto

import (
	"time"

	"agripadi_backend/internals/features/home/announcements/model"
)

type CreateAnnouncementRequest struct {
	AnnouncementTitle       string  `json:"announcement_title" validate:"required,max=255"`
	AnnouncementContent     string  `json:"announcement_content" validate:"required"`
	AnnouncementImageURL    *string `json:"announcement_image_url" validate:"omitempty,url"`
	AnnouncementIsPublished *bool   `json:"announcement_is_published"`
}

type UpdateAnnouncementRequest = CreateAnnouncementRequest

type AnnouncementDTO struct {
	AnnouncementID          string    `json:"announcement_id"`
	AnnouncementTitle       string    `json:"announcement_title"`
	AnnouncementContent     string    `json:"announcement_content"`
	AnnouncementImageURL    *string   `json:"announcement_image_url,omitempty"`
	AnnouncementIsPublished bool      `json:"announcement_is_published"`
	AnnouncementCreatedAt   time.Time `json:"announcement_created_at"`
	AnnouncementUpdatedAt   time.Time `json:"announcement_updated_at"`
}

func ToAnnouncementDTO(m model.AnnouncementModel) AnnouncementDTO {
	return AnnouncementDTO{
		AnnouncementID:          m.AnnouncementID.String(),
		AnnouncementTitle:       m.AnnouncementTitle,
		AnnouncementContent:     m.AnnouncementContent,
		AnnouncementImageURL:    m.AnnouncementImageURL,
		AnnouncementIsPublished: m.AnnouncementIsPublished,
		AnnouncementCreatedAt:   m.AnnouncementCreatedAt,
		AnnouncementUpdatedAt:   m.AnnouncementUpdatedAt,
	}
}
