// file: internals/features/home/feedback/dto/feedback_dto.go
package dto

import (
	"time"

	"agripadi_backend/internals/features/home/feedback/model"
)

type CreateFeedbackRequest struct {
	FeedbackSubject string `json:"feedback_subject" validate:"required,max=255"`
	FeedbackMessage string `json:"feedback_message" validate:"required"`
	FeedbackRating  *int   `json:"feedback_rating" validate:"omitempty,gte=1,lte=5"`
}

type FeedbackDTO struct {
	FeedbackID        string    `json:"feedback_id"`
	FeedbackUserID    string    `json:"feedback_user_id"`
	FeedbackUserName  string    `json:"feedback_user_name,omitempty"`
	FeedbackSubject   string    `json:"feedback_subject"`
	FeedbackMessage   string    `json:"feedback_message"`
	FeedbackRating    *int      `json:"feedback_rating,omitempty"`
	FeedbackCreatedAt time.Time `json:"feedback_created_at"`
}

func ToFeedbackDTO(m model.FeedbackModel, userName string) FeedbackDTO {
	return FeedbackDTO{
		FeedbackID:        m.FeedbackID.String(),
		FeedbackUserID:    m.FeedbackUserID.String(),
		FeedbackUserName:  userName,
		FeedbackSubject:   m.FeedbackSubject,
		FeedbackMessage:   m.FeedbackMessage,
		FeedbackRating:    m.FeedbackRating,
		FeedbackCreatedAt: m.FeedbackCreatedAt,
	}
}
