// file: internals/features/home/feedback/model/feedback_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type FeedbackModel struct {
	FeedbackID      uuid.UUID `gorm:"column:feedback_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"feedback_id"`
	FeedbackUserID  uuid.UUID `gorm:"column:feedback_user_id;type:uuid;not null;index" json:"feedback_user_id"`
	FeedbackSubject string    `gorm:"column:feedback_subject;type:varchar(255);not null" json:"feedback_subject"`
	FeedbackMessage string    `gorm:"column:feedback_message;type:text;not null" json:"feedback_message"`

	// Rating 1..5, opsional
	FeedbackRating *int `gorm:"column:feedback_rating" json:"feedback_rating,omitempty"`

	FeedbackCreatedAt time.Time `gorm:"column:feedback_created_at;autoCreateTime" json:"feedback_created_at"`
}

func (FeedbackModel) TableName() string {
	return "feedback"
}
