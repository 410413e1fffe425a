// file: internals/features/learning/quizzes/model/quiz_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizModel struct {
	QuizID          uuid.UUID  `gorm:"column:quiz_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"quiz_id"`
	QuizTitle       string     `gorm:"column:quiz_title;type:varchar(255);not null" json:"quiz_title"`
	QuizDescription *string    `gorm:"column:quiz_description;type:text" json:"quiz_description,omitempty"`
	QuizCategory    string     `gorm:"column:quiz_category;type:varchar(255);not null" json:"quiz_category"`
	QuizMaterialID  *uuid.UUID `gorm:"column:quiz_material_id;type:uuid" json:"quiz_material_id,omitempty"`

	// Ambang lulus dalam persen [0,100]; skor == ambang tetap lulus
	QuizPassingScore int  `gorm:"column:quiz_passing_score;not null" json:"quiz_passing_score"`
	QuizTimeLimit    *int `gorm:"column:quiz_time_limit" json:"quiz_time_limit,omitempty"` // menit, >= 1
	QuizIsActive     bool `gorm:"column:quiz_is_active;not null;default:true" json:"quiz_is_active"`

	QuizCreatedBy uuid.UUID `gorm:"column:quiz_created_by;type:uuid;not null" json:"quiz_created_by"`

	QuizCreatedAt time.Time      `gorm:"column:quiz_created_at;autoCreateTime" json:"quiz_created_at"`
	QuizUpdatedAt time.Time      `gorm:"column:quiz_updated_at;autoUpdateTime" json:"quiz_updated_at"`
	QuizDeletedAt gorm.DeletedAt `gorm:"column:quiz_deleted_at;index" json:"-"`
}

func (QuizModel) TableName() string {
	return "quizzes"
}
