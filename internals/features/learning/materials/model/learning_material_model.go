// file: internals/features/learning/materials/model/learning_material_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tipe materi yang didukung
const (
	MaterialTypePDF   = "pdf"
	MaterialTypeVideo = "video"
)

type LearningMaterialModel struct {
	LearningMaterialID          uuid.UUID `gorm:"column:learning_material_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"learning_material_id"`
	LearningMaterialTitle       string    `gorm:"column:learning_material_title;type:varchar(255);not null" json:"learning_material_title"`
	LearningMaterialDescription *string   `gorm:"column:learning_material_description;type:text" json:"learning_material_description,omitempty"`
	LearningMaterialCategory    *string   `gorm:"column:learning_material_category;type:varchar(255);index" json:"learning_material_category,omitempty"`

	// pdf | video
	LearningMaterialType    string `gorm:"column:learning_material_type;type:varchar(20);not null" json:"learning_material_type"`
	LearningMaterialFileURL string `gorm:"column:learning_material_file_url;type:text;not null" json:"learning_material_file_url"`

	LearningMaterialCreatedBy uuid.UUID      `gorm:"column:learning_material_created_by;type:uuid;not null" json:"learning_material_created_by"`
	LearningMaterialCreatedAt time.Time      `gorm:"column:learning_material_created_at;autoCreateTime" json:"learning_material_created_at"`
	LearningMaterialUpdatedAt time.Time      `gorm:"column:learning_material_updated_at;autoUpdateTime" json:"learning_material_updated_at"`
	LearningMaterialDeletedAt gorm.DeletedAt `gorm:"column:learning_material_deleted_at;index" json:"-"`
}

func (LearningMaterialModel) TableName() string {
	return "learning_materials"
}
