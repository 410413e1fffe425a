// file: internals/features/learning/materials/dto/learning_material_dto.go
package dto

import (
	"time"

	"agripadi_backend/internals/features/learning/materials/model"
)

type CreateLearningMaterialRequest struct {
	LearningMaterialTitle       string  `json:"learning_material_title" validate:"required,max=255"`
	LearningMaterialDescription *string `json:"learning_material_description"`
	LearningMaterialCategory    *string `json:"learning_material_category" validate:"omitempty,max=255"`
	LearningMaterialType        string  `json:"learning_material_type" validate:"required,oneof=pdf video"`
	LearningMaterialFileURL     string  `json:"learning_material_file_url" validate:"required,url"`
}

type UpdateLearningMaterialRequest = CreateLearningMaterialRequest

type LearningMaterialDTO struct {
	LearningMaterialID          string    `json:"learning_material_id"`
	LearningMaterialTitle       string    `json:"learning_material_title"`
	LearningMaterialDescription *string   `json:"learning_material_description,omitempty"`
	LearningMaterialCategory    *string   `json:"learning_material_category,omitempty"`
	LearningMaterialType        string    `json:"learning_material_type"`
	LearningMaterialFileURL     string    `json:"learning_material_file_url"`
	LearningMaterialCreatedAt   time.Time `json:"learning_material_created_at"`
	LearningMaterialUpdatedAt   time.Time `json:"learning_material_updated_at"`
}

func ToLearningMaterialDTO(m model.LearningMaterialModel) LearningMaterialDTO {
	return LearningMaterialDTO{
		LearningMaterialID:          m.LearningMaterialID.String(),
		LearningMaterialTitle:       m.LearningMaterialTitle,
		LearningMaterialDescription: m.LearningMaterialDescription,
		LearningMaterialCategory:    m.LearningMaterialCategory,
		LearningMaterialType:        m.LearningMaterialType,
		LearningMaterialFileURL:     m.LearningMaterialFileURL,
		LearningMaterialCreatedAt:   m.LearningMaterialCreatedAt,
		LearningMaterialUpdatedAt:   m.LearningMaterialUpdatedAt,
	}
}
