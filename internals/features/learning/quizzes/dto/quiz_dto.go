// file: internals/features/learning/quizzes/dto/quiz_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"agripadi_backend/internals/features/learning/quizzes/model"
)

// ============================
// Request DTO (admin)
// ============================

// CreateQuizQuestionRequest: correct_answer pakai pointer supaya nilai 0
// (opsi A) tetap lolos rule `required`.
type CreateQuizQuestionRequest struct {
	QuizQuestionText          string   `json:"quiz_question_text" validate:"required"`
	QuizQuestionOptions       []string `json:"quiz_question_options" validate:"required,len=4,dive,required"`
	QuizQuestionCorrectAnswer *int     `json:"quiz_question_correct_answer" validate:"required,gte=0,lte=3"`
	QuizQuestionExplanation   *string  `json:"quiz_question_explanation"`
}

type CreateQuizRequest struct {
	QuizTitle        string      `json:"quiz_title" validate:"required,max=255"`
	QuizDescription  *string     `json:"quiz_description"`
	QuizCategory     string      `json:"quiz_category" validate:"required,max=255"`
	QuizMaterialID   *uuid.UUID  `json:"quiz_material_id"`
	QuizPassingScore *int        `json:"quiz_passing_score" validate:"required,gte=0,lte=100"`
	QuizTimeLimit    *int        `json:"quiz_time_limit" validate:"omitempty,gte=1"`
	QuizIsActive     *bool       `json:"quiz_is_active"`

	QuizQuestions []CreateQuizQuestionRequest `json:"quiz_questions" validate:"required,min=1,dive"`
}

// UpdateQuizRequest: update = replace-all; payload sama dengan create,
// semua soal lama dihapus lalu diganti set baru.
type UpdateQuizRequest = CreateQuizRequest

// ============================
// Response DTO (admin)
// ============================

type QuizDTO struct {
	QuizID           string     `json:"quiz_id"`
	QuizTitle        string     `json:"quiz_title"`
	QuizDescription  *string    `json:"quiz_description,omitempty"`
	QuizCategory     string     `json:"quiz_category"`
	QuizMaterialID   *uuid.UUID `json:"quiz_material_id,omitempty"`
	QuizPassingScore int        `json:"quiz_passing_score"`
	QuizTimeLimit    *int       `json:"quiz_time_limit,omitempty"`
	QuizIsActive     bool       `json:"quiz_is_active"`
	QuizCreatedBy    string     `json:"quiz_created_by"`
	QuizCreatedAt    time.Time  `json:"quiz_created_at"`
	QuizUpdatedAt    time.Time  `json:"quiz_updated_at"`
}

// QuizQuestionDTO versi admin (kunci + pembahasan ikut)
type QuizQuestionDTO struct {
	QuizQuestionID            string   `json:"quiz_question_id"`
	QuizQuestionText          string   `json:"quiz_question_text"`
	QuizQuestionOptions       []string `json:"quiz_question_options"`
	QuizQuestionCorrectAnswer int      `json:"quiz_question_correct_answer"`
	QuizQuestionExplanation   *string  `json:"quiz_question_explanation,omitempty"`
	QuizQuestionOrder         int      `json:"quiz_question_order"`
}

type QuizWithQuestionsDTO struct {
	QuizDTO
	QuizQuestions []QuizQuestionDTO `json:"quiz_questions"`
}

type QuizWithStatsDTO struct {
	QuizDTO
	QuestionCount int64 `json:"question_count"`
	AttemptCount  int64 `json:"attempt_count"`
}

// ============================
// Converter
// ============================

func ToQuizDTO(m model.QuizModel) QuizDTO {
	return QuizDTO{
		QuizID:           m.QuizID.String(),
		QuizTitle:        m.QuizTitle,
		QuizDescription:  m.QuizDescription,
		QuizCategory:     m.QuizCategory,
		QuizMaterialID:   m.QuizMaterialID,
		QuizPassingScore: m.QuizPassingScore,
		QuizTimeLimit:    m.QuizTimeLimit,
		QuizIsActive:     m.QuizIsActive,
		QuizCreatedBy:    m.QuizCreatedBy.String(),
		QuizCreatedAt:    m.QuizCreatedAt,
		QuizUpdatedAt:    m.QuizUpdatedAt,
	}
}

func ToQuizQuestionDTO(m model.QuizQuestionModel) QuizQuestionDTO {
	return QuizQuestionDTO{
		QuizQuestionID:            m.QuizQuestionID.String(),
		QuizQuestionText:          m.QuizQuestionText,
		QuizQuestionOptions:       append([]string(nil), m.QuizQuestionOptions...),
		QuizQuestionCorrectAnswer: m.QuizQuestionCorrectAnswer,
		QuizQuestionExplanation:   m.QuizQuestionExplanation,
		QuizQuestionOrder:         m.QuizQuestionOrder,
	}
}

// ToQuizQuestionModels bentuk model soal dari payload create/update;
// order = posisi di array submit (0-based).
func ToQuizQuestionModels(quizID uuid.UUID, reqs []CreateQuizQuestionRequest) []model.QuizQuestionModel {
	out := make([]model.QuizQuestionModel, 0, len(reqs))
	for i, q := range reqs {
		out = append(out, model.QuizQuestionModel{
			QuizQuestionQuizID:        quizID,
			QuizQuestionText:          q.QuizQuestionText,
			QuizQuestionOptions:       append([]string(nil), q.QuizQuestionOptions...),
			QuizQuestionCorrectAnswer: *q.QuizQuestionCorrectAnswer,
			QuizQuestionExplanation:   q.QuizQuestionExplanation,
			QuizQuestionOrder:         i,
		})
	}
	return out
}
