// file: internals/features/learning/quizzes/model/quiz_question_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Jumlah opsi per soal fix 4 (A-D by posisi)
const QuizQuestionOptionCount = 4

type QuizQuestionModel struct {
	QuizQuestionID     uuid.UUID      `gorm:"column:quiz_question_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"quiz_question_id"`
	QuizQuestionQuizID uuid.UUID      `gorm:"column:quiz_question_quiz_id;type:uuid;not null;index" json:"quiz_question_quiz_id"`
	QuizQuestionText   string         `gorm:"column:quiz_question_text;type:text;not null" json:"quiz_question_text"`
	QuizQuestionOptions pq.StringArray `gorm:"column:quiz_question_options;type:text[];not null" json:"quiz_question_options"`

	// Index opsi benar, 0..3
	QuizQuestionCorrectAnswer int     `gorm:"column:quiz_question_correct_answer;not null" json:"quiz_question_correct_answer"`
	QuizQuestionExplanation   *string `gorm:"column:quiz_question_explanation;type:text" json:"quiz_question_explanation,omitempty"`

	// Urutan tampil, 0-based sesuai posisi submit
	QuizQuestionOrder int `gorm:"column:quiz_question_order;not null" json:"quiz_question_order"`

	QuizQuestionCreatedAt time.Time `gorm:"column:quiz_question_created_at;autoCreateTime" json:"quiz_question_created_at"`
	QuizQuestionUpdatedAt time.Time `gorm:"column:quiz_question_updated_at;autoUpdateTime" json:"quiz_question_updated_at"`
}

func (QuizQuestionModel) TableName() string {
	return "quiz_questions"
}

// ValidateShape mirror constraint DB supaya cepat fail di app:
// teks wajib, opsi tepat 4 dan tidak kosong, correct_answer 0..3.
func (m *QuizQuestionModel) ValidateShape() error {
	if strings.TrimSpace(m.QuizQuestionText) == "" {
		return errors.New("teks soal wajib diisi")
	}
	if len(m.QuizQuestionOptions) != QuizQuestionOptionCount {
		return errors.New("opsi jawaban harus tepat 4")
	}
	for _, opt := range m.QuizQuestionOptions {
		if strings.TrimSpace(opt) == "" {
			return errors.New("opsi jawaban tidak boleh kosong")
		}
	}
	if m.QuizQuestionCorrectAnswer < 0 || m.QuizQuestionCorrectAnswer >= QuizQuestionOptionCount {
		return errors.New("correct_answer harus 0..3")
	}
	return nil
}
