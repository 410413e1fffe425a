// file: internals/features/learning/quizzes/dto/quiz_user_dto.go
package dto

import (
	"time"

	"agripadi_backend/internals/features/learning/quizzes/model"
)

// ============================
// Take view (farmer)
// ============================

// QuizQuestionPublicDTO: versi yang dikirim saat mengerjakan kuis —
// kunci jawaban & pembahasan TIDAK boleh ikut ke klien.
type QuizQuestionPublicDTO struct {
	QuizQuestionID      string   `json:"quiz_question_id"`
	QuizQuestionText    string   `json:"quiz_question_text"`
	QuizQuestionOptions []string `json:"quiz_question_options"`
	QuizQuestionOrder   int      `json:"quiz_question_order"`
}

func ToQuizQuestionPublicDTO(m model.QuizQuestionModel) QuizQuestionPublicDTO {
	return QuizQuestionPublicDTO{
		QuizQuestionID:      m.QuizQuestionID.String(),
		QuizQuestionText:    m.QuizQuestionText,
		QuizQuestionOptions: append([]string(nil), m.QuizQuestionOptions...),
		QuizQuestionOrder:   m.QuizQuestionOrder,
	}
}

type QuizTakeDTO struct {
	QuizID           string                  `json:"quiz_id"`
	QuizTitle        string                  `json:"quiz_title"`
	QuizDescription  *string                 `json:"quiz_description,omitempty"`
	QuizCategory     string                  `json:"quiz_category"`
	QuizPassingScore int                     `json:"quiz_passing_score"`
	QuizTimeLimit    *int                    `json:"quiz_time_limit,omitempty"`
	QuizQuestions    []QuizQuestionPublicDTO `json:"quiz_questions"`
}

// ============================
// Submit attempt
// ============================

// SubmitAttemptRequest: answers = map question_id → index opsi (0..3);
// soal yang dilewati tidak punya key. started_at dikirim klien (dipercaya
// apa adanya — tidak ada pengecekan ulang server).
type SubmitAttemptRequest struct {
	QuizAttemptAnswers   map[string]int `json:"quiz_attempt_answers" validate:"omitempty,dive,gte=0,lte=3"`
	QuizAttemptStartedAt time.Time      `json:"quiz_attempt_started_at" validate:"required"`
}

// ============================
// Attempt responses
// ============================

type QuizAttemptDTO struct {
	QuizAttemptID          string    `json:"quiz_attempt_id"`
	QuizAttemptQuizID      string    `json:"quiz_attempt_quiz_id"`
	QuizAttemptScore       int       `json:"quiz_attempt_score"`
	QuizAttemptPassed      bool      `json:"quiz_attempt_passed"`
	QuizAttemptStartedAt   time.Time `json:"quiz_attempt_started_at"`
	QuizAttemptCompletedAt time.Time `json:"quiz_attempt_completed_at"`
}

func ToQuizAttemptDTO(m model.QuizAttemptModel) QuizAttemptDTO {
	return QuizAttemptDTO{
		QuizAttemptID:          m.QuizAttemptID.String(),
		QuizAttemptQuizID:      m.QuizAttemptQuizID.String(),
		QuizAttemptScore:       m.QuizAttemptScore,
		QuizAttemptPassed:      m.QuizAttemptPassed,
		QuizAttemptStartedAt:   m.QuizAttemptStartedAt,
		QuizAttemptCompletedAt: m.QuizAttemptCompletedAt,
	}
}

// AttemptSummaryDTO: ringkasan attempt terakhir per kuis di listing farmer
type AttemptSummaryDTO struct {
	QuizAttemptID          string    `json:"quiz_attempt_id"`
	QuizAttemptScore       int       `json:"quiz_attempt_score"`
	QuizAttemptPassed      bool      `json:"quiz_attempt_passed"`
	QuizAttemptCompletedAt time.Time `json:"quiz_attempt_completed_at"`
}

func ToAttemptSummaryDTO(m model.QuizAttemptModel) AttemptSummaryDTO {
	return AttemptSummaryDTO{
		QuizAttemptID:          m.QuizAttemptID.String(),
		QuizAttemptScore:       m.QuizAttemptScore,
		QuizAttemptPassed:      m.QuizAttemptPassed,
		QuizAttemptCompletedAt: m.QuizAttemptCompletedAt,
	}
}

type QuizListItemDTO struct {
	QuizDTO
	LatestAttempt *AttemptSummaryDTO `json:"latest_attempt,omitempty"`
}

// ============================
// Result review
// ============================

// AttemptQuestionResultDTO: breakdown per soal untuk halaman hasil.
// selected_answer nil = tidak dijawab.
type AttemptQuestionResultDTO struct {
	QuizQuestionID            string   `json:"quiz_question_id"`
	QuizQuestionText          string   `json:"quiz_question_text"`
	QuizQuestionOptions       []string `json:"quiz_question_options"`
	QuizQuestionCorrectAnswer int      `json:"quiz_question_correct_answer"`
	QuizQuestionExplanation   *string  `json:"quiz_question_explanation,omitempty"`
	SelectedAnswer            *int     `json:"selected_answer,omitempty"`
	IsCorrect                 bool     `json:"is_correct"`
}

type AttemptResultDTO struct {
	QuizAttemptDTO
	QuizTitle        string                     `json:"quiz_title"`
	QuizPassingScore int                        `json:"quiz_passing_score"`
	Questions        []AttemptQuestionResultDTO `json:"questions"`
}
