// file: internals/features/learning/quizzes/model/quiz_attempt_model.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AttemptAnswers: map question_id → index opsi yang dipilih (0..3).
// Soal yang tidak dijawab TIDAK ada key-nya — jangan pakai sentinel
// (-1 / 0) supaya "tidak jawab" tidak ketukar dengan "pilih opsi A".
type AttemptAnswers map[string]int

type QuizAttemptModel struct {
	QuizAttemptID     uuid.UUID `gorm:"column:quiz_attempt_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"quiz_attempt_id"`
	QuizAttemptQuizID uuid.UUID `gorm:"column:quiz_attempt_quiz_id;type:uuid;not null;index:idx_qa_quiz_user,priority:1" json:"quiz_attempt_quiz_id"`
	QuizAttemptUserID uuid.UUID `gorm:"column:quiz_attempt_user_id;type:uuid;not null;index:idx_qa_quiz_user,priority:2" json:"quiz_attempt_user_id"`

	QuizAttemptAnswers datatypes.JSON `gorm:"column:quiz_attempt_answers;type:jsonb;not null" json:"quiz_attempt_answers"`

	// Snapshot hasil saat submit; tidak pernah dihitung ulang
	QuizAttemptScore  int  `gorm:"column:quiz_attempt_score;not null" json:"quiz_attempt_score"`
	QuizAttemptPassed bool `gorm:"column:quiz_attempt_passed;not null" json:"quiz_attempt_passed"`

	// started_at dari klien (tidak divalidasi server), completed_at waktu server
	QuizAttemptStartedAt   time.Time `gorm:"column:quiz_attempt_started_at;type:timestamptz;not null" json:"quiz_attempt_started_at"`
	QuizAttemptCompletedAt time.Time `gorm:"column:quiz_attempt_completed_at;type:timestamptz;not null" json:"quiz_attempt_completed_at"`

	QuizAttemptCreatedAt time.Time `gorm:"column:quiz_attempt_created_at;autoCreateTime" json:"quiz_attempt_created_at"`
}

func (QuizAttemptModel) TableName() string {
	return "quiz_attempts"
}

// SetAnswers serialize map jawaban ke kolom JSONB
func (m *QuizAttemptModel) SetAnswers(answers AttemptAnswers) error {
	if answers == nil {
		answers = AttemptAnswers{}
	}
	b, err := json.Marshal(answers)
	if err != nil {
		return err
	}
	m.QuizAttemptAnswers = datatypes.JSON(b)
	return nil
}

// Answers deserialize kolom JSONB ke map jawaban
func (m *QuizAttemptModel) Answers() (AttemptAnswers, error) {
	out := AttemptAnswers{}
	if len(m.QuizAttemptAnswers) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(m.QuizAttemptAnswers, &out); err != nil {
		return nil, err
	}
	return out, nil
}
