// file: internals/features/learning/quizzes/service/quiz_attempt_service.go
package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"agripadi_backend/internals/features/learning/quizzes/model"
)

var (
	ErrQuizNotFound  = errors.New("kuis tidak ditemukan")
	ErrQuizNotActive = errors.New("kuis sedang tidak aktif")
)

type QuizAttemptService struct {
	DB *gorm.DB
}

func NewQuizAttemptService(db *gorm.DB) *QuizAttemptService {
	return &QuizAttemptService{DB: db}
}

type SubmitAttemptInput struct {
	QuizID uuid.UUID
	UserID uuid.UUID

	// map question_id → index opsi; key absen = tidak dijawab
	Answers model.AttemptAnswers

	// dari klien, disimpan apa adanya (tidak dicek terhadap time_limit —
	// countdown adalah perilaku klien, server terima submit kapan pun)
	StartedAt time.Time
}

// SubmitAttempt:
// - tolak kalau kuis tidak ada / tidak aktif (tidak ada row attempt dibuat)
// - load soal + kunci, hitung skor & lulus
// - simpan satu row attempt (snapshot jawaban + hasil), completed_at = now
func (s *QuizAttemptService) SubmitAttempt(ctx context.Context, in *SubmitAttemptInput) (*model.QuizAttemptModel, error) {
	if in == nil {
		return nil, errors.New("input cannot be nil")
	}

	var quiz model.QuizModel
	if err := s.DB.WithContext(ctx).
		First(&quiz, "quiz_id = ?", in.QuizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}
	if !quiz.QuizIsActive {
		return nil, ErrQuizNotActive
	}

	var questions []model.QuizQuestionModel
	if err := s.DB.WithContext(ctx).
		Where("quiz_question_quiz_id = ?", quiz.QuizID).
		Order("quiz_question_order ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}

	correctCount, score := ScoreAnswers(questions, in.Answers)
	passed := IsPassed(score, quiz.QuizPassingScore)

	log.Printf("[INFO] SubmitAttempt quiz_id=%s user_id=%s answered=%d/%d correct=%d score=%d passed=%v",
		quiz.QuizID, in.UserID, len(in.Answers), len(questions), correctCount, score, passed)

	attempt := model.QuizAttemptModel{
		QuizAttemptQuizID:      quiz.QuizID,
		QuizAttemptUserID:      in.UserID,
		QuizAttemptScore:       score,
		QuizAttemptPassed:      passed,
		QuizAttemptStartedAt:   in.StartedAt,
		QuizAttemptCompletedAt: time.Now().UTC(),
	}
	if err := attempt.SetAnswers(in.Answers); err != nil {
		return nil, err
	}

	if err := s.DB.WithContext(ctx).Create(&attempt).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}
