package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"agripadi_backend/internals/features/learning/quizzes/dto"
	"agripadi_backend/internals/features/learning/quizzes/model"
)

// DB sqlite in-memory per test; skema dibuat manual karena default
// gen_random_uuid() khusus Postgres tidak ada di sqlite.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	for _, ddl := range []string{
		`CREATE TABLE quizzes (
			quiz_id text PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
			quiz_title text, quiz_description text, quiz_category text,
			quiz_material_id text, quiz_passing_score integer,
			quiz_time_limit integer, quiz_is_active numeric,
			quiz_created_by text, quiz_created_at datetime,
			quiz_updated_at datetime, quiz_deleted_at datetime)`,
		`CREATE TABLE quiz_questions (
			quiz_question_id text PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
			quiz_question_quiz_id text, quiz_question_text text,
			quiz_question_options text, quiz_question_correct_answer integer,
			quiz_question_explanation text, quiz_question_order integer,
			quiz_question_created_at datetime, quiz_question_updated_at datetime)`,
		`CREATE TABLE quiz_attempts (
			quiz_attempt_id text PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
			quiz_attempt_quiz_id text, quiz_attempt_user_id text,
			quiz_attempt_answers text, quiz_attempt_score integer,
			quiz_attempt_passed numeric, quiz_attempt_started_at datetime,
			quiz_attempt_completed_at datetime, quiz_attempt_created_at datetime)`,
	} {
		require.NoError(t, db.Exec(ddl).Error)
	}
	return db
}

// tiru Locals yang diset middleware auth
func withUser(id uuid.UUID) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user_id", id.String())
		return c.Next()
	}
}

func intPtr(v int) *int { return &v }

func seedQuiz(t *testing.T, db *gorm.DB, passingScore int) model.QuizModel {
	t.Helper()
	quiz := model.QuizModel{
		QuizID:           uuid.New(),
		QuizTitle:        "Pemupukan Berimbang",
		QuizCategory:     "Budidaya",
		QuizPassingScore: passingScore,
		QuizIsActive:     true,
		QuizCreatedBy:    uuid.New(),
	}
	require.NoError(t, db.Create(&quiz).Error)
	return quiz
}

func seedQuestion(t *testing.T, db *gorm.DB, quizID uuid.UUID, order, correct int) model.QuizQuestionModel {
	t.Helper()
	q := model.QuizQuestionModel{
		QuizQuestionID:            uuid.New(),
		QuizQuestionQuizID:        quizID,
		QuizQuestionText:          fmt.Sprintf("Soal nomor %d", order+1),
		QuizQuestionOptions:       []string{"Urea", "KCl", "SP-36", "NPK"},
		QuizQuestionCorrectAnswer: correct,
		QuizQuestionOrder:         order,
	}
	require.NoError(t, db.Create(&q).Error)
	return q
}

// =============================
// Hasil attempt: hanya pemilik
// =============================

func TestGetAttemptResult_NonOwnerForbidden(t *testing.T) {
	db := newTestDB(t)
	owner, stranger := uuid.New(), uuid.New()

	quiz := seedQuiz(t, db, 60)
	question := seedQuestion(t, db, quiz.QuizID, 0, 0)

	attempt := model.QuizAttemptModel{
		QuizAttemptID:          uuid.New(),
		QuizAttemptQuizID:      quiz.QuizID,
		QuizAttemptUserID:      owner,
		QuizAttemptScore:       100,
		QuizAttemptPassed:      true,
		QuizAttemptStartedAt:   time.Now().UTC(),
		QuizAttemptCompletedAt: time.Now().UTC(),
	}
	require.NoError(t, attempt.SetAnswers(model.AttemptAnswers{question.QuizQuestionID.String(): 0}))
	require.NoError(t, db.Create(&attempt).Error)

	ctrl := NewQuizUserController(db)
	app := fiber.New()
	app.Get("/quizzes/attempts/:attempt_id", withUser(stranger), ctrl.GetAttemptResult)

	req := httptest.NewRequest("GET", "/quizzes/attempts/"+attempt.QuizAttemptID.String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestGetAttemptResult_OwnerSeesStoredSnapshot(t *testing.T) {
	db := newTestDB(t)
	owner := uuid.New()

	quiz := seedQuiz(t, db, 60)
	question := seedQuestion(t, db, quiz.QuizID, 0, 0)

	// skor tersimpan sengaja dibuat beda dari hitungan ulang jawaban —
	// endpoint hasil harus mengembalikan snapshot, bukan menghitung lagi
	attempt := model.QuizAttemptModel{
		QuizAttemptID:          uuid.New(),
		QuizAttemptQuizID:      quiz.QuizID,
		QuizAttemptUserID:      owner,
		QuizAttemptScore:       40,
		QuizAttemptPassed:      false,
		QuizAttemptStartedAt:   time.Now().UTC(),
		QuizAttemptCompletedAt: time.Now().UTC(),
	}
	require.NoError(t, attempt.SetAnswers(model.AttemptAnswers{question.QuizQuestionID.String(): 0}))
	require.NoError(t, db.Create(&attempt).Error)

	ctrl := NewQuizUserController(db)
	app := fiber.New()
	app.Get("/quizzes/attempts/:attempt_id", withUser(owner), ctrl.GetAttemptResult)

	req := httptest.NewRequest("GET", "/quizzes/attempts/"+attempt.QuizAttemptID.String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Success bool                 `json:"success"`
		Data    dto.AttemptResultDTO `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, 40, envelope.Data.QuizAttemptScore)
	assert.False(t, envelope.Data.QuizAttemptPassed)
	require.Len(t, envelope.Data.Questions, 1)
	assert.True(t, envelope.Data.Questions[0].IsCorrect)
}

// =============================
// Update kuis: replace-all soal
// =============================

func TestUpdateQuizByID_ReplaceAllPersistsSubmittedSet(t *testing.T) {
	db := newTestDB(t)
	quiz := seedQuiz(t, db, 60)
	for i := 0; i < 4; i++ {
		seedQuestion(t, db, quiz.QuizID, i, 0)
	}

	ctrl := NewQuizAdminController(db)
	app := fiber.New()
	app.Put("/quizzes/:id", withUser(quiz.QuizCreatedBy), ctrl.UpdateQuizByID)

	payload := dto.UpdateQuizRequest{
		QuizTitle:        "Pemupukan Berimbang (revisi)",
		QuizCategory:     "Budidaya",
		QuizPassingScore: intPtr(70),
		QuizQuestions: []dto.CreateQuizQuestionRequest{
			{
				QuizQuestionText:          "Pupuk dasar padi sawah?",
				QuizQuestionOptions:       []string{"Urea", "KCl", "SP-36", "NPK"},
				QuizQuestionCorrectAnswer: intPtr(3),
			},
			{
				QuizQuestionText:          "Kapan pemupukan susulan pertama?",
				QuizQuestionOptions:       []string{"7 HST", "14 HST", "30 HST", "60 HST"},
				QuizQuestionCorrectAnswer: intPtr(1),
			},
		},
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("PUT", "/quizzes/"+quiz.QuizID.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// yang tersisa PERSIS set yang disubmit, order segar 0..n-1
	var remaining []model.QuizQuestionModel
	require.NoError(t, db.
		Where("quiz_question_quiz_id = ?", quiz.QuizID).
		Order("quiz_question_order ASC").
		Find(&remaining).Error)
	require.Len(t, remaining, 2)
	assert.Equal(t, 0, remaining[0].QuizQuestionOrder)
	assert.Equal(t, "Pupuk dasar padi sawah?", remaining[0].QuizQuestionText)
	assert.Equal(t, 1, remaining[1].QuizQuestionOrder)
	assert.Equal(t, "Kapan pemupukan susulan pertama?", remaining[1].QuizQuestionText)
	assert.Equal(t, 1, remaining[1].QuizQuestionCorrectAnswer)
}

// =============================
// Create kuis: cek bentuk soal → 422
// =============================

func TestCreateQuiz_WhitespaceOptionRejectedAsValidationError(t *testing.T) {
	db := newTestDB(t)

	ctrl := NewQuizAdminController(db)
	app := fiber.New()
	app.Post("/quizzes", withUser(uuid.New()), ctrl.CreateQuiz)

	// opsi " " lolos tag `required` validator tapi gagal cek bentuk
	payload := dto.CreateQuizRequest{
		QuizTitle:        "Kuis cacat",
		QuizCategory:     "Budidaya",
		QuizPassingScore: intPtr(60),
		QuizQuestions: []dto.CreateQuizQuestionRequest{
			{
				QuizQuestionText:          "Soal dengan opsi kosong",
				QuizQuestionOptions:       []string{"A", "B", " ", "D"},
				QuizQuestionCorrectAnswer: intPtr(0),
			},
		},
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/quizzes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	// transaksi rollback: tidak ada kuis yang tersimpan
	var count int64
	require.NoError(t, db.Model(&model.QuizModel{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
