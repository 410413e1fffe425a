// file: internals/features/learning/quizzes/controller/quiz_user_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agripadi_backend/internals/features/learning/quizzes/dto"
	"agripadi_backend/internals/features/learning/quizzes/model"
	"agripadi_backend/internals/features/learning/quizzes/service"
	helper "agripadi_backend/internals/helpers"
)

type QuizUserController struct {
	DB             *gorm.DB
	AttemptService *service.QuizAttemptService
}

func NewQuizUserController(db *gorm.DB) *QuizUserController {
	return &QuizUserController{
		DB:             db,
		AttemptService: service.NewQuizAttemptService(db),
	}
}

// =============================
// 📄 List kuis aktif + attempt terakhir user
// =============================
func (ctrl *QuizUserController) GetActiveQuizzes(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)
	if userID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User ID tidak ditemukan di token")
	}

	var quizzes []model.QuizModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("quiz_is_active = ?", true).
		Order("quiz_created_at DESC").
		Find(&quizzes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kuis")
	}

	var attempts []model.QuizAttemptModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("quiz_attempt_user_id = ?", userID).
		Find(&attempts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat attempt")
	}
	latest := service.LatestAttemptPerQuiz(attempts)

	result := make([]dto.QuizListItemDTO, 0, len(quizzes))
	for _, q := range quizzes {
		item := dto.QuizListItemDTO{QuizDTO: dto.ToQuizDTO(q)}
		if a, ok := latest[q.QuizID]; ok {
			summary := dto.ToAttemptSummaryDTO(a)
			item.LatestAttempt = &summary
		}
		result = append(result, item)
	}

	return helper.JsonOK(c, "OK", result)
}

// =============================
// 📝 Ambil kuis untuk dikerjakan (kunci & pembahasan di-strip)
// =============================
func (ctrl *QuizUserController) GetQuizForTake(c *fiber.Ctx) error {
	quizID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var quiz model.QuizModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&quiz, "quiz_id = ?", quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kuis tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kuis")
	}
	if !quiz.QuizIsActive {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kuis sedang tidak aktif")
	}

	var questions []model.QuizQuestionModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("quiz_question_quiz_id = ?", quizID).
		Order("quiz_question_order ASC").
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil soal")
	}

	take := dto.QuizTakeDTO{
		QuizID:           quiz.QuizID.String(),
		QuizTitle:        quiz.QuizTitle,
		QuizDescription:  quiz.QuizDescription,
		QuizCategory:     quiz.QuizCategory,
		QuizPassingScore: quiz.QuizPassingScore,
		QuizTimeLimit:    quiz.QuizTimeLimit,
	}
	take.QuizQuestions = make([]dto.QuizQuestionPublicDTO, 0, len(questions))
	for _, q := range questions {
		take.QuizQuestions = append(take.QuizQuestions, dto.ToQuizQuestionPublicDTO(q))
	}

	return helper.JsonOK(c, "OK", take)
}

// =============================
// 🚀 Submit jawaban → attempt dinilai
// =============================
func (ctrl *QuizUserController) SubmitAttempt(c *fiber.Ctx) error {
	quizID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	userID := helper.GetUserUUID(c)
	if userID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User ID tidak ditemukan di token")
	}

	var body dto.SubmitAttemptRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	attempt, err := ctrl.AttemptService.SubmitAttempt(c.Context(), &service.SubmitAttemptInput{
		QuizID:    quizID,
		UserID:    userID,
		Answers:   body.QuizAttemptAnswers,
		StartedAt: body.QuizAttemptStartedAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuizNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Kuis tidak ditemukan")
		case errors.Is(err, service.ErrQuizNotActive):
			return helper.JsonError(c, fiber.StatusBadRequest, "Kuis sedang tidak aktif")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan attempt")
		}
	}

	return helper.JsonCreated(c, "Jawaban berhasil dikirim", dto.ToQuizAttemptDTO(*attempt))
}

// =============================
// 🔍 Hasil attempt (hanya pemilik)
// =============================
func (ctrl *QuizUserController) GetAttemptResult(c *fiber.Ctx) error {
	attemptID, err := uuid.Parse(c.Params("attempt_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	userID := helper.GetUserUUID(c)
	if userID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User ID tidak ditemukan di token")
	}

	var attempt model.QuizAttemptModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&attempt, "quiz_attempt_id = ?", attemptID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Attempt tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil attempt")
	}

	// Hard refusal untuk non-pemilik, bukan redirect
	if attempt.QuizAttemptUserID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Anda tidak berhak melihat hasil ini")
	}

	var quiz model.QuizModel
	if err := ctrl.DB.WithContext(c.Context()).
		Unscoped().
		First(&quiz, "quiz_id = ?", attempt.QuizAttemptQuizID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kuis")
	}

	var questions []model.QuizQuestionModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("quiz_question_quiz_id = ?", attempt.QuizAttemptQuizID).
		Order("quiz_question_order ASC").
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil soal")
	}

	answers, err := attempt.Answers()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca jawaban attempt")
	}

	// Skor yang tersimpan adalah snapshot — tidak dihitung ulang di sini.
	// Konten soal diambil live; kalau kuis sudah diedit, breakdown bisa
	// beda dengan snapshot (perilaku yang diterima).
	breakdown := service.BuildAttemptResult(questions, answers)

	result := dto.AttemptResultDTO{
		QuizAttemptDTO:   dto.ToQuizAttemptDTO(attempt),
		QuizTitle:        quiz.QuizTitle,
		QuizPassingScore: quiz.QuizPassingScore,
	}
	result.Questions = make([]dto.AttemptQuestionResultDTO, 0, len(breakdown))
	for _, r := range breakdown {
		result.Questions = append(result.Questions, dto.AttemptQuestionResultDTO{
			QuizQuestionID:            r.Question.QuizQuestionID.String(),
			QuizQuestionText:          r.Question.QuizQuestionText,
			QuizQuestionOptions:       append([]string(nil), r.Question.QuizQuestionOptions...),
			QuizQuestionCorrectAnswer: r.Question.QuizQuestionCorrectAnswer,
			QuizQuestionExplanation:   r.Question.QuizQuestionExplanation,
			SelectedAnswer:            r.Selected,
			IsCorrect:                 r.IsCorrect,
		})
	}

	return helper.JsonOK(c, "OK", result)
}
