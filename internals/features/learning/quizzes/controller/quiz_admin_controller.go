// file: internals/features/learning/quizzes/controller/quiz_admin_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agripadi_backend/internals/features/learning/quizzes/dto"
	"agripadi_backend/internals/features/learning/quizzes/model"
	helper "agripadi_backend/internals/helpers"
)

type QuizAdminController struct {
	DB *gorm.DB
}

func NewQuizAdminController(db *gorm.DB) *QuizAdminController {
	return &QuizAdminController{DB: db}
}

var validate = validator.New()

// =============================
// ➕ Create Quiz (+ soal, atomik)
// =============================
func (ctrl *QuizAdminController) CreateQuiz(c *fiber.Ctx) error {
	var body dto.CreateQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	adminID := helper.GetUserUUID(c)
	if adminID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User ID tidak ditemukan di token")
	}

	isActive := true
	if body.QuizIsActive != nil {
		isActive = *body.QuizIsActive
	}

	quiz := model.QuizModel{
		QuizTitle:        body.QuizTitle,
		QuizDescription:  body.QuizDescription,
		QuizCategory:     body.QuizCategory,
		QuizMaterialID:   body.QuizMaterialID,
		QuizPassingScore: *body.QuizPassingScore,
		QuizTimeLimit:    body.QuizTimeLimit,
		QuizIsActive:     isActive,
		QuizCreatedBy:    adminID,
	}

	// all-or-nothing: kuis + semua soal dalam satu transaksi.
	// Soal yang lolos tag validator tapi gagal cek bentuk (mis. opsi
	// whitespace) tetap harus keluar sebagai 422, bukan 500.
	var shapeErr error
	err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&quiz).Error; err != nil {
			return err
		}
		questions := dto.ToQuizQuestionModels(quiz.QuizID, body.QuizQuestions)
		for i := range questions {
			if err := questions[i].ValidateShape(); err != nil {
				shapeErr = err
				return err
			}
		}
		return tx.Create(&questions).Error
	})
	if shapeErr != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"quiz_questions": {shapeErr.Error()},
		})
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kuis")
	}

	return helper.JsonCreated(c, "Kuis berhasil dibuat", dto.ToQuizDTO(quiz))
}

// =============================
// 📄 Get All Quizzes (+stats & kategori materi)
// =============================
func (ctrl *QuizAdminController) GetAllQuizzes(c *fiber.Ctx) error {
	type quizRow struct {
		model.QuizModel
		QuestionCount int64 `gorm:"column:question_count"`
		AttemptCount  int64 `gorm:"column:attempt_count"`
	}

	var rows []quizRow
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.QuizModel{}).
		Select(`quizzes.*,
			(SELECT COUNT(*) FROM quiz_questions qq WHERE qq.quiz_question_quiz_id = quizzes.quiz_id) AS question_count,
			(SELECT COUNT(*) FROM quiz_attempts qa WHERE qa.quiz_attempt_quiz_id = quizzes.quiz_id) AS attempt_count`).
		Order("quiz_created_at DESC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kuis")
	}

	result := make([]dto.QuizWithStatsDTO, 0, len(rows))
	for _, r := range rows {
		result = append(result, dto.QuizWithStatsDTO{
			QuizDTO:       dto.ToQuizDTO(r.QuizModel),
			QuestionCount: r.QuestionCount,
			AttemptCount:  r.AttemptCount,
		})
	}

	// Kategori dari katalog materi → vocabulary filter di halaman admin
	var categories []string
	if err := ctrl.DB.WithContext(c.Context()).
		Table("learning_materials").
		Where("learning_material_category IS NOT NULL AND learning_material_deleted_at IS NULL").
		Distinct().
		Pluck("learning_material_category", &categories).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kategori materi")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"quizzes":    result,
		"categories": categories,
	})
}

// =============================
// 🔍 Get Quiz By ID (form edit: soal + kunci ikut)
// =============================
func (ctrl *QuizAdminController) GetQuizByID(c *fiber.Ctx) error {
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

	var questions []model.QuizQuestionModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("quiz_question_quiz_id = ?", quizID).
		Order("quiz_question_order ASC").
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil soal")
	}

	out := dto.QuizWithQuestionsDTO{QuizDTO: dto.ToQuizDTO(quiz)}
	out.QuizQuestions = make([]dto.QuizQuestionDTO, 0, len(questions))
	for _, q := range questions {
		out.QuizQuestions = append(out.QuizQuestions, dto.ToQuizQuestionDTO(q))
	}

	return helper.JsonOK(c, "OK", out)
}

// =============================
// ✏️ Update Quiz (replace-all soal)
// =============================
// Semua soal lama dihapus lalu set baru diinsert dengan order segar —
// soal yang tidak ada di payload hilang; attempt lama tetap utuh
// (snapshot jawabannya bisa menunjuk soal yang sudah tidak ada).
func (ctrl *QuizAdminController) UpdateQuizByID(c *fiber.Ctx) error {
	quizID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.UpdateQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var quiz model.QuizModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&quiz, "quiz_id = ?", quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kuis tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kuis")
	}

	quiz.QuizTitle = body.QuizTitle
	quiz.QuizDescription = body.QuizDescription
	quiz.QuizCategory = body.QuizCategory
	quiz.QuizMaterialID = body.QuizMaterialID
	quiz.QuizPassingScore = *body.QuizPassingScore
	quiz.QuizTimeLimit = body.QuizTimeLimit
	if body.QuizIsActive != nil {
		quiz.QuizIsActive = *body.QuizIsActive
	}

	var shapeErr error
	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&quiz).Error; err != nil {
			return err
		}
		if err := tx.
			Where("quiz_question_quiz_id = ?", quiz.QuizID).
			Delete(&model.QuizQuestionModel{}).Error; err != nil {
			return err
		}
		questions := dto.ToQuizQuestionModels(quiz.QuizID, body.QuizQuestions)
		for i := range questions {
			if err := questions[i].ValidateShape(); err != nil {
				shapeErr = err
				return err
			}
		}
		return tx.Create(&questions).Error
	})
	if shapeErr != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"quiz_questions": {shapeErr.Error()},
		})
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui kuis")
	}

	return helper.JsonUpdated(c, "Kuis berhasil diperbarui", dto.ToQuizDTO(quiz))
}

// =============================
// ❌ Delete Quiz (cascade soal + attempt)
// =============================
func (ctrl *QuizAdminController) DeleteQuizByID(c *fiber.Ctx) error {
	quizID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("quiz_attempt_quiz_id = ?", quizID).
			Delete(&model.QuizAttemptModel{}).Error; err != nil {
			return err
		}
		if err := tx.
			Where("quiz_question_quiz_id = ?", quizID).
			Delete(&model.QuizQuestionModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.QuizModel{}, "quiz_id = ?", quizID).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kuis")
	}

	return helper.JsonDeleted(c, "Kuis berhasil dihapus", fiber.Map{"quiz_id": quizID})
}
