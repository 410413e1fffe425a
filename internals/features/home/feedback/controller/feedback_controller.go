// file: internals/features/home/feedback/controller/feedback_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agripadi_backend/internals/features/home/feedback/dto"
	"agripadi_backend/internals/features/home/feedback/model"
	helper "agripadi_backend/internals/helpers"
)

type FeedbackController struct {
	DB *gorm.DB
}

func NewFeedbackController(db *gorm.DB) *FeedbackController {
	return &FeedbackController{DB: db}
}

var validate = validator.New()

// =============================
// ➕ Kirim Feedback (farmer)
// =============================
func (ctrl *FeedbackController) CreateFeedback(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)
	if userID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.CreateFeedbackRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	feedback := model.FeedbackModel{
		FeedbackUserID:  userID,
		FeedbackSubject: body.FeedbackSubject,
		FeedbackMessage: body.FeedbackMessage,
		FeedbackRating:  body.FeedbackRating,
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(&feedback).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim feedback")
	}

	return helper.JsonCreated(c, "Terima kasih atas masukan Anda", dto.ToFeedbackDTO(feedback, ""))
}

// =============================
// 📄 Feedback Milik Sendiri (farmer)
// =============================
func (ctrl *FeedbackController) GetMyFeedback(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)
	if userID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var items []model.FeedbackModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("feedback_user_id = ?", userID).
		Order("feedback_created_at DESC").
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil feedback")
	}

	result := make([]dto.FeedbackDTO, 0, len(items))
	for _, f := range items {
		result = append(result, dto.ToFeedbackDTO(f, ""))
	}
	return helper.JsonOK(c, "OK", result)
}

// =============================
// 📄 Semua Feedback (admin, paginated)
// =============================
func (ctrl *FeedbackController) GetAllFeedback(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.FeedbackModel{}).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung feedback")
	}

	type feedbackRow struct {
		model.FeedbackModel
		UserName string `gorm:"column:user_name"`
	}
	var rows []feedbackRow
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.FeedbackModel{}).
		Select("feedback.*, users.user_name AS user_name").
		Joins("JOIN users ON users.user_id = feedback.feedback_user_id").
		Order("feedback_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil feedback")
	}

	result := make([]dto.FeedbackDTO, 0, len(rows))
	for _, r := range rows {
		result = append(result, dto.ToFeedbackDTO(r.FeedbackModel, r.UserName))
	}
	return helper.JsonList(c, "OK", result, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =============================
// ❌ Delete Feedback (admin)
// =============================
func (ctrl *FeedbackController) DeleteFeedbackByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Delete(&model.FeedbackModel{}, "feedback_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus feedback")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Feedback tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Feedback berhasil dihapus", fiber.Map{"feedback_id": id})
}
