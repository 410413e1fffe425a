// file: internals/features/reports/controller/report_user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agripadi_backend/internals/features/reports/dto"
	"agripadi_backend/internals/features/reports/model"
	helper "agripadi_backend/internals/helpers"
)

type ReportUserController struct {
	DB *gorm.DB
}

func NewReportUserController(db *gorm.DB) *ReportUserController {
	return &ReportUserController{DB: db}
}

var validate = validator.New()

// =============================
// ➕ Create Laporan (multipart, foto opsional)
// =============================
func (ctrl *ReportUserController) CreateReport(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)
	if userID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.CreateReportRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	report := model.ReportModel{
		ReportUserID:      userID,
		ReportTitle:       strings.TrimSpace(body.ReportTitle),
		ReportDescription: body.ReportDescription,
		ReportLocation:    body.ReportLocation,
		ReportStatus:      model.ReportStatusPending,
	}

	if fh, err := c.FormFile("report_image"); err == nil && fh != nil {
		imageURL, err := helper.SaveImageAsWebP("reports", fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Gambar tidak valid: "+err.Error())
		}
		report.ReportImageURL = &imageURL
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(&report).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat laporan")
	}

	return helper.JsonCreated(c, "Laporan berhasil dikirim", dto.ToReportDTO(report, ""))
}

// =============================
// 📄 List Laporan Milik Sendiri
// =============================
func (ctrl *ReportUserController) GetMyReports(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)
	if userID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var reports []model.ReportModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("report_user_id = ?", userID).
		Order("report_created_at DESC").
		Find(&reports).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil laporan")
	}

	result := make([]dto.ReportDTO, 0, len(reports))
	for _, r := range reports {
		result = append(result, dto.ToReportDTO(r, ""))
	}
	return helper.JsonOK(c, "OK", result)
}

// =============================
// 🔍 Detail Laporan + Timeline (hanya pemilik; 403 untuk yang lain)
// =============================
func (ctrl *ReportUserController) GetMyReportByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	userID := helper.GetUserUUID(c)
	if userID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var report model.ReportModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&report, "report_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Laporan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil laporan")
	}

	if report.ReportUserID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Anda tidak berhak melihat laporan ini")
	}

	responses, err := loadReportTimeline(ctrl.DB, c, id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil timeline respon")
	}

	return helper.JsonOK(c, "OK", dto.ReportWithTimelineDTO{
		ReportDTO: dto.ToReportDTO(report, ""),
		Responses: responses,
	})
}

// loadReportTimeline ambil respon admin berurutan (lama → baru) + nama admin
func loadReportTimeline(db *gorm.DB, c *fiber.Ctx, reportID uuid.UUID) ([]dto.ReportResponseDTO, error) {
	type responseRow struct {
		model.ReportResponseModel
		AdminName string `gorm:"column:admin_name"`
	}
	var rows []responseRow
	if err := db.WithContext(c.Context()).
		Model(&model.ReportResponseModel{}).
		Select("report_responses.*, users.user_name AS admin_name").
		Joins("JOIN users ON users.user_id = report_responses.report_response_admin_id").
		Where("report_response_report_id = ?", reportID).
		Order("report_response_created_at ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]dto.ReportResponseDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToReportResponseDTO(r.ReportResponseModel, r.AdminName))
	}
	return out, nil
}
