// file: internals/features/reports/controller/report_admin_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agripadi_backend/internals/features/reports/dto"
	"agripadi_backend/internals/features/reports/model"
	helper "agripadi_backend/internals/helpers"
)

type ReportAdminController struct {
	DB *gorm.DB
}

func NewReportAdminController(db *gorm.DB) *ReportAdminController {
	return &ReportAdminController{DB: db}
}

// =============================
// 📄 List Semua Laporan (filter ?status=)
// =============================
func (ctrl *ReportAdminController) GetAllReports(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	status := c.Query("status")
	if status != "" && !model.IsValidReportStatus(status) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Status tidak valid")
	}

	countQuery := ctrl.DB.WithContext(c.Context()).Model(&model.ReportModel{})
	if status != "" {
		countQuery = countQuery.Where("report_status = ?", status)
	}
	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung laporan")
	}

	type reportRow struct {
		model.ReportModel
		UserName string `gorm:"column:user_name"`
	}
	query := ctrl.DB.WithContext(c.Context()).
		Model(&model.ReportModel{}).
		Select("reports.*, users.user_name AS user_name").
		Joins("JOIN users ON users.user_id = reports.report_user_id")
	if status != "" {
		query = query.Where("report_status = ?", status)
	}

	var rows []reportRow
	if err := query.
		Order("report_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil laporan")
	}

	result := make([]dto.ReportDTO, 0, len(rows))
	for _, r := range rows {
		result = append(result, dto.ToReportDTO(r.ReportModel, r.UserName))
	}
	return helper.JsonList(c, "OK", result, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =============================
// 🔍 Detail Laporan + Timeline (admin bisa lihat semua)
// =============================
func (ctrl *ReportAdminController) GetReportByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var report model.ReportModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&report, "report_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Laporan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil laporan")
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

// =============================
// 💬 Respon Laporan (1 transaksi: entry timeline + update status)
// =============================
func (ctrl *ReportAdminController) RespondToReport(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	adminID := helper.GetUserUUID(c)
	if adminID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.RespondReportRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	response := model.ReportResponseModel{
		ReportResponseReportID: id,
		ReportResponseAdminID:  adminID,
		ReportResponseMessage:  body.ReportResponseMessage,
		ReportResponseStatus:   body.ReportResponseStatus,
	}

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var report model.ReportModel
		if err := tx.First(&report, "report_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Create(&response).Error; err != nil {
			return err
		}
		return tx.Model(&model.ReportModel{}).
			Where("report_id = ?", id).
			Update("report_status", body.ReportResponseStatus).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Laporan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan respon")
	}

	return helper.JsonCreated(c, "Respon berhasil dikirim", dto.ToReportResponseDTO(response, ""))
}

// =============================
// ❌ Delete Laporan (timeline ikut terhapus)
// =============================
func (ctrl *ReportAdminController) DeleteReportByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.ReportResponseModel{}, "report_response_report_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.ReportModel{}, "report_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Laporan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus laporan")
	}

	return helper.JsonDeleted(c, "Laporan berhasil dihapus", fiber.Map{"report_id": id})
}
