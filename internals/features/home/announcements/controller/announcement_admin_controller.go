// file: internals/features/home/announcements/controller/announcement_admin_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agripadi_backend/internals/features/home/announcements/dto"
	"agripadi_backend/internals/features/home/announcements/model"
	helper "agripadi_backend/internals/helpers"
)

type AnnouncementAdminController struct {
	DB *gorm.DB
}

func NewAnnouncementAdminController(db *gorm.DB) *AnnouncementAdminController {
	return &AnnouncementAdminController{DB: db}
}

var validate = validator.New()

// =============================
// ➕ Create Pengumuman
// =============================
func (ctrl *AnnouncementAdminController) CreateAnnouncement(c *fiber.Ctx) error {
	var body dto.CreateAnnouncementRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	adminID := helper.GetUserUUID(c)
	if adminID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	announcement := model.AnnouncementModel{
		AnnouncementTitle:     strings.TrimSpace(body.AnnouncementTitle),
		AnnouncementContent:   body.AnnouncementContent,
		AnnouncementImageURL:  body.AnnouncementImageURL,
		AnnouncementCreatedBy: adminID,
	}
	if body.AnnouncementIsPublished != nil {
		announcement.AnnouncementIsPublished = *body.AnnouncementIsPublished
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(&announcement).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat pengumuman")
	}

	return helper.JsonCreated(c, "Pengumuman berhasil dibuat", dto.ToAnnouncementDTO(announcement))
}

// =============================
// 📄 Get All Pengumuman (admin, termasuk draft)
// =============================
func (ctrl *AnnouncementAdminController) GetAllAnnouncements(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	query := ctrl.DB.WithContext(c.Context()).Model(&model.AnnouncementModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pengumuman")
	}

	var announcements []model.AnnouncementModel
	if err := query.
		Order("announcement_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&announcements).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}

	result := make([]dto.AnnouncementDTO, 0, len(announcements))
	for _, a := range announcements {
		result = append(result, dto.ToAnnouncementDTO(a))
	}
	return helper.JsonList(c, "OK", result, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =============================
// ✏️ Update Pengumuman
// =============================
func (ctrl *AnnouncementAdminController) UpdateAnnouncementByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.UpdateAnnouncementRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var announcement model.AnnouncementModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&announcement, "announcement_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengumuman tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}

	announcement.AnnouncementTitle = strings.TrimSpace(body.AnnouncementTitle)
	announcement.AnnouncementContent = body.AnnouncementContent
	announcement.AnnouncementImageURL = body.AnnouncementImageURL
	if body.AnnouncementIsPublished != nil {
		announcement.AnnouncementIsPublished = *body.AnnouncementIsPublished
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(&announcement).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui pengumuman")
	}

	return helper.JsonUpdated(c, "Pengumuman berhasil diperbarui", dto.ToAnnouncementDTO(announcement))
}

// =============================
// ❌ Delete Pengumuman
// =============================
func (ctrl *AnnouncementAdminController) DeleteAnnouncementByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Delete(&model.AnnouncementModel{}, "announcement_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pengumuman")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Pengumuman tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Pengumuman berhasil dihapus", fiber.Map{"announcement_id": id})
}
