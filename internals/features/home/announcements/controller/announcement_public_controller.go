// file: internals/features/home/announcements/controller/announcement_public_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agripadi_backend/internals/features/home/announcements/dto"
	"agripadi_backend/internals/features/home/announcements/model"
	helper "agripadi_backend/internals/helpers"
)

type AnnouncementPublicController struct {
	DB *gorm.DB
}

func NewAnnouncementPublicController(db *gorm.DB) *AnnouncementPublicController {
	return &AnnouncementPublicController{DB: db}
}

// =============================
// 📄 List Pengumuman Terbit (publik, terbaru dulu)
// =============================
func (ctrl *AnnouncementPublicController) GetPublishedAnnouncements(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 50)

	query := ctrl.DB.WithContext(c.Context()).
		Model(&model.AnnouncementModel{}).
		Where("announcement_is_published = ?", true)

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
// 🔍 Detail Pengumuman Terbit
// =============================
func (ctrl *AnnouncementPublicController) GetPublishedAnnouncementByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var announcement model.AnnouncementModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("announcement_is_published = ?", true).
		First(&announcement, "announcement_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengumuman tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}

	return helper.JsonOK(c, "OK", dto.ToAnnouncementDTO(announcement))
}
