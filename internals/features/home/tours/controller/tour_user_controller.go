// file: internals/features/home/tours/controller/tour_user_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agripadi_backend/internals/features/home/tours/dto"
	"agripadi_backend/internals/features/home/tours/model"
	helper "agripadi_backend/internals/helpers"
)

type TourUserController struct {
	DB *gorm.DB
}

func NewTourUserController(db *gorm.DB) *TourUserController {
	return &TourUserController{DB: db}
}

// =============================
// 📄 List Tur
// =============================
func (ctrl *TourUserController) GetTours(c *fiber.Ctx) error {
	var tours []model.TourModel
	if err := ctrl.DB.WithContext(c.Context()).
		Order("tour_created_at DESC").
		Find(&tours).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tur")
	}

	result := make([]dto.TourDTO, 0, len(tours))
	for _, t := range tours {
		result = append(result, dto.ToTourDTO(t))
	}
	return helper.JsonOK(c, "OK", result)
}

// =============================
// 🔍 Detail Tur
// =============================
func (ctrl *TourUserController) GetTourByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var tour model.TourModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&tour, "tour_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tur tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tur")
	}

	return helper.JsonOK(c, "OK", dto.ToTourDTO(tour))
}
