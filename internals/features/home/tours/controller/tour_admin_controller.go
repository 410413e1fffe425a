// file: internals/features/home/tours/controller/tour_admin_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agripadi_backend/internals/features/home/tours/dto"
	"agripadi_backend/internals/features/home/tours/model"
	helper "agripadi_backend/internals/helpers"
)

type TourAdminController struct {
	DB *gorm.DB
}

func NewTourAdminController(db *gorm.DB) *TourAdminController {
	return &TourAdminController{DB: db}
}

var validate = validator.New()

// =============================
// ➕ Create Tur Virtual (multipart, gambar wajib)
// =============================
func (ctrl *TourAdminController) CreateTour(c *fiber.Ctx) error {
	adminID := helper.GetUserUUID(c)
	if adminID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.CreateTourRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	fh, err := c.FormFile("tour_image")
	if err != nil || fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gambar tur wajib diunggah")
	}
	imageURL, err := helper.SaveImageAsWebP("tours", fh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gambar tidak valid: "+err.Error())
	}

	tour := model.TourModel{
		TourTitle:       strings.TrimSpace(body.TourTitle),
		TourDescription: body.TourDescription,
		TourLocation:    body.TourLocation,
		TourImageURL:    imageURL,
		TourEmbedURL:    body.TourEmbedURL,
		TourCreatedBy:   adminID,
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(&tour).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat tur")
	}

	return helper.JsonCreated(c, "Tur berhasil dibuat", dto.ToTourDTO(tour))
}

// =============================
// ✏️ Update Tur (gambar baru opsional)
// =============================
func (ctrl *TourAdminController) UpdateTourByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.UpdateTourRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var tour model.TourModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&tour, "tour_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tur tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tur")
	}

	tour.TourTitle = strings.TrimSpace(body.TourTitle)
	tour.TourDescription = body.TourDescription
	tour.TourLocation = body.TourLocation
	tour.TourEmbedURL = body.TourEmbedURL

	if fh, err := c.FormFile("tour_image"); err == nil && fh != nil {
		imageURL, err := helper.SaveImageAsWebP("tours", fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Gambar tidak valid: "+err.Error())
		}
		tour.TourImageURL = imageURL
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(&tour).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui tur")
	}

	return helper.JsonUpdated(c, "Tur berhasil diperbarui", dto.ToTourDTO(tour))
}

// =============================
// ❌ Delete Tur
// =============================
func (ctrl *TourAdminController) DeleteTourByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Delete(&model.TourModel{}, "tour_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus tur")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Tur tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Tur berhasil dihapus", fiber.Map{"tour_id": id})
}
