// file: internals/features/learning/materials/controller/learning_material_admin_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agripadi_backend/internals/features/learning/materials/dto"
	"agripadi_backend/internals/features/learning/materials/model"
	helper "agripadi_backend/internals/helpers"
)

type LearningMaterialAdminController struct {
	DB *gorm.DB
}

func NewLearningMaterialAdminController(db *gorm.DB) *LearningMaterialAdminController {
	return &LearningMaterialAdminController{DB: db}
}

var validate = validator.New()

// =============================
// ➕ Create Materi
// =============================
func (ctrl *LearningMaterialAdminController) CreateMaterial(c *fiber.Ctx) error {
	var body dto.CreateLearningMaterialRequest
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

	material := model.LearningMaterialModel{
		LearningMaterialTitle:       strings.TrimSpace(body.LearningMaterialTitle),
		LearningMaterialDescription: body.LearningMaterialDescription,
		LearningMaterialCategory:    body.LearningMaterialCategory,
		LearningMaterialType:        body.LearningMaterialType,
		LearningMaterialFileURL:     body.LearningMaterialFileURL,
		LearningMaterialCreatedBy:   adminID,
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(&material).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat materi")
	}

	return helper.JsonCreated(c, "Materi berhasil dibuat", dto.ToLearningMaterialDTO(material))
}

// =============================
// 📄 Get All Materi (admin)
// =============================
func (ctrl *LearningMaterialAdminController) GetAllMaterials(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	query := ctrl.DB.WithContext(c.Context()).Model(&model.LearningMaterialModel{})
	if category := c.Query("category"); category != "" {
		query = query.Where("learning_material_category = ?", category)
	}
	if mtype := c.Query("type"); mtype != "" {
		query = query.Where("learning_material_type = ?", mtype)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung materi")
	}

	var materials []model.LearningMaterialModel
	if err := query.
		Order("learning_material_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&materials).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil materi")
	}

	result := make([]dto.LearningMaterialDTO, 0, len(materials))
	for _, m := range materials {
		result = append(result, dto.ToLearningMaterialDTO(m))
	}
	return helper.JsonList(c, "OK", result, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =============================
// ✏️ Update Materi
// =============================
func (ctrl *LearningMaterialAdminController) UpdateMaterialByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.UpdateLearningMaterialRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var material model.LearningMaterialModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&material, "learning_material_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Materi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil materi")
	}

	material.LearningMaterialTitle = strings.TrimSpace(body.LearningMaterialTitle)
	material.LearningMaterialDescription = body.LearningMaterialDescription
	material.LearningMaterialCategory = body.LearningMaterialCategory
	material.LearningMaterialType = body.LearningMaterialType
	material.LearningMaterialFileURL = body.LearningMaterialFileURL

	if err := ctrl.DB.WithContext(c.Context()).Save(&material).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui materi")
	}

	return helper.JsonUpdated(c, "Materi berhasil diperbarui", dto.ToLearningMaterialDTO(material))
}

// =============================
// ❌ Delete Materi
// =============================
func (ctrl *LearningMaterialAdminController) DeleteMaterialByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Delete(&model.LearningMaterialModel{}, "learning_material_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus materi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Materi tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Materi berhasil dihapus", fiber.Map{"learning_material_id": id})
}
