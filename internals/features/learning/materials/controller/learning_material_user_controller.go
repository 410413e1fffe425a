// file: internals/features/learning/materials/controller/learning_material_user_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agripadi_backend/internals/features/learning/materials/dto"
	"agripadi_backend/internals/features/learning/materials/model"
	helper "agripadi_backend/internals/helpers"
)

type LearningMaterialUserController struct {
	DB *gorm.DB
}

func NewLearningMaterialUserController(db *gorm.DB) *LearningMaterialUserController {
	return &LearningMaterialUserController{DB: db}
}

// =============================
// 📄 List Materi (farmer, filter kategori/tipe)
// =============================
func (ctrl *LearningMaterialUserController) GetMaterials(c *fiber.Ctx) error {
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
// 🔍 Detail Materi
// =============================
func (ctrl *LearningMaterialUserController) GetMaterialByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var material model.LearningMaterialModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&material, "learning_material_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Materi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil materi")
	}

	return helper.JsonOK(c, "OK", dto.ToLearningMaterialDTO(material))
}

// =============================
// 🏷️ Daftar Kategori (distinct, non-null)
// =============================
func (ctrl *LearningMaterialUserController) GetCategories(c *fiber.Ctx) error {
	var categories []string
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.LearningMaterialModel{}).
		Where("learning_material_category IS NOT NULL").
		Distinct().
		Order("learning_material_category ASC").
		Pluck("learning_material_category", &categories).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kategori")
	}

	return helper.JsonOK(c, "OK", categories)
}
