// file: internals/features/learning/materials/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agripadi_backend/internals/features/learning/materials/controller"
)

func MaterialAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLearningMaterialAdminController(db)
	userCtrl := controller.NewLearningMaterialUserController(db)

	materials := router.Group("/materials")
	materials.Post("/", ctrl.CreateMaterial)
	materials.Get("/", ctrl.GetAllMaterials)
	materials.Get("/categories", userCtrl.GetCategories)
	materials.Get("/:id", userCtrl.GetMaterialByID)
	materials.Put("/:id", ctrl.UpdateMaterialByID)
	materials.Delete("/:id", ctrl.DeleteMaterialByID)
}
