// file: internals/features/learning/materials/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agripadi_backend/internals/features/learning/materials/controller"
)

func MaterialUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLearningMaterialUserController(db)

	materials := router.Group("/materials")
	materials.Get("/", ctrl.GetMaterials)
	materials.Get("/categories", ctrl.GetCategories)
	materials.Get("/:id", ctrl.GetMaterialByID)
}
