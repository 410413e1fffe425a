// file: internals/features/home/tours/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agripadi_backend/internals/features/home/tours/controller"
)

func TourAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTourAdminController(db)
	userCtrl := controller.NewTourUserController(db)

	tours := router.Group("/tours")
	tours.Post("/", ctrl.CreateTour)
	tours.Get("/", userCtrl.GetTours)
	tours.Get("/:id", userCtrl.GetTourByID)
	tours.Put("/:id", ctrl.UpdateTourByID)
	tours.Delete("/:id", ctrl.DeleteTourByID)
}
