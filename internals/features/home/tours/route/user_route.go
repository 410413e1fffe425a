// file: internals/features/home/tours/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agripadi_backend/internals/features/home/tours/controller"
)

func TourUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTourUserController(db)

	tours := router.Group("/tours")
	tours.Get("/", ctrl.GetTours)
	tours.Get("/:id", ctrl.GetTourByID)
}
