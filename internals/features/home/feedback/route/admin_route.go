// file: internals/features/home/feedback/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agripadi_backend/internals/features/home/feedback/controller"
)

func FeedbackAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFeedbackController(db)

	feedback := router.Group("/feedback")
	feedback.Get("/", ctrl.GetAllFeedback)
	feedback.Delete("/:id", ctrl.DeleteFeedbackByID)
}
