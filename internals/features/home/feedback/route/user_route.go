// file: internals/features/home/feedback/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agripadi_backend/internals/features/home/feedback/controller"
)

func FeedbackUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFeedbackController(db)

	feedback := router.Group("/feedback")
	feedback.Post("/", ctrl.CreateFeedback)
	feedback.Get("/", ctrl.GetMyFeedback)
}
