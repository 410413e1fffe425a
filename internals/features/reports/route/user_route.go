// file: internals/features/reports/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agripadi_backend/internals/features/reports/controller"
)

func ReportUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReportUserController(db)

	reports := router.Group("/reports")
	reports.Post("/", ctrl.CreateReport)
	reports.Get("/", ctrl.GetMyReports)
	reports.Get("/:id", ctrl.GetMyReportByID)
}
