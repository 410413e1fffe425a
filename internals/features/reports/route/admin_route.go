// file: internals/features/reports/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agripadi_backend/internals/features/reports/controller"
)

func ReportAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReportAdminController(db)

	reports := router.Group("/reports")
	reports.Get("/", ctrl.GetAllReports)
	reports.Get("/:id", ctrl.GetReportByID)
	reports.Post("/:id/responses", ctrl.RespondToReport)
	reports.Delete("/:id", ctrl.DeleteReportByID)
}
