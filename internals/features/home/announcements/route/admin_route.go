// file: internals/features/home/announcements/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agripadi_backend/internals/features/home/announcements/controller"
)

func AnnouncementAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAnnouncementAdminController(db)

	announcements := router.Group("/announcements")
	announcements.Post("/", ctrl.CreateAnnouncement)
	announcements.Get("/", ctrl.GetAllAnnouncements)
	announcements.Put("/:id", ctrl.UpdateAnnouncementByID)
	announcements.Delete("/:id", ctrl.DeleteAnnouncementByID)
}
