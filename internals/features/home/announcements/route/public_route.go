// file: internals/features/home/announcements/route/public_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agripadi_backend/internals/features/home/announcements/controller"
)

func AnnouncementPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAnnouncementPublicController(db)

	announcements := router.Group("/announcements")
	announcements.Get("/", ctrl.GetPublishedAnnouncements)
	announcements.Get("/:id", ctrl.GetPublishedAnnouncementByID)
}
