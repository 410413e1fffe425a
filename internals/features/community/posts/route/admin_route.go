// file: internals/features/community/posts/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agripadi_backend/internals/features/community/posts/controller"
)

func PostAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPostAdminController(db)

	posts := router.Group("/posts")
	posts.Get("/", ctrl.GetAllPosts)
	posts.Patch("/:id/approval", ctrl.SetPostApproval)
	posts.Delete("/comments/:comment_id", ctrl.DeleteCommentByID)
	posts.Delete("/:id", ctrl.DeletePostByID)
}
