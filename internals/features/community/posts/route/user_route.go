// file: internals/features/community/posts/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agripadi_backend/internals/features/community/posts/controller"
)

func PostUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPostUserController(db)

	posts := router.Group("/posts")
	posts.Post("/", ctrl.CreatePost)
	posts.Get("/", ctrl.GetApprovedPosts)
	posts.Get("/mine", ctrl.GetMyPosts)
	posts.Get("/:id", ctrl.GetPostByID)
	posts.Post("/:id/comments", ctrl.CreateComment)
}
