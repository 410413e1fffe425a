package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agripadi_backend/internals/features/users/auth/controller"
	authMiddleware "agripadi_backend/internals/middlewares"
	jwtMiddleware "agripadi_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", authMiddleware.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", authMiddleware.LoginRateLimiter(), ctrl.Login)
	auth.Get("/me", jwtMiddleware.AuthMiddleware(db), ctrl.Me)
}
