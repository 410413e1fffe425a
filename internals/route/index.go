// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agripadi_backend/internals/constants"
	authMiddleware "agripadi_backend/internals/middlewares/auth"

	announcementRoute "agripadi_backend/internals/features/home/announcements/route"
	feedbackRoute "agripadi_backend/internals/features/home/feedback/route"
	tourRoute "agripadi_backend/internals/features/home/tours/route"
	postRoute "agripadi_backend/internals/features/community/posts/route"
	materialRoute "agripadi_backend/internals/features/learning/materials/route"
	quizRoute "agripadi_backend/internals/features/learning/quizzes/route"
	reportRoute "agripadi_backend/internals/features/reports/route"
	authRoute "agripadi_backend/internals/features/users/auth/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → tanpa token
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// PRIVATE (farmer & admin) → wajib JWT + akun aktif
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware(db))

	// ADMIN → JWT + role admin
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Akses khusus admin", constants.RoleAdmin),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Announcement routes...")
	announcementRoute.AnnouncementPublicRoutes(public, db)
	announcementRoute.AnnouncementAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Quiz routes...")
	quizRoute.QuizUserRoutes(private, db)
	quizRoute.QuizAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Learning Material routes...")
	materialRoute.MaterialUserRoutes(private, db)
	materialRoute.MaterialAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Community Post routes...")
	postRoute.PostUserRoutes(private, db)
	postRoute.PostAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Report routes...")
	reportRoute.ReportUserRoutes(private, db)
	reportRoute.ReportAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Tour routes...")
	tourRoute.TourUserRoutes(private, db)
	tourRoute.TourAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Feedback routes...")
	feedbackRoute.FeedbackUserRoutes(private, db)
	feedbackRoute.FeedbackAdminRoutes(admin, db)
}
