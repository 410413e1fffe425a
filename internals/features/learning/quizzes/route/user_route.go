package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agripadi_backend/internals/features/learning/quizzes/controller"
)

func QuizUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewQuizUserController(db)

	quiz := api.Group("/quizzes")
	quiz.Get("/", ctrl.GetActiveQuizzes)              // 📄 kuis aktif + attempt terakhir
	quiz.Get("/:id/take", ctrl.GetQuizForTake)        // 📝 soal tanpa kunci
	quiz.Post("/:id/attempts", ctrl.SubmitAttempt)    // 🚀 submit jawaban
	quiz.Get("/attempts/:attempt_id", ctrl.GetAttemptResult) // 🔍 hasil (pemilik saja)
}
