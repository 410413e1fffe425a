package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agripadi_backend/internals/features/learning/quizzes/controller"
)

func QuizAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewQuizAdminController(db)

	quiz := api.Group("/quizzes")
	quiz.Post("/", ctrl.CreateQuiz)        // ➕ buat kuis + soal
	quiz.Get("/", ctrl.GetAllQuizzes)      // 📄 semua kuis + stats
	quiz.Get("/:id", ctrl.GetQuizByID)     // 🔍 form edit (kunci ikut)
	quiz.Put("/:id", ctrl.UpdateQuizByID)  // ✏️ replace-all soal
	quiz.Delete("/:id", ctrl.DeleteQuizByID)
}
