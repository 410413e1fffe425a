// file: internals/features/learning/quizzes/service/quiz_scoring_service.go
package service

import (
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"

	"agripadi_backend/internals/features/learning/quizzes/model"
)

// ScoreAnswers hitung hasil satu submission.
//
// Aturan:
//   - benar = jawaban user PERSIS sama dengan index kunci soal
//   - soal tanpa key di map = tidak dijawab = salah (index 0 yang dikirim
//     eksplisit tetap dihitung sebagai jawaban, bukan "kosong")
//   - score = round(100 × benar / total), pembulatan .5 menjauh dari nol
//     (math.Round)
//   - kuis tanpa soal seharusnya tidak mungkin lolos validator; tetap
//     dijaga di sini supaya tidak division-by-zero → skor 0
func ScoreAnswers(questions []model.QuizQuestionModel, answers model.AttemptAnswers) (correctCount int, score int) {
	if len(questions) == 0 {
		return 0, 0
	}
	for _, q := range questions {
		selected, answered := answers[q.QuizQuestionID.String()]
		if answered && selected == q.QuizQuestionCorrectAnswer {
			correctCount++
		}
	}
	score = int(math.Round(float64(correctCount) * 100 / float64(len(questions))))
	return correctCount, score
}

// IsPassed: skor tepat di ambang tetap lulus (boundary inklusif)
func IsPassed(score, passingScore int) bool {
	return score >= passingScore
}

// QuestionResult: breakdown satu soal untuk review hasil
type QuestionResult struct {
	Question  model.QuizQuestionModel
	Selected  *int // nil = tidak dijawab
	IsCorrect bool
}

// BuildAttemptResult susun breakdown per soal dari snapshot jawaban.
// Read-only: skor tersimpan tidak pernah dihitung ulang di sini.
// Key jawaban yang soalnya sudah dihapus (efek replace-all edit) tidak
// punya soal untuk dirender — otomatis terlewati karena iterasi per soal
// yang masih ada.
func BuildAttemptResult(questions []model.QuizQuestionModel, answers model.AttemptAnswers) []QuestionResult {
	sorted := append([]model.QuizQuestionModel(nil), questions...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].QuizQuestionOrder < sorted[j].QuizQuestionOrder
	})

	out := make([]QuestionResult, 0, len(sorted))
	for _, q := range sorted {
		r := QuestionResult{Question: q}
		if selected, ok := answers[q.QuizQuestionID.String()]; ok {
			v := selected
			r.Selected = &v
			r.IsCorrect = selected == q.QuizQuestionCorrectAnswer
		}
		out = append(out, r)
	}
	return out
}

// LatestAttemptPerQuiz pilih attempt terbaru per kuis untuk satu user.
// Terbaru = completed_at paling akhir; kalau timestamp seri, id yang
// lebih besar (urutan string uuid) menang — aturan stabil terdokumentasi.
func LatestAttemptPerQuiz(attempts []model.QuizAttemptModel) map[uuid.UUID]model.QuizAttemptModel {
	latest := make(map[uuid.UUID]model.QuizAttemptModel, len(attempts))
	for _, a := range attempts {
		cur, ok := latest[a.QuizAttemptQuizID]
		if !ok || newerAttempt(a, cur) {
			latest[a.QuizAttemptQuizID] = a
		}
	}
	return latest
}

func newerAttempt(a, b model.QuizAttemptModel) bool {
	if a.QuizAttemptCompletedAt.After(b.QuizAttemptCompletedAt) {
		return true
	}
	if a.QuizAttemptCompletedAt.Before(b.QuizAttemptCompletedAt) {
		return false
	}
	return strings.Compare(a.QuizAttemptID.String(), b.QuizAttemptID.String()) > 0
}
