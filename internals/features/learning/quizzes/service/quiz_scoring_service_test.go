package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"agripadi_backend/internals/features/learning/quizzes/model"
)

func buildQuestions(correct []int) []model.QuizQuestionModel {
	out := make([]model.QuizQuestionModel, 0, len(correct))
	for i, ca := range correct {
		out = append(out, model.QuizQuestionModel{
			QuizQuestionID:            uuid.New(),
			QuizQuestionText:          "soal",
			QuizQuestionOptions:       []string{"A", "B", "C", "D"},
			QuizQuestionCorrectAnswer: ca,
			QuizQuestionOrder:         i,
		})
	}
	return out
}

func answersFor(questions []model.QuizQuestionModel, picks map[int]int) model.AttemptAnswers {
	a := model.AttemptAnswers{}
	for idx, selected := range picks {
		a[questions[idx].QuizQuestionID.String()] = selected
	}
	return a
}

func TestScoreAnswers_FourOfFiveCorrect(t *testing.T) {
	qs := buildQuestions([]int{0, 1, 2, 3, 0})
	// 4 benar, 1 salah
	answers := answersFor(qs, map[int]int{0: 0, 1: 1, 2: 2, 3: 3, 4: 1})

	correct, score := ScoreAnswers(qs, answers)
	assert.Equal(t, 4, correct)
	assert.Equal(t, 80, score)
	assert.True(t, IsPassed(score, 70))
}

func TestScoreAnswers_UnansweredCountsIncorrect(t *testing.T) {
	qs := buildQuestions([]int{0, 1, 2, 3, 0})
	// hanya 2 soal pertama dijawab
	answers := answersFor(qs, map[int]int{0: 0, 1: 1})

	correct, score := ScoreAnswers(qs, answers)
	assert.Equal(t, 2, correct)
	assert.Equal(t, 40, score)
	assert.False(t, IsPassed(score, 70))
}

func TestScoreAnswers_AbsentKeyNotSameAsZero(t *testing.T) {
	// kunci soal pertama = 0; TIDAK dijawab → tetap salah walau 0 valid
	qs := buildQuestions([]int{0, 0})
	answers := answersFor(qs, map[int]int{1: 0})

	correct, score := ScoreAnswers(qs, answers)
	assert.Equal(t, 1, correct)
	assert.Equal(t, 50, score)
}

func TestScoreAnswers_RoundingHalfAwayFromZero(t *testing.T) {
	// 1/8 benar = 12.5 → 13 (round half away from zero)
	qs := buildQuestions([]int{0, 0, 0, 0, 0, 0, 0, 0})
	answers := answersFor(qs, map[int]int{0: 0, 1: 1, 2: 1, 3: 1, 4: 1, 5: 1, 6: 1, 7: 1})

	_, score := ScoreAnswers(qs, answers)
	assert.Equal(t, 13, score)

	// 1/3 benar = 33.33 → 33
	qs3 := buildQuestions([]int{0, 0, 0})
	answers3 := answersFor(qs3, map[int]int{0: 0, 1: 1, 2: 1})
	_, score3 := ScoreAnswers(qs3, answers3)
	assert.Equal(t, 33, score3)
}

func TestIsPassed_BoundaryInclusive(t *testing.T) {
	// skor persis di ambang = lulus
	assert.True(t, IsPassed(60, 60))
	assert.False(t, IsPassed(59, 60))
	assert.True(t, IsPassed(100, 100))
	assert.True(t, IsPassed(0, 0))
}

func TestScoreAnswers_NoQuestionsGuard(t *testing.T) {
	correct, score := ScoreAnswers(nil, model.AttemptAnswers{"x": 1})
	assert.Equal(t, 0, correct)
	assert.Equal(t, 0, score)
}

func TestBuildAttemptResult_Breakdown(t *testing.T) {
	qs := buildQuestions([]int{2, 0, 1})
	answers := answersFor(qs, map[int]int{0: 2, 2: 3})

	result := BuildAttemptResult(qs, answers)
	assert.Len(t, result, 3)

	// dijawab benar
	assert.NotNil(t, result[0].Selected)
	assert.Equal(t, 2, *result[0].Selected)
	assert.True(t, result[0].IsCorrect)

	// tidak dijawab
	assert.Nil(t, result[1].Selected)
	assert.False(t, result[1].IsCorrect)

	// dijawab salah
	assert.NotNil(t, result[2].Selected)
	assert.Equal(t, 3, *result[2].Selected)
	assert.False(t, result[2].IsCorrect)
}

func TestBuildAttemptResult_SortsByOrderAndIsIdempotent(t *testing.T) {
	qs := buildQuestions([]int{0, 1, 2})
	// acak urutan input
	shuffled := []model.QuizQuestionModel{qs[2], qs[0], qs[1]}
	answers := answersFor(qs, map[int]int{0: 0, 1: 1, 2: 2})

	first := BuildAttemptResult(shuffled, answers)
	second := BuildAttemptResult(shuffled, answers)

	assert.Equal(t, first, second)
	for i, r := range first {
		assert.Equal(t, i, r.Question.QuizQuestionOrder)
		assert.True(t, r.IsCorrect)
	}
}

func TestBuildAttemptResult_OrphanedAnswerKeysSkipped(t *testing.T) {
	// jawaban menyimpan key soal yang sudah dihapus (efek replace-all
	// edit) — breakdown hanya merender soal yang masih ada
	qs := buildQuestions([]int{1})
	answers := model.AttemptAnswers{
		qs[0].QuizQuestionID.String(): 1,
		uuid.NewString():              2, // soal sudah tidak ada
	}

	result := BuildAttemptResult(qs, answers)
	assert.Len(t, result, 1)
	assert.True(t, result[0].IsCorrect)
}

func TestLatestAttemptPerQuiz_PicksLatestCompletedAt(t *testing.T) {
	quizID := uuid.New()
	userID := uuid.New()
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	older := model.QuizAttemptModel{
		QuizAttemptID:          uuid.New(),
		QuizAttemptQuizID:      quizID,
		QuizAttemptUserID:      userID,
		QuizAttemptScore:       40,
		QuizAttemptCompletedAt: base,
	}
	newer := model.QuizAttemptModel{
		QuizAttemptID:          uuid.New(),
		QuizAttemptQuizID:      quizID,
		QuizAttemptUserID:      userID,
		QuizAttemptScore:       80,
		QuizAttemptCompletedAt: base.Add(time.Hour),
	}

	latest := LatestAttemptPerQuiz([]model.QuizAttemptModel{older, newer})
	assert.Len(t, latest, 1)
	assert.Equal(t, newer.QuizAttemptID, latest[quizID].QuizAttemptID)

	// urutan input tidak boleh berpengaruh
	latest = LatestAttemptPerQuiz([]model.QuizAttemptModel{newer, older})
	assert.Equal(t, newer.QuizAttemptID, latest[quizID].QuizAttemptID)
}

func TestLatestAttemptPerQuiz_TieBreakByGreaterID(t *testing.T) {
	quizID := uuid.New()
	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	a := model.QuizAttemptModel{
		QuizAttemptID:          uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		QuizAttemptQuizID:      quizID,
		QuizAttemptCompletedAt: at,
	}
	b := model.QuizAttemptModel{
		QuizAttemptID:          uuid.MustParse("00000000-0000-0000-0000-000000000002"),
		QuizAttemptQuizID:      quizID,
		QuizAttemptCompletedAt: at,
	}

	latest := LatestAttemptPerQuiz([]model.QuizAttemptModel{a, b})
	assert.Equal(t, b.QuizAttemptID, latest[quizID].QuizAttemptID)

	latest = LatestAttemptPerQuiz([]model.QuizAttemptModel{b, a})
	assert.Equal(t, b.QuizAttemptID, latest[quizID].QuizAttemptID)
}

func TestLatestAttemptPerQuiz_SeparatePerQuiz(t *testing.T) {
	q1, q2 := uuid.New(), uuid.New()
	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	a1 := model.QuizAttemptModel{QuizAttemptID: uuid.New(), QuizAttemptQuizID: q1, QuizAttemptCompletedAt: at}
	a2 := model.QuizAttemptModel{QuizAttemptID: uuid.New(), QuizAttemptQuizID: q2, QuizAttemptCompletedAt: at}

	latest := LatestAttemptPerQuiz([]model.QuizAttemptModel{a1, a2})
	assert.Len(t, latest, 2)
	assert.Equal(t, a1.QuizAttemptID, latest[q1].QuizAttemptID)
	assert.Equal(t, a2.QuizAttemptID, latest[q2].QuizAttemptID)
}
