package dto

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agripadi_backend/internals/features/learning/quizzes/model"
)

var validate = validator.New()

func intPtr(v int) *int { return &v }

func validCreateRequest() CreateQuizRequest {
	return CreateQuizRequest{
		QuizTitle:        "Pengendalian Hama Wereng",
		QuizCategory:     "Hama & Penyakit",
		QuizPassingScore: intPtr(70),
		QuizQuestions: []CreateQuizQuestionRequest{
			{
				QuizQuestionText:          "Apa musuh alami wereng coklat?",
				QuizQuestionOptions:       []string{"Laba-laba", "Belalang", "Ulat", "Keong"},
				QuizQuestionCorrectAnswer: intPtr(0),
			},
		},
	}
}

func TestCreateQuizRequest_Valid(t *testing.T) {
	req := validCreateRequest()
	assert.NoError(t, validate.Struct(&req))
}

func TestCreateQuizRequest_CorrectAnswerZeroPassesRequired(t *testing.T) {
	// kunci jawaban 0 (opsi A) harus tetap valid
	req := validCreateRequest()
	req.QuizQuestions[0].QuizQuestionCorrectAnswer = intPtr(0)
	assert.NoError(t, validate.Struct(&req))

	req.QuizQuestions[0].QuizQuestionCorrectAnswer = nil
	assert.Error(t, validate.Struct(&req))
}

func TestCreateQuizRequest_OptionCountMustBeFour(t *testing.T) {
	req := validCreateRequest()
	req.QuizQuestions[0].QuizQuestionOptions = []string{"A", "B", "C"}
	assert.Error(t, validate.Struct(&req))

	req.QuizQuestions[0].QuizQuestionOptions = []string{"A", "B", "C", "D", "E"}
	assert.Error(t, validate.Struct(&req))

	req.QuizQuestions[0].QuizQuestionOptions = []string{"A", "B", "", "D"}
	assert.Error(t, validate.Struct(&req), "opsi kosong harus ditolak")
}

func TestCreateQuizRequest_CorrectAnswerRange(t *testing.T) {
	req := validCreateRequest()
	req.QuizQuestions[0].QuizQuestionCorrectAnswer = intPtr(4)
	assert.Error(t, validate.Struct(&req))

	req.QuizQuestions[0].QuizQuestionCorrectAnswer = intPtr(-1)
	assert.Error(t, validate.Struct(&req))

	req.QuizQuestions[0].QuizQuestionCorrectAnswer = intPtr(3)
	assert.NoError(t, validate.Struct(&req))
}

func TestCreateQuizRequest_PassingScoreRange(t *testing.T) {
	req := validCreateRequest()
	req.QuizPassingScore = intPtr(101)
	assert.Error(t, validate.Struct(&req))

	req.QuizPassingScore = intPtr(-1)
	assert.Error(t, validate.Struct(&req))

	req.QuizPassingScore = intPtr(0)
	assert.NoError(t, validate.Struct(&req))

	req.QuizPassingScore = intPtr(100)
	assert.NoError(t, validate.Struct(&req))
}

func TestCreateQuizRequest_AtLeastOneQuestion(t *testing.T) {
	req := validCreateRequest()
	req.QuizQuestions = nil
	assert.Error(t, validate.Struct(&req))

	req.QuizQuestions = []CreateQuizQuestionRequest{}
	assert.Error(t, validate.Struct(&req))
}

func TestCreateQuizRequest_TimeLimitOptionalButPositive(t *testing.T) {
	req := validCreateRequest()
	req.QuizTimeLimit = nil
	assert.NoError(t, validate.Struct(&req))

	req.QuizTimeLimit = intPtr(0)
	assert.Error(t, validate.Struct(&req))

	req.QuizTimeLimit = intPtr(15)
	assert.NoError(t, validate.Struct(&req))
}

func TestToQuizQuestionModels_OrderFollowsSubmitPosition(t *testing.T) {
	quizID := uuid.New()
	reqs := []CreateQuizQuestionRequest{
		{QuizQuestionText: "satu", QuizQuestionOptions: []string{"A", "B", "C", "D"}, QuizQuestionCorrectAnswer: intPtr(1)},
		{QuizQuestionText: "dua", QuizQuestionOptions: []string{"A", "B", "C", "D"}, QuizQuestionCorrectAnswer: intPtr(2)},
		{QuizQuestionText: "tiga", QuizQuestionOptions: []string{"A", "B", "C", "D"}, QuizQuestionCorrectAnswer: intPtr(0)},
	}

	models := ToQuizQuestionModels(quizID, reqs)
	require.Len(t, models, 3)
	for i, m := range models {
		assert.Equal(t, i, m.QuizQuestionOrder)
		assert.Equal(t, quizID, m.QuizQuestionQuizID)
		assert.Equal(t, *reqs[i].QuizQuestionCorrectAnswer, m.QuizQuestionCorrectAnswer)
	}
}

func TestQuizQuestionPublicDTO_NeverLeaksAnswerKey(t *testing.T) {
	q := model.QuizQuestionModel{
		QuizQuestionID:            uuid.New(),
		QuizQuestionText:          "Kapan waktu tanam terbaik?",
		QuizQuestionOptions:       []string{"Musim hujan", "Musim kemarau", "Kapan saja", "Tidak tahu"},
		QuizQuestionCorrectAnswer: 0,
		QuizQuestionExplanation:   strPtr("Awal musim hujan, air cukup."),
		QuizQuestionOrder:         0,
	}

	b, err := json.Marshal(ToQuizQuestionPublicDTO(q))
	require.NoError(t, err)

	payload := string(b)
	assert.NotContains(t, payload, "correct_answer")
	assert.NotContains(t, payload, "explanation")
	assert.Contains(t, payload, "quiz_question_options")
}

func strPtr(s string) *string { return &s }
