package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttemptAnswers_RoundTrip(t *testing.T) {
	q1, q2 := uuid.NewString(), uuid.NewString()

	var m QuizAttemptModel
	require.NoError(t, m.SetAnswers(AttemptAnswers{q1: 0, q2: 3}))

	got, err := m.Answers()
	require.NoError(t, err)
	assert.Equal(t, AttemptAnswers{q1: 0, q2: 3}, got)
}

func TestAttemptAnswers_AbsentKeyStaysAbsent(t *testing.T) {
	answered := uuid.NewString()
	skipped := uuid.NewString()

	var m QuizAttemptModel
	require.NoError(t, m.SetAnswers(AttemptAnswers{answered: 0}))

	got, err := m.Answers()
	require.NoError(t, err)

	_, ok := got[skipped]
	assert.False(t, ok, "soal yang dilewati tidak boleh punya entry")

	v, ok := got[answered]
	assert.True(t, ok)
	assert.Equal(t, 0, v, "jawaban 0 (opsi A) harus bisa dibedakan dari tidak menjawab")
}

func TestAttemptAnswers_NilSerializedAsEmptyObject(t *testing.T) {
	var m QuizAttemptModel
	require.NoError(t, m.SetAnswers(nil))
	assert.Equal(t, "{}", string(m.QuizAttemptAnswers))

	got, err := m.Answers()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestQuizQuestionModel_ValidateShape(t *testing.T) {
	valid := QuizQuestionModel{
		QuizQuestionText:          "Apa itu jajar legowo?",
		QuizQuestionOptions:       []string{"Pola tanam", "Jenis pupuk", "Hama", "Varietas"},
		QuizQuestionCorrectAnswer: 0,
	}
	assert.NoError(t, valid.ValidateShape())

	bad := valid
	bad.QuizQuestionText = " "
	assert.Error(t, bad.ValidateShape())

	bad = valid
	bad.QuizQuestionOptions = []string{"A", "B", "C"}
	assert.Error(t, bad.ValidateShape())

	bad = valid
	bad.QuizQuestionOptions = []string{"A", "B", " ", "D"}
	assert.Error(t, bad.ValidateShape())

	bad = valid
	bad.QuizQuestionCorrectAnswer = 4
	assert.Error(t, bad.ValidateShape())
}
