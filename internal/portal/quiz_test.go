package portal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuiz() []Question {
	return []Question{
		{
			Text: "What closes a channel?",
			Options: []Option{
				{Text: "close(ch)", IsCorrect: true},
				{Text: "ch.Close()"},
				{Text: "delete(ch)"},
			},
		},
		{
			Text: "Which type is a slice's zero value?",
			Options: []Option{
				{Text: "empty slice"},
				{Text: "nil", IsCorrect: true},
			},
		},
		{
			Text: "What does defer do?",
			Options: []Option{
				{Text: "runs at function return", IsCorrect: true},
				{Text: "runs immediately"},
			},
		},
	}
}

func TestValidateQuiz(t *testing.T) {
	t.Run("ValidQuizPasses", func(t *testing.T) {
		assert.NoError(t, ValidateQuiz(sampleQuiz()))
	})

	t.Run("EmptyQuizPasses", func(t *testing.T) {
		assert.NoError(t, ValidateQuiz(nil))
	})

	t.Run("MissingTextRejected", func(t *testing.T) {
		quiz := sampleQuiz()
		quiz[1].Text = ""

		err := ValidateQuiz(quiz)
		require.Error(t, err)
		assert.True(t, IsValidation(err))
		assert.Contains(t, err.Error(), "question 2")
	})

	t.Run("NoOptionsRejected", func(t *testing.T) {
		quiz := sampleQuiz()
		quiz[0].Options = nil

		err := ValidateQuiz(quiz)
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})

	t.Run("TwoCorrectOptionsRejected", func(t *testing.T) {
		quiz := sampleQuiz()
		quiz[0].Options[1].IsCorrect = true

		err := ValidateQuiz(quiz)
		require.Error(t, err)
		assert.True(t, IsValidation(err))
		assert.Contains(t, err.Error(), "exactly one correct option")
	})

	t.Run("NoCorrectOptionRejected", func(t *testing.T) {
		quiz := sampleQuiz()
		quiz[2].Options[0].IsCorrect = false

		err := ValidateQuiz(quiz)
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})
}

func TestSetCorrectOption(t *testing.T) {
	t.Run("MovesCorrectFlagAtomically", func(t *testing.T) {
		q := sampleQuiz()[0]

		require.NoError(t, SetCorrectOption(&q, 2))

		assert.False(t, q.Options[0].IsCorrect)
		assert.False(t, q.Options[1].IsCorrect)
		assert.True(t, q.Options[2].IsCorrect)
		assert.NoError(t, ValidateQuiz([]Question{q}))
	})

	t.Run("OutOfRangeRejected", func(t *testing.T) {
		q := sampleQuiz()[0]

		err := SetCorrectOption(&q, 5)
		require.Error(t, err)
		assert.True(t, IsValidation(err))
		// The original marker stays in place.
		assert.True(t, q.Options[0].IsCorrect)
	})
}

func TestGradeQuiz(t *testing.T) {
	quiz := sampleQuiz()

	t.Run("AllCorrect", func(t *testing.T) {
		grade := GradeQuiz(quiz, map[int]int{0: 0, 1: 1, 2: 0})

		assert.Equal(t, 3, grade.Score)
		assert.Equal(t, 3, grade.Total)
		assert.Equal(t, []bool{true, true, true}, grade.PerQuestion)
	})

	t.Run("EmptySubmissionScoresZero", func(t *testing.T) {
		grade := GradeQuiz(quiz, map[int]int{})

		assert.Equal(t, 0, grade.Score)
		assert.Equal(t, 3, grade.Total)
		assert.Equal(t, []bool{false, false, false}, grade.PerQuestion)
	})

	t.Run("PartialSubmission", func(t *testing.T) {
		grade := GradeQuiz(quiz, map[int]int{0: 0, 2: 1})

		assert.Equal(t, 1, grade.Score)
		assert.Equal(t, []bool{true, false, false}, grade.PerQuestion)
	})

	t.Run("OutOfRangeAnswerIsIncorrect", func(t *testing.T) {
		grade := GradeQuiz(quiz, map[int]int{0: 99})

		assert.Equal(t, 0, grade.Score)
	})

	t.Run("Idempotent", func(t *testing.T) {
		answers := map[int]int{0: 0, 1: 1}

		first := GradeQuiz(quiz, answers)
		second := GradeQuiz(quiz, answers)

		assert.Equal(t, first, second)
	})

	t.Run("InvariantUnderOptionRelabeling", func(t *testing.T) {
		// Move the correct option of question 1 to another index; a
		// submission that follows the marker must grade the same.
		relabeled := sampleQuiz()
		relabeled[0].Options = []Option{
			{Text: "ch.Close()"},
			{Text: "close(ch)", IsCorrect: true},
			{Text: "delete(ch)"},
		}

		original := GradeQuiz(sampleQuiz(), map[int]int{0: 0})
		moved := GradeQuiz(relabeled, map[int]int{0: 1})

		assert.Equal(t, original.Score, moved.Score)
	})
}

func TestSubmission(t *testing.T) {
	quiz := sampleQuiz()

	t.Run("SelectReplacesPreviousChoice", func(t *testing.T) {
		sub := NewSubmission()
		sub.Select(0, 1)
		sub.Select(0, 0)

		grade := sub.Grade(quiz)
		assert.Equal(t, 1, grade.Score)
	})

	t.Run("GradeTwiceSameResult", func(t *testing.T) {
		sub := NewSubmission()
		sub.Select(0, 0)
		sub.Select(1, 1)

		assert.Equal(t, sub.Grade(quiz), sub.Grade(quiz))
	})

	t.Run("ResetClearsEverything", func(t *testing.T) {
		sub := NewSubmission()
		sub.Select(0, 0)
		sub.Select(1, 1)
		sub.Select(2, 0)
		require.Equal(t, 3, sub.Grade(quiz).Score)

		sub.Reset()

		assert.False(t, sub.Answered(0))
		grade := sub.Grade(quiz)
		assert.Equal(t, 0, grade.Score)
		assert.Equal(t, 3, grade.Total)
	})
}
