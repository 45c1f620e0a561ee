package portal

import (
	"github.com/mpetrenko/content-portal/internal/db"
)

// Question and Option are the stored quiz shapes; grading works directly on
// the jsonb document embedded in a post.
type (
	Question = db.Question
	Option   = db.Option
)

// Grade is the result of grading one submission against a quiz.
type Grade struct {
	Score       int
	Total       int
	PerQuestion []bool
}

// ValidateQuiz checks the authoring invariants that must hold before a post
// with quiz data becomes publishable: every question has text, at least one
// option, and exactly one correct option. While a quiz is being drafted these
// may be transiently violated; the check runs at the publish gate.
func ValidateQuiz(questions []Question) error {
	for i, q := range questions {
		if q.Text == "" {
			return validationErrorf("question %d: text is required", i+1)
		}
		if len(q.Options) == 0 {
			return validationErrorf("question %d: at least one option is required", i+1)
		}

		correct := 0
		for _, o := range q.Options {
			if o.IsCorrect {
				correct++
			}
		}
		if correct != 1 {
			return validationErrorf("question %d: exactly one correct option is required, got %d", i+1, correct)
		}
	}

	return nil
}

// SetCorrectOption marks one option of a question as correct and clears the
// previous marker in the same step, so an edit can never leave zero or two
// correct flags behind.
func SetCorrectOption(q *Question, optionIndex int) error {
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return validationErrorf("option index %d out of range", optionIndex)
	}

	for i := range q.Options {
		q.Options[i].IsCorrect = i == optionIndex
	}

	return nil
}

// GradeQuiz grades a submission. answers maps question index to the selected
// option index; a missing or out-of-range answer counts as incorrect. The
// function is pure: same inputs, same grade, no hidden state.
func GradeQuiz(questions []Question, answers map[int]int) Grade {
	grade := Grade{
		Total:       len(questions),
		PerQuestion: make([]bool, len(questions)),
	}

	for i, q := range questions {
		selected, ok := answers[i]
		if !ok {
			continue
		}

		correct := correctIndex(q)
		if correct >= 0 && selected == correct {
			grade.PerQuestion[i] = true
			grade.Score++
		}
	}

	return grade
}

func correctIndex(q Question) int {
	for i, o := range q.Options {
		if o.IsCorrect {
			return i
		}
	}
	return -1
}

// Submission accumulates a viewer's answers while they work through a quiz.
// It holds no grading state: Grade recomputes from scratch each time.
type Submission struct {
	answers map[int]int
}

func NewSubmission() *Submission {
	return &Submission{
		answers: make(map[int]int),
	}
}

// Select records the option chosen for a question, replacing any previous
// choice for that question.
func (s *Submission) Select(question, option int) {
	s.answers[question] = option
}

// Answered reports whether a question has a recorded choice.
func (s *Submission) Answered(question int) bool {
	_, ok := s.answers[question]
	return ok
}

// Grade grades the current answers against the quiz.
func (s *Submission) Grade(questions []Question) Grade {
	return GradeQuiz(questions, s.answers)
}

// Reset clears all selections, returning the submission to its initial
// ungraded state.
func (s *Submission) Reset() {
	s.answers = make(map[int]int)
}
