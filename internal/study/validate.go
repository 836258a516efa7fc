package study

import (
	"fmt"
	"strings"
)

// ValidationError describes why a generated roadmap or quiz was rejected.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateRoadmap rejects a roadmap with no steps or blank step titles.
func ValidateRoadmap(r *Roadmap) error {
	if r == nil {
		return &ValidationError{Field: "roadmap", Message: "missing"}
	}
	if len(r.Steps) == 0 {
		return &ValidationError{Field: "steps", Message: "roadmap has no steps"}
	}
	for i, s := range r.Steps {
		if strings.TrimSpace(s.Title) == "" {
			return &ValidationError{Field: fmt.Sprintf("steps[%d].title", i), Message: "empty"}
		}
	}
	return nil
}

// ValidateQuiz checks the invariants the quiz state machine relies on:
// at least one question, exactly four options each, and a correct answer
// that indexes one of them.
func ValidateQuiz(q *QuizSet) error {
	if q == nil {
		return &ValidationError{Field: "quiz", Message: "missing"}
	}
	if len(q.Questions) == 0 {
		return &ValidationError{Field: "questions", Message: "quiz has no questions"}
	}
	for i, question := range q.Questions {
		if err := ValidateQuestion(question); err != nil {
			ve := err.(*ValidationError)
			ve.Field = fmt.Sprintf("questions[%d].%s", i, ve.Field)
			return ve
		}
	}
	return nil
}

// ValidateQuestion checks a single question.
func ValidateQuestion(q QuizQuestion) error {
	if strings.TrimSpace(q.Question) == "" {
		return &ValidationError{Field: "question", Message: "empty"}
	}
	if len(q.Options) != OptionsPerQuestion {
		return &ValidationError{Field: "options", Message: fmt.Sprintf("expected %d options, got %d", OptionsPerQuestion, len(q.Options))}
	}
	for i, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return &ValidationError{Field: fmt.Sprintf("options[%d]", i), Message: "empty"}
		}
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return &ValidationError{Field: "correctAnswer", Message: fmt.Sprintf("%d is out of range [0, %d)", q.CorrectAnswer, len(q.Options))}
	}
	return nil
}
