package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/engihub/internal/study"
)

type roadmapOutput struct {
	Topic string       `json:"topic"`
	Steps []stepOutput `json:"steps"`
}

type stepOutput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
}

type quizOutput struct {
	Subject   string           `json:"subject"`
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer *int     `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// decodeStrict unmarshals raw into v, rejecting unknown fields and
// trailing data.
func decodeStrict(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if dec.More() {
		return fmt.Errorf("decode: trailing data after JSON object")
	}
	return nil
}

// decodeRoadmap turns validated model output into a Roadmap. The topic
// the user asked for wins over a blank topic from the model.
func decodeRoadmap(raw []byte, requested string) (*study.Roadmap, error) {
	var out roadmapOutput
	if err := decodeStrict(raw, &out); err != nil {
		return nil, err
	}

	r := &study.Roadmap{
		Topic: strings.TrimSpace(out.Topic),
		Steps: make([]study.RoadmapStep, len(out.Steps)),
	}
	if r.Topic == "" {
		r.Topic = requested
	}
	for i, s := range out.Steps {
		r.Steps[i] = study.RoadmapStep{
			Title:       strings.TrimSpace(s.Title),
			Description: strings.TrimSpace(s.Description),
			Duration:    strings.TrimSpace(s.Duration),
		}
	}

	if err := study.ValidateRoadmap(r); err != nil {
		return nil, err
	}
	return r, nil
}

// decodeQuiz turns validated model output into a QuizSet and applies the
// value checks the schema cannot express.
func decodeQuiz(raw []byte, requested string) (*study.QuizSet, error) {
	var out quizOutput
	if err := decodeStrict(raw, &out); err != nil {
		return nil, err
	}

	q := &study.QuizSet{
		Subject:   strings.TrimSpace(out.Subject),
		Questions: make([]study.QuizQuestion, len(out.Questions)),
	}
	if q.Subject == "" {
		q.Subject = requested
	}
	for i, in := range out.Questions {
		if in.CorrectAnswer == nil {
			return nil, &study.ValidationError{Field: fmt.Sprintf("questions[%d].correctAnswer", i), Message: "missing"}
		}
		q.Questions[i] = study.QuizQuestion{
			Question:      strings.TrimSpace(in.Question),
			Options:       in.Options,
			CorrectAnswer: *in.CorrectAnswer,
			Explanation:   strings.TrimSpace(in.Explanation),
		}
	}

	if err := study.ValidateQuiz(q); err != nil {
		return nil, err
	}
	return q, nil
}
