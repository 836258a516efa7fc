// Package quiz drives a single run through a generated quiz: answer
// locking, forward-only progression, scoring and ranking.
package quiz

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/engihub/internal/study"
)

// Phase is the state machine's top-level state.
type Phase int

const (
	PhaseActive Phase = iota
	PhaseResults
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseResults:
		return "results"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// NoSelection is the Selected value before an option is chosen.
const NoSelection = -1

// Progress is a snapshot of the machine's state.
type Progress struct {
	Phase    Phase
	Index    int
	Selected int
	Answered bool
	Score    int
	Total    int
}

// Machine is the quiz state machine. It owns its QuizSet for its whole
// lifetime and is not safe for concurrent use.
type Machine struct {
	id       string
	set      study.QuizSet
	phase    Phase
	index    int
	selected int
	answered bool
	score    int
}

// New starts a quiz at the first question. The set is validated first so
// that every question is answerable; an invalid or empty set is rejected.
func New(set *study.QuizSet) (*Machine, error) {
	if err := study.ValidateQuiz(set); err != nil {
		return nil, fmt.Errorf("invalid quiz: %w", err)
	}
	return &Machine{
		id:       uuid.NewString(),
		set:      *set,
		phase:    PhaseActive,
		selected: NoSelection,
	}, nil
}

// SelectOption answers the current question. It is a no-op once the
// question is answered, after the quiz finished, or for an index outside
// the options. It reports whether the answer was recorded.
func (m *Machine) SelectOption(idx int) bool {
	if m.phase != PhaseActive || m.answered {
		return false
	}
	q := m.set.Questions[m.index]
	if idx < 0 || idx >= len(q.Options) {
		return false
	}

	m.selected = idx
	m.answered = true
	if idx == q.CorrectAnswer {
		m.score++
	}
	return true
}

// Advance moves to the next question, or to the results after the last
// one. It is a no-op until the current question is answered. It reports
// whether the state changed.
func (m *Machine) Advance() bool {
	if m.phase != PhaseActive || !m.answered {
		return false
	}
	if m.index == len(m.set.Questions)-1 {
		m.phase = PhaseResults
		return true
	}
	m.index++
	m.selected = NoSelection
	m.answered = false
	return true
}

// Progress returns a snapshot of the current state.
func (m *Machine) Progress() Progress {
	return Progress{
		Phase:    m.phase,
		Index:    m.index,
		Selected: m.selected,
		Answered: m.answered,
		Score:    m.score,
		Total:    len(m.set.Questions),
	}
}

// ID identifies this run in logs.
func (m *Machine) ID() string {
	return m.id
}

// Subject returns the quiz subject.
func (m *Machine) Subject() string {
	return m.set.Subject
}

// Current returns the question at the current index. After the quiz has
// finished it keeps returning the last question.
func (m *Machine) Current() study.QuizQuestion {
	return m.set.Questions[m.index]
}

// IsLast reports whether the current question is the final one.
func (m *Machine) IsLast() bool {
	return m.index == len(m.set.Questions)-1
}

// Finished reports whether the machine reached the results.
func (m *Machine) Finished() bool {
	return m.phase == PhaseResults
}

// Result summarises the run. It is meaningful once Finished is true but
// can be read at any time.
func (m *Machine) Result() Result {
	return NewResult(m.score, len(m.set.Questions))
}

// OptionStates derives how each option of the current question renders.
func (m *Machine) OptionStates() []OptionState {
	q := m.Current()
	return DeriveOptionStates(len(q.Options), q.CorrectAnswer, m.selected, m.answered)
}
