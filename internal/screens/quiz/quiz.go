package quiz

import (
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	quizstate "github.com/abhisek/engihub/internal/quiz"
	"github.com/abhisek/engihub/internal/router"
	"github.com/abhisek/engihub/internal/screen"
	"github.com/abhisek/engihub/internal/ui/components"
	"github.com/abhisek/engihub/internal/ui/layout"
)

// QuizScreen runs one assessment quiz to its results page.
type QuizScreen struct {
	machine *quizstate.Machine
	options components.OptionList
	logger  *zap.Logger
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen for a validated quiz run.
func New(machine *quizstate.Machine, logger *zap.Logger) *QuizScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuizScreen{
		machine: machine,
		options: components.NewOptionList(machine.Current().Options),
		logger:  logger,
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	s.logger.Info("quiz started",
		zap.String("quiz_id", s.machine.ID()),
		zap.String("subject", s.machine.Subject()),
		zap.Int("questions", s.machine.Progress().Total))
	return nil
}

func (s *QuizScreen) Title() string {
	return "Assessment Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	p := s.machine.Progress()
	switch {
	case p.Phase == quizstate.PhaseResults:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Back to subject"},
		}
	case p.Answered:
		return []layout.KeyHint{
			{Key: "Enter", Description: s.nextLabel()},
			{Key: "Esc", Description: "Leave quiz"},
		}
	default:
		return []layout.KeyHint{
			{Key: "A-D", Description: "Answer"},
			{Key: "↑↓ Enter", Description: "Pick"},
			{Key: "Esc", Description: "Leave quiz"},
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	p := s.machine.Progress()
	if p.Phase == quizstate.PhaseResults {
		if kmsg.String() == "enter" {
			return s, router.Pop
		}
		return s, nil
	}

	if p.Answered {
		if kmsg.String() == "enter" {
			s.advance()
		}
		return s, nil
	}

	var picked int
	s.options, picked = s.options.Update(kmsg, s.machine.OptionStates())
	if picked >= 0 && s.machine.SelectOption(picked) {
		s.logger.Debug("quiz answer",
			zap.String("quiz_id", s.machine.ID()),
			zap.Int("question", p.Index),
			zap.Bool("correct", picked == s.machine.Current().CorrectAnswer))
	}
	return s, nil
}

func (s *QuizScreen) advance() {
	if !s.machine.Advance() {
		return
	}
	if s.machine.Finished() {
		r := s.machine.Result()
		s.logger.Info("quiz finished",
			zap.String("quiz_id", s.machine.ID()),
			zap.Int("score", r.Score),
			zap.Int("total", r.Total),
			zap.String("rank", string(r.Rank)))
		return
	}
	s.options = components.NewOptionList(s.machine.Current().Options)
}

func (s *QuizScreen) nextLabel() string {
	if s.machine.IsLast() {
		return "See Results"
	}
	return "Next Question"
}
