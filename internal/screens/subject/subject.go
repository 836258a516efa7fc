package subject

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/engihub/internal/gateway"
	quizstate "github.com/abhisek/engihub/internal/quiz"
	"github.com/abhisek/engihub/internal/router"
	"github.com/abhisek/engihub/internal/screen"
	"github.com/abhisek/engihub/internal/screens/explain"
	quizscreen "github.com/abhisek/engihub/internal/screens/quiz"
	"github.com/abhisek/engihub/internal/study"
	"github.com/abhisek/engihub/internal/ui/components"
	"github.com/abhisek/engihub/internal/ui/layout"
	"github.com/abhisek/engihub/internal/ui/theme"
)

// quizReadyMsg carries a generated quiz, or nil when generation failed.
type quizReadyMsg struct {
	to  screen.Screen
	Set *study.QuizSet
}

func (m quizReadyMsg) Recipient() screen.Screen { return m.to }

// SubjectScreen shows one discipline: the assessment quiz entry point and
// the study modules.
type SubjectScreen struct {
	gateway *gateway.Gateway
	logger  *zap.Logger
	info    study.SubjectInfo
	menu    components.Menu
	spinner spinner.Model
	loading bool
	notice  string
}

var _ screen.Screen = (*SubjectScreen)(nil)
var _ screen.KeyHintProvider = (*SubjectScreen)(nil)

// New creates the detail screen for info.
func New(gw *gateway.Gateway, info study.SubjectInfo, logger *zap.Logger) *SubjectScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &SubjectScreen{
		gateway: gw,
		logger:  logger,
		info:    info,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}

	items := []components.MenuItem{
		{Label: "Take Assessment Quiz", Detail: "5 dynamic AI questions", Action: s.startQuiz},
	}
	for _, m := range study.Modules(info.Subject) {
		concept := m
		items = append(items, components.MenuItem{
			Label:  concept.Title,
			Detail: concept.Summary,
			Action: func() tea.Cmd {
				return router.Push(explain.NewForConcept(gw, concept.Title, concept.Subject))
			},
		})
	}
	items = append(items, components.MenuItem{
		Label:  "Explain a concept…",
		Detail: "ask about any topic in this subject",
		Action: func() tea.Cmd {
			return router.Push(explain.New(gw, info.Subject))
		},
	})
	s.menu = components.NewMenu(items)
	return s
}

func (s *SubjectScreen) Init() tea.Cmd {
	return nil
}

func (s *SubjectScreen) Title() string {
	return string(s.info.Subject)
}

func (s *SubjectScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SubjectScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		return s, s.handleQuiz(msg.Set)

	case spinner.TickMsg:
		if !s.loading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		if s.loading {
			return s, nil
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SubjectScreen) startQuiz() tea.Cmd {
	if s.loading {
		return nil
	}
	s.loading = true
	s.notice = ""
	return tea.Batch(s.requestQuiz(), s.spinner.Tick)
}

func (s *SubjectScreen) requestQuiz() tea.Cmd {
	gw := s.gateway
	subject := string(s.info.Subject)
	return func() tea.Msg {
		return quizReadyMsg{to: s, Set: gw.GenerateQuiz(context.Background(), subject)}
	}
}

func (s *SubjectScreen) handleQuiz(set *study.QuizSet) tea.Cmd {
	s.loading = false
	if set == nil {
		s.notice = "Couldn't generate a quiz right now. Try again."
		return nil
	}
	m, err := quizstate.New(set)
	if err != nil {
		s.logger.Warn("quiz rejected", zap.Error(err))
		s.notice = "Couldn't generate a quiz right now. Try again."
		return nil
	}
	return router.Push(quizscreen.New(m, s.logger))
}

func (s *SubjectScreen) View(width, height int) string {
	w := min(width-4, 80)

	var b strings.Builder
	b.WriteString(theme.Title.Render(s.info.Icon + "  " + string(s.info.Subject)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(w).Foreground(theme.TextDim).Render(s.info.Description))
	b.WriteString("\n\n")

	b.WriteString(components.Panel("Assessment & Modules", s.menu.View(!s.loading), w, true))
	b.WriteString("\n\n")

	switch {
	case s.loading:
		b.WriteString(s.spinner.View() + " " + theme.Subtitle.Render("Generating Quiz…"))
	case s.notice != "":
		b.WriteString(theme.Notice.Render(s.notice))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
