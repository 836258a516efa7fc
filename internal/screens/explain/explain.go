package explain

import (
	"context"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/engihub/internal/gateway"
	"github.com/abhisek/engihub/internal/screen"
	"github.com/abhisek/engihub/internal/study"
	"github.com/abhisek/engihub/internal/ui/components"
	"github.com/abhisek/engihub/internal/ui/layout"
)

// explanationMsg carries the gateway's answer, already collapsed to the
// fallback text on failure.
type explanationMsg struct {
	to      screen.Screen
	Concept string
	Text    string
}

func (m explanationMsg) Recipient() screen.Screen { return m.to }

// ExplainScreen asks the model to explain a concept within a subject.
type ExplainScreen struct {
	gateway *gateway.Gateway
	subject study.Subject

	input   components.TextInput
	spinner spinner.Model
	view    viewport.Model

	concept string
	answer  string
	loading bool
	auto    bool
}

var _ screen.Screen = (*ExplainScreen)(nil)
var _ screen.KeyHintProvider = (*ExplainScreen)(nil)

// New opens the screen with an empty concept prompt.
func New(gw *gateway.Gateway, subject study.Subject) *ExplainScreen {
	return &ExplainScreen{
		gateway: gw,
		subject: subject,
		input:   components.NewTextInput("e.g. Bernoulli's principle, Mohr's circle", 120),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		view:    viewport.New(),
	}
}

// NewForConcept opens the screen and immediately requests an explanation
// of concept.
func NewForConcept(gw *gateway.Gateway, concept string, subject study.Subject) *ExplainScreen {
	s := New(gw, subject)
	s.concept = concept
	s.auto = true
	return s
}

// Concept returns the concept being explained.
func (s *ExplainScreen) Concept() string {
	return s.concept
}

func (s *ExplainScreen) Init() tea.Cmd {
	if s.auto {
		s.auto = false
		s.input.Blur()
		return s.request(s.concept)
	}
	return s.input.Init()
}

func (s *ExplainScreen) Title() string {
	return "Explain a Concept"
}

func (s *ExplainScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Explain"},
		{Key: "PgUp/PgDn", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ExplainScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case explanationMsg:
		s.loading = false
		s.input.Disabled = false
		s.answer = msg.Text
		s.view.GotoTop()
		return s, s.input.Focus()

	case spinner.TickMsg:
		if !s.loading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			return s, s.request(s.input.Value())
		case "pgup", "pgdown", "up", "down":
			var cmd tea.Cmd
			s.view, cmd = s.view.Update(msg)
			return s, cmd
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// request starts one explanation call. It ignores blank concepts and
// requests made while another is running.
func (s *ExplainScreen) request(concept string) tea.Cmd {
	if concept == "" || s.loading {
		return nil
	}
	s.concept = concept
	s.answer = ""
	s.loading = true
	s.input.Reset()
	s.input.Disabled = true

	gw := s.gateway
	subject := string(s.subject)
	call := func() tea.Msg {
		return explanationMsg{to: s, Concept: concept, Text: gw.ExplainConcept(context.Background(), concept, subject)}
	}
	return tea.Batch(call, s.spinner.Tick)
}
