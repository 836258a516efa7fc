package home

import (
	"context"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/engihub/internal/gateway"
	"github.com/abhisek/engihub/internal/roadmap"
	"github.com/abhisek/engihub/internal/router"
	"github.com/abhisek/engihub/internal/screen"
	"github.com/abhisek/engihub/internal/screens/constants"
	"github.com/abhisek/engihub/internal/screens/explain"
	"github.com/abhisek/engihub/internal/screens/subject"
	"github.com/abhisek/engihub/internal/study"
	"github.com/abhisek/engihub/internal/tutor"
	"github.com/abhisek/engihub/internal/ui/components"
	"github.com/abhisek/engihub/internal/ui/layout"
)

type focusArea int

const (
	focusSubjects focusArea = iota
	focusPlanner
	focusTutor
	focusCount
)

// HomeScreen is the dashboard: subject cards, the study planner, the
// tutor chat and the formula quick reference.
type HomeScreen struct {
	gateway *gateway.Gateway
	logger  *zap.Logger

	subjects []study.SubjectInfo
	cursor   int
	focus    focusArea

	planner     components.TextInput
	flow        roadmap.Flow
	roadmapView viewport.Model

	chatInput  components.TextInput
	chat       tutor.Panel
	chatView   viewport.Model
	chatFollow bool

	spinner spinner.Model
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.EscapeHandler = (*HomeScreen)(nil)

// New creates the home screen.
func New(gw *gateway.Gateway, logger *zap.Logger) *HomeScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	planner := components.NewTextInput("e.g. Robotics, Microfluidics, Blockchain", 120)
	planner.Blur()
	chatInput := components.NewTextInput("Ask EngiBot a question…", 500)
	chatInput.Blur()

	return &HomeScreen{
		gateway:     gw,
		logger:      logger,
		subjects:    study.Subjects(),
		planner:     planner,
		roadmapView: viewport.New(),
		chatInput:   chatInput,
		chatView:    viewport.New(),
		chatFollow:  true,
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Engineering Hub"
}

// HandlesEscape is true while the roadmap overlay is open so Esc closes
// it instead of reaching the app.
func (h *HomeScreen) HandlesEscape() bool {
	return h.flow.Active() != nil
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.flow.Active() != nil {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "Esc", Description: "Close roadmap"},
		}
	}
	hints := []layout.KeyHint{{Key: "Tab", Description: "Switch panel"}}
	switch h.focus {
	case focusSubjects:
		hints = append(hints,
			layout.KeyHint{Key: "Enter", Description: "Open subject"},
			layout.KeyHint{Key: "e", Description: "Explain"},
			layout.KeyHint{Key: "c", Description: "Constants"},
		)
	case focusPlanner:
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Generate roadmap"})
	case focusTutor:
		hints = append(hints,
			layout.KeyHint{Key: "Enter", Description: "Send"},
			layout.KeyHint{Key: "PgUp/PgDn", Description: "Scroll"},
		)
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case roadmapReadyMsg:
		h.flow.Complete(msg.Topic, msg.Roadmap)
		if msg.Roadmap != nil {
			h.roadmapView.GotoTop()
		}
		return h, nil

	case chatReplyMsg:
		if !h.chat.Receive(msg.Reply) {
			return h, nil
		}
		h.chatInput.Disabled = false
		h.chatFollow = true
		return h, nil

	case spinner.TickMsg:
		if !h.flow.Loading() && !h.chat.Typing() {
			return h, nil
		}
		var cmd tea.Cmd
		h.spinner, cmd = h.spinner.Update(msg)
		return h, cmd

	case tea.KeyPressMsg:
		if h.flow.Active() != nil {
			return h.handleRoadmapKey(msg)
		}
		return h.handleKey(msg)
	}

	return h.forwardToInput(msg)
}

func (h *HomeScreen) handleRoadmapKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		h.flow.Close()
		return h, nil
	}
	var cmd tea.Cmd
	h.roadmapView, cmd = h.roadmapView.Update(msg)
	return h, cmd
}

func (h *HomeScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab":
		return h, h.setFocus((h.focus + 1) % focusCount)
	case "shift+tab":
		return h, h.setFocus((h.focus + focusCount - 1) % focusCount)
	}

	switch h.focus {
	case focusSubjects:
		return h.handleSubjectKey(msg)
	case focusPlanner:
		if msg.String() == "enter" {
			return h, h.submitTopic()
		}
	case focusTutor:
		switch msg.String() {
		case "enter":
			return h, h.submitQuestion()
		case "pgup":
			h.chatFollow = false
			h.chatView.PageUp()
			return h, nil
		case "pgdown":
			h.chatView.PageDown()
			h.chatFollow = h.chatView.AtBottom()
			return h, nil
		}
	}
	return h.forwardToInput(msg)
}

func (h *HomeScreen) handleSubjectKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	cols := gridColumns
	switch msg.String() {
	case "left", "h":
		if h.cursor%cols > 0 {
			h.cursor--
		}
	case "right", "l":
		if h.cursor%cols < cols-1 && h.cursor < len(h.subjects)-1 {
			h.cursor++
		}
	case "up", "k":
		if h.cursor-cols >= 0 {
			h.cursor -= cols
		}
	case "down", "j":
		if h.cursor+cols < len(h.subjects) {
			h.cursor += cols
		}
	case "enter":
		info := h.subjects[h.cursor]
		return h, router.Push(subject.New(h.gateway, info, h.logger))
	case "e":
		return h, router.Push(explain.New(h.gateway, h.subjects[h.cursor].Subject))
	case "c":
		return h, router.Push(constants.New())
	}
	return h, nil
}

func (h *HomeScreen) setFocus(f focusArea) tea.Cmd {
	h.focus = f
	h.planner.Blur()
	h.chatInput.Blur()
	switch f {
	case focusPlanner:
		return h.planner.Focus()
	case focusTutor:
		return h.chatInput.Focus()
	}
	return nil
}

func (h *HomeScreen) forwardToInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch h.focus {
	case focusPlanner:
		h.planner, cmd = h.planner.Update(msg)
	case focusTutor:
		h.chatInput, cmd = h.chatInput.Update(msg)
	}
	return h, cmd
}

func (h *HomeScreen) submitTopic() tea.Cmd {
	topic, ok := h.flow.Begin(h.planner.Value())
	if !ok {
		return nil
	}
	h.planner.Reset()
	return tea.Batch(h.requestRoadmap(topic), h.spinner.Tick)
}

func (h *HomeScreen) requestRoadmap(topic string) tea.Cmd {
	gw := h.gateway
	return func() tea.Msg {
		return roadmapReadyMsg{to: h, Topic: topic, Roadmap: gw.GenerateRoadmap(context.Background(), topic)}
	}
}

func (h *HomeScreen) submitQuestion() tea.Cmd {
	history, ok := h.chat.Submit(h.chatInput.Value())
	if !ok {
		return nil
	}
	h.chatInput.Reset()
	h.chatInput.Disabled = true
	h.chatFollow = true
	return tea.Batch(h.requestReply(history), h.spinner.Tick)
}

func (h *HomeScreen) requestReply(history []study.Message) tea.Cmd {
	gw := h.gateway
	return func() tea.Msg {
		return chatReplyMsg{to: h, Reply: gw.Converse(context.Background(), history)}
	}
}
