package explain

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/engihub/internal/gateway"
	"github.com/abhisek/engihub/internal/llm"
	"github.com/abhisek/engihub/internal/router"
	"github.com/abhisek/engihub/internal/study"
)

func typeText(s *ExplainScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

// runRequest executes the gateway call inside a batch and feeds the
// result back to the screen. The spinner tick is skipped.
func runRequest(t *testing.T, s *ExplainScreen, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	batch, ok := cmd().(tea.BatchMsg)
	if !ok {
		t.Fatal("expected a batch")
	}
	msg := batch[0]()
	if _, ok := msg.(explanationMsg); !ok {
		t.Fatalf("expected explanationMsg, got %T", msg)
	}
	s.Update(msg)
}

func TestExplainScreen_FreeForm(t *testing.T) {
	mock := llm.NewMockProvider(llm.TextResponse("## Definition\n**Bernoulli** relates pressure and speed.\n- Energy is conserved"))
	s := New(gateway.New(mock, gateway.DefaultConfig(), nil), study.SubjectMech)
	s.Init()

	typeText(s, "Bernoulli")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !s.loading || s.Concept() != "Bernoulli" {
		t.Fatalf("expected loading for Bernoulli, got loading=%v concept=%q", s.loading, s.Concept())
	}
	if !strings.Contains(s.View(100, 30), "Explaining Bernoulli") {
		t.Error("expected loading indicator")
	}

	runRequest(t, s, cmd)
	view := s.View(100, 30)
	for _, want := range []string{"Definition", "Bernoulli", "relates pressure and speed", "• "} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "**") {
		t.Error("bold markers should be rendered, not shown")
	}

	call, _ := mock.LastCall()
	if !strings.Contains(call.Messages[0].Content, string(study.SubjectMech)) {
		t.Error("prompt should carry the subject")
	}
}

func TestExplainScreen_BlankIgnored(t *testing.T) {
	s := New(gateway.New(llm.NewMockProvider(), gateway.DefaultConfig(), nil), study.SubjectCS)
	if _, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("blank concept must not start a request")
	}
}

func TestExplainScreen_ForConceptStartsImmediately(t *testing.T) {
	mock := llm.NewMockProvider()
	s := NewForConcept(gateway.New(mock, gateway.DefaultConfig(), nil), "Module 1: Foundations", study.SubjectAero)

	cmd := s.Init()
	runRequest(t, s, cmd)

	if s.loading {
		t.Error("loading should clear")
	}
	if !strings.Contains(s.View(100, 30), "encountered an error") {
		t.Error("failure should show the fallback explanation")
	}
}

func TestRenderInline(t *testing.T) {
	got := renderInline("a **b** c **d", lipgloss.NewStyle(), lipgloss.NewStyle())
	if strings.Count(got, "**") != 1 {
		t.Errorf("unmatched marker should be kept once: %q", got)
	}
}

func TestExplainScreen_AnswerForClosedScreenIsDropped(t *testing.T) {
	mock := llm.NewMockProvider(llm.TextResponse("Torque is a turning force."))
	gw := gateway.New(mock, gateway.DefaultConfig(), nil)

	first := New(gw, study.SubjectMech)
	r := router.New(New(gw, study.SubjectCS))
	r.Push(first)
	typeText(first, "Torque")
	cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a request")
	}
	batch := cmd().(tea.BatchMsg)

	r.Update(router.Pop())
	second := New(gw, study.SubjectMech)
	r.Push(second)
	r.Update(batch[0]())

	if second.answer != "" || second.Concept() != "" {
		t.Errorf("answer leaked into a screen that never asked: concept=%q", second.Concept())
	}
	if first.answer != "" {
		t.Error("a closed screen must not be updated")
	}
}
