package subject

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/engihub/internal/gateway"
	"github.com/abhisek/engihub/internal/llm"
	"github.com/abhisek/engihub/internal/router"
	"github.com/abhisek/engihub/internal/screens/explain"
	quizscreen "github.com/abhisek/engihub/internal/screens/quiz"
	"github.com/abhisek/engihub/internal/study"
)

const quizJSON = `{"subject":"Civil Engineering","questions":[
 {"question":"Which test measures concrete strength?","options":["Slump","Cube","Proctor","Vane"],"correctAnswer":1,"explanation":"Cube crushing."}]}`

func newScreen(t *testing.T, responses ...llm.MockResponse) (*SubjectScreen, *llm.MockProvider) {
	t.Helper()
	mock := llm.NewMockProvider(responses...)
	info, err := study.LookupSubject("civil")
	if err != nil {
		t.Fatalf("LookupSubject: %v", err)
	}
	return New(gateway.New(mock, gateway.DefaultConfig(), nil), info, nil), mock
}

func enter() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEnter} }
func down() tea.KeyPressMsg  { return tea.KeyPressMsg{Code: tea.KeyDown} }

func TestSubjectScreen_View(t *testing.T) {
	s, _ := newScreen(t)
	if s.Title() != "Civil Engineering" {
		t.Errorf("Title = %q", s.Title())
	}
	view := s.View(100, 30)
	for _, want := range []string{"Take Assessment Quiz", "Module 1: Foundations", "Module 2: Advanced Topics"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSubjectScreen_QuizSuccessPushesQuiz(t *testing.T) {
	s, mock := newScreen(t, llm.TextResponse(quizJSON))

	_, cmd := s.Update(enter())
	if cmd == nil || !s.loading {
		t.Fatal("expected quiz request to start")
	}
	if !strings.Contains(s.View(100, 30), "Generating Quiz") {
		t.Error("expected loading indicator")
	}

	// A second Enter while loading is ignored.
	if _, cmd := s.Update(enter()); cmd != nil {
		t.Error("expected no second request while loading")
	}

	msg := s.requestQuiz()()
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 model call, got %d", mock.CallCount())
	}
	_, cmd = s.Update(msg)
	if s.loading {
		t.Error("loading should clear")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected a push")
	}
	if _, ok := push.Screen.(*quizscreen.QuizScreen); !ok {
		t.Errorf("expected quiz screen, got %T", push.Screen)
	}
}

func TestSubjectScreen_QuizFailureShowsNotice(t *testing.T) {
	s, _ := newScreen(t, llm.TextResponse(`{"subject":"x"`))

	s.Update(enter())
	_, cmd := s.Update(s.requestQuiz()())
	if cmd != nil {
		t.Error("failed quiz must not navigate")
	}
	if s.loading {
		t.Error("loading should clear on failure")
	}
	if !strings.Contains(s.View(100, 30), "Couldn't generate a quiz") {
		t.Error("expected failure notice")
	}
}

func TestSubjectScreen_ModuleOpensExplanation(t *testing.T) {
	s, _ := newScreen(t)
	s.Update(down())
	_, cmd := s.Update(enter())
	if cmd == nil {
		t.Fatal("expected a command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected a push")
	}
	ex, ok := push.Screen.(*explain.ExplainScreen)
	if !ok {
		t.Fatalf("expected explain screen, got %T", push.Screen)
	}
	if ex.Concept() != "Module 1: Foundations" {
		t.Errorf("concept = %q", ex.Concept())
	}
}

// runQuizCall runs the gateway call of a quiz request batch.
func runQuizCall(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a quiz request")
	}
	batch, ok := cmd().(tea.BatchMsg)
	if !ok {
		t.Fatal("expected a batch")
	}
	return batch[0]()
}

func TestSubjectScreen_QuizForClosedScreenIsDropped(t *testing.T) {
	mock := llm.NewMockProvider(llm.TextResponse(quizJSON))
	gw := gateway.New(mock, gateway.DefaultConfig(), nil)
	civil, _ := study.LookupSubject("civil")
	aero, _ := study.LookupSubject("aero")

	r := router.New(explain.New(gw, civil.Subject))
	civilScreen := New(gw, civil, nil)
	r.Push(civilScreen)
	cmd := r.Update(enter())
	if !civilScreen.loading {
		t.Fatal("expected the civil quiz to be loading")
	}

	r.Update(router.Pop())
	aeroScreen := New(gw, aero, nil)
	r.Push(aeroScreen)

	if cmd := r.Update(runQuizCall(t, cmd)); cmd != nil {
		t.Errorf("a quiz for a closed screen must not start, got %T", cmd())
	}
	if r.Active() != aeroScreen {
		t.Errorf("expected the aerospace screen to stay active, got %T", r.Active())
	}
	if aeroScreen.loading || aeroScreen.notice != "" {
		t.Error("the aerospace screen never asked for a quiz")
	}
}

func TestSubjectScreen_QuizDeliveredThroughRouter(t *testing.T) {
	s, _ := newScreen(t, llm.TextResponse(quizJSON))
	r := router.New(explain.New(s.gateway, s.info.Subject))
	r.Push(s)

	cmd := r.Update(runQuizCall(t, r.Update(enter())))
	if cmd == nil {
		t.Fatal("expected the quiz screen to be pushed")
	}
	r.Update(cmd())
	if _, ok := r.Active().(*quizscreen.QuizScreen); !ok {
		t.Errorf("expected quiz screen on top, got %T", r.Active())
	}
}
