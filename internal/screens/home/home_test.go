package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/engihub/internal/gateway"
	"github.com/abhisek/engihub/internal/llm"
	"github.com/abhisek/engihub/internal/router"
	"github.com/abhisek/engihub/internal/screens/constants"
	"github.com/abhisek/engihub/internal/screens/subject"
	"github.com/abhisek/engihub/internal/study"
	"github.com/abhisek/engihub/internal/tutor"
)

const blockchainRoadmap = `{"topic":"Blockchain","steps":[
 {"title":"Hash functions","description":"SHA-256 and collision resistance","duration":"1 week"},
 {"title":"Merkle trees","description":"Inclusion proofs","duration":"1 week"},
 {"title":"Consensus","description":"Proof of work and proof of stake","duration":"2 weeks"},
 {"title":"Smart contracts","description":"Solidity basics","duration":"3 weeks"}]}`

func newHome(t *testing.T, responses ...llm.MockResponse) (*HomeScreen, *llm.MockProvider) {
	t.Helper()
	mock := llm.NewMockProvider(responses...)
	return New(gateway.New(mock, gateway.DefaultConfig(), nil), nil), mock
}

func keyPress(k string) tea.KeyPressMsg {
	switch k {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	}
	r := []rune(k)[0]
	return tea.KeyPressMsg{Code: r, Text: k}
}

func typeText(h *HomeScreen, text string) {
	for _, r := range text {
		h.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

// gatewayResult runs the first command of a batch, which is the gateway
// call; the second is the spinner tick.
func gatewayResult(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok, "expected a batch command")
	return batch[0]()
}

func TestHome_Title(t *testing.T) {
	h, _ := newHome(t)
	assert.Equal(t, "Engineering Hub", h.Title())
}

func TestHome_DashboardView(t *testing.T) {
	h, _ := newHome(t)
	view := h.View(120, 30)
	for _, want := range []string{"Subjects", "Study Planner", "EngiBot Tutor", "Formula Quick-Ref", "Hello Engineer!", "Gravitational Constant"} {
		assert.Contains(t, view, want)
	}
}

func TestHome_TabCyclesFocus(t *testing.T) {
	h, _ := newHome(t)
	assert.Equal(t, focusSubjects, h.focus)
	h.Update(keyPress("tab"))
	assert.Equal(t, focusPlanner, h.focus)
	assert.True(t, h.planner.Focused())
	h.Update(keyPress("tab"))
	assert.Equal(t, focusTutor, h.focus)
	assert.False(t, h.planner.Focused())
	assert.True(t, h.chatInput.Focused())
	h.Update(keyPress("tab"))
	assert.Equal(t, focusSubjects, h.focus)
}

func TestHome_RoadmapSuccessOpensOverlay(t *testing.T) {
	h, mock := newHome(t, llm.TextResponse(blockchainRoadmap))
	h.Update(keyPress("tab"))
	typeText(h, "Blockchain")

	_, cmd := h.Update(keyPress("enter"))
	require.True(t, h.flow.Loading())
	assert.Contains(t, h.View(120, 30), "Generating roadmap")

	// Enter again while loading is ignored.
	_, again := h.Update(keyPress("enter"))
	assert.Nil(t, again)

	h.Update(gatewayResult(t, cmd))
	assert.Equal(t, 1, mock.CallCount())
	require.NotNil(t, h.flow.Active())
	assert.True(t, h.HandlesEscape())

	view := h.View(120, 30)
	assert.Contains(t, view, "Path to mastering: Blockchain")
	order := []string{"Hash functions", "Merkle trees", "Consensus", "Smart contracts"}
	last := -1
	for _, title := range order {
		idx := strings.Index(view, title)
		require.Greater(t, idx, last, "%s out of order", title)
		last = idx
	}

	h.Update(keyPress("esc"))
	assert.Nil(t, h.flow.Active())
	assert.False(t, h.HandlesEscape())
}

func TestHome_RoadmapFailureKeepsDashboard(t *testing.T) {
	h, _ := newHome(t, llm.TextResponse(`{"topic": "Blockchain", "steps": [`))
	h.Update(keyPress("tab"))
	typeText(h, "Blockchain")
	_, cmd := h.Update(keyPress("enter"))
	h.Update(gatewayResult(t, cmd))

	assert.Nil(t, h.flow.Active())
	assert.False(t, h.flow.Loading())
	view := h.View(120, 30)
	assert.Contains(t, view, "Couldn't build a roadmap")
	assert.Contains(t, view, "Study Planner")
}

func TestHome_BlankTopicIgnored(t *testing.T) {
	h, mock := newHome(t)
	h.Update(keyPress("tab"))
	_, cmd := h.Update(keyPress("enter"))
	assert.Nil(t, cmd)
	assert.False(t, h.flow.Loading())
	assert.Zero(t, mock.CallCount())
}

func TestHome_TutorConversation(t *testing.T) {
	h, mock := newHome(t,
		llm.TextResponse("Stress is force per unit area."),
		llm.TextResponse("Strain is the resulting deformation."),
	)
	h.Update(keyPress("tab"))
	h.Update(keyPress("tab"))

	typeText(h, "What is stress?")
	_, cmd := h.Update(keyPress("enter"))
	require.True(t, h.chat.Typing())
	assert.Contains(t, h.View(120, 30), "waiting for EngiBot")

	// Input is disabled while EngiBot is typing.
	_, blocked := h.Update(keyPress("enter"))
	assert.Nil(t, blocked)

	h.Update(gatewayResult(t, cmd))
	assert.False(t, h.chat.Typing())

	typeText(h, "And strain?")
	_, cmd = h.Update(keyPress("enter"))
	h.Update(gatewayResult(t, cmd))

	msgs := h.chat.Messages()
	require.Len(t, msgs, 4)
	assert.Equal(t, study.RoleUser, msgs[0].Role)
	assert.Equal(t, "Strain is the resulting deformation.", msgs[3].Content)

	call, ok := mock.LastCall()
	require.True(t, ok)
	assert.Len(t, call.Messages, 3, "the whole transcript is sent")
	assert.Contains(t, h.View(120, 40), tutor.Greeting[:15])
}

func TestHome_SubjectNavigation(t *testing.T) {
	h, _ := newHome(t)
	h.Update(keyPress("right"))
	h.Update(keyPress("down"))
	assert.Equal(t, 3, h.cursor)

	_, cmd := h.Update(keyPress("enter"))
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	s, ok := push.Screen.(*subject.SubjectScreen)
	require.True(t, ok)
	assert.Equal(t, string(study.Subjects()[3].Subject), s.Title())

	_, cmd = h.Update(keyPress("c"))
	push, ok = cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &constants.ConstantsScreen{}, push.Screen)
}

func TestHome_ChatReplyArrivesWhileAnotherScreenIsOpen(t *testing.T) {
	h, _ := newHome(t,
		llm.TextResponse("Stress is force per unit area."),
		llm.TextResponse("Strain is the resulting deformation."),
	)
	r := router.New(h)
	r.Update(keyPress("tab"))
	r.Update(keyPress("tab"))
	for _, c := range "What is stress?" {
		r.Update(tea.KeyPressMsg{Code: c, Text: string(c)})
	}
	cmd := r.Update(keyPress("enter"))
	require.True(t, h.chat.Typing())

	r.Update(router.Push(constants.New())())
	r.Update(gatewayResult(t, cmd))
	assert.IsType(t, &constants.ConstantsScreen{}, r.Active(), "the reply must not change screens")

	r.Update(router.Pop())
	require.Same(t, h, r.Active())
	assert.False(t, h.chat.Typing())
	assert.False(t, h.chatInput.Disabled)
	require.Len(t, h.chat.Messages(), 2)
	assert.Equal(t, "Stress is force per unit area.", h.chat.Messages()[1].Content)

	for _, c := range "And strain?" {
		r.Update(tea.KeyPressMsg{Code: c, Text: string(c)})
	}
	cmd = r.Update(keyPress("enter"))
	require.True(t, h.chat.Typing(), "a new question is accepted after returning")
	r.Update(gatewayResult(t, cmd))
	assert.Len(t, h.chat.Messages(), 4)
}

func TestHome_RoadmapArrivesWhileAnotherScreenIsOpen(t *testing.T) {
	h, _ := newHome(t, llm.TextResponse(blockchainRoadmap))
	r := router.New(h)
	r.Update(keyPress("tab"))
	for _, c := range "Blockchain" {
		r.Update(tea.KeyPressMsg{Code: c, Text: string(c)})
	}
	cmd := r.Update(keyPress("enter"))
	require.True(t, h.flow.Loading())

	r.Update(router.Push(constants.New())())
	r.Update(gatewayResult(t, cmd))
	r.Update(router.Pop())

	assert.False(t, h.flow.Loading())
	require.NotNil(t, h.flow.Active())
	assert.Equal(t, "Blockchain", h.flow.Active().Topic)
	assert.Contains(t, r.View(120, 30), "Path to mastering: Blockchain")
}
