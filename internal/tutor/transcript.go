// Package tutor holds the chat panel's transcript and turn-taking rules.
package tutor

import (
	"strings"

	"github.com/abhisek/engihub/internal/study"
)

// Greeting is shown above the conversation. It is not part of the
// transcript and is never sent to the model.
const Greeting = "Hello Engineer! I'm EngiBot. Ask me about fluid dynamics, structural stress, semiconductor physics, or anything else bothering you today."

// Transcript is an append-only conversation log.
type Transcript struct {
	msgs []study.Message
}

// Append adds a message at the end.
func (t *Transcript) Append(m study.Message) {
	t.msgs = append(t.msgs, m)
}

// Messages returns a copy of the conversation in order.
func (t *Transcript) Messages() []study.Message {
	out := make([]study.Message, len(t.msgs))
	copy(out, t.msgs)
	return out
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	return len(t.msgs)
}

// Panel is the chat controller: it owns the transcript and the typing
// indicator, and allows one outstanding question at a time.
type Panel struct {
	transcript Transcript
	typing     bool
}

// Submit appends a user message and returns the full history to send.
// Blank input and input while a reply is pending are refused.
func (p *Panel) Submit(text string) ([]study.Message, bool) {
	text = strings.TrimSpace(text)
	if text == "" || p.typing {
		return nil, false
	}
	p.transcript.Append(study.Message{Role: study.RoleUser, Content: text})
	p.typing = true
	return p.transcript.Messages(), true
}

// Receive appends the assistant's reply and clears the typing indicator.
// A reply with no question pending is dropped and reported as false.
func (p *Panel) Receive(reply string) bool {
	if !p.typing {
		return false
	}
	p.transcript.Append(study.Message{Role: study.RoleAssistant, Content: reply})
	p.typing = false
	return true
}

// Typing reports whether a reply is pending.
func (p *Panel) Typing() bool {
	return p.typing
}

// Messages returns the transcript.
func (p *Panel) Messages() []study.Message {
	return p.transcript.Messages()
}
