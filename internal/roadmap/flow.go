// Package roadmap holds the study-planner flow: one topic in, one roadmap
// out, shown until the user closes it.
package roadmap

import (
	"fmt"
	"strings"

	"github.com/abhisek/engihub/internal/study"
)

// Flow is the planner controller. It allows one request at a time and
// keeps at most one roadmap.
type Flow struct {
	loading bool
	active  *study.Roadmap
	failed  string
}

// Begin starts a request for topic. It returns the trimmed topic and
// false when the topic is blank or a request is already in flight.
func (f *Flow) Begin(topic string) (string, bool) {
	topic = strings.TrimSpace(topic)
	if topic == "" || f.loading {
		return "", false
	}
	f.loading = true
	f.failed = ""
	return topic, true
}

// Complete applies a gateway result. A nil roadmap leaves the previous
// state as it was and records a notice for the topic.
func (f *Flow) Complete(topic string, r *study.Roadmap) {
	f.loading = false
	if r == nil {
		f.failed = topic
		return
	}
	f.active = r
}

// Close discards the active roadmap.
func (f *Flow) Close() {
	f.active = nil
}

// Loading reports whether a request is in flight.
func (f *Flow) Loading() bool { return f.loading }

// Active returns the roadmap on display, or nil.
func (f *Flow) Active() *study.Roadmap { return f.active }

// Notice returns a one-line message about the last failed request, or "".
func (f *Flow) Notice() string {
	if f.failed == "" {
		return ""
	}
	return fmt.Sprintf("Couldn't build a roadmap for %q. Try again.", f.failed)
}

// Entry is a roadmap step with its display number.
type Entry struct {
	Number int
	study.RoadmapStep
}

// Entries numbers the steps 1..N in their original order.
func Entries(r *study.Roadmap) []Entry {
	if r == nil {
		return nil
	}
	out := make([]Entry, len(r.Steps))
	for i, s := range r.Steps {
		out[i] = Entry{Number: i + 1, RoadmapStep: s}
	}
	return out
}
