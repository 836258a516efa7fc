package home

import (
	"github.com/abhisek/engihub/internal/screen"
	"github.com/abhisek/engihub/internal/study"
)

// roadmapReadyMsg carries the planner result. Roadmap is nil on failure.
type roadmapReadyMsg struct {
	to      screen.Screen
	Topic   string
	Roadmap *study.Roadmap
}

func (m roadmapReadyMsg) Recipient() screen.Screen { return m.to }

// chatReplyMsg carries the tutor's reply, already collapsed to a fallback
// on failure.
type chatReplyMsg struct {
	to    screen.Screen
	Reply string
}

func (m chatReplyMsg) Recipient() screen.Screen { return m.to }
