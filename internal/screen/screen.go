package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/engihub/internal/ui/layout"
)

// Screen is one full-page view managed by the router.
type Screen interface {
	// Init returns the command to run when the screen opens.
	Init() tea.Cmd

	// Update handles a message and returns the (possibly new) screen.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area, excluding header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// EscapeHandler is implemented by screens that consume Esc themselves,
// for example to close an overlay, instead of letting the app go back.
type EscapeHandler interface {
	// HandlesEscape reports whether the next Esc belongs to the screen.
	HandlesEscape() bool
}
