package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/engihub/internal/quiz"
	"github.com/abhisek/engihub/internal/ui/theme"
)

// OptionList is the answer picker of a quiz question. Styling comes from
// the option states derived by the quiz package; the list only tracks the
// cursor.
type OptionList struct {
	Options []string
	Cursor  int
}

// NewOptionList creates a picker with the cursor on the first option.
func NewOptionList(options []string) OptionList {
	return OptionList{Options: options}
}

// Update moves the cursor or picks an option. It returns the picked index,
// or -1 when the key did not pick anything or the options are locked.
func (o OptionList) Update(msg tea.Msg, states []quiz.OptionState) (OptionList, int) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !selectable(states) {
		return o, -1
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	case "enter", "space":
		return o, o.Cursor
	default:
		if idx, ok := pickKey(key, len(o.Options)); ok {
			o.Cursor = idx
			return o, idx
		}
	}
	return o, -1
}

// View renders the options, labelled A-D, wrapped to width.
func (o OptionList) View(states []quiz.OptionState, width int) string {
	locked := !selectable(states)
	lines := make([]string, 0, len(o.Options))
	for i, opt := range o.Options {
		state := quiz.OptionNeutral
		if i < len(states) {
			state = states[i]
		}

		prefix := "  "
		if !locked && i == o.Cursor {
			prefix = "▸ "
		}
		marker := ""
		switch state {
		case quiz.OptionCorrect:
			marker = "  ✓"
		case quiz.OptionIncorrect:
			marker = "  ✗"
		}

		line := fmt.Sprintf("%s%s)  %s%s", prefix, quiz.OptionLabel(i), opt, marker)
		lines = append(lines, optionStyle(state, !locked && i == o.Cursor).Width(width).Render(line))
	}
	return strings.Join(lines, "\n")
}

func optionStyle(state quiz.OptionState, cursor bool) lipgloss.Style {
	switch state {
	case quiz.OptionCorrect:
		return theme.Correct
	case quiz.OptionIncorrect:
		return theme.Incorrect
	case quiz.OptionDimmed:
		return theme.Dimmed
	}
	if cursor {
		return theme.Selected
	}
	return theme.Unselected
}

func selectable(states []quiz.OptionState) bool {
	return len(states) > 0 && states[0].Selectable()
}

// pickKey maps a-d / A-D / 1-4 to an option index.
func pickKey(key string, n int) (int, bool) {
	if len(key) != 1 {
		return 0, false
	}
	c := key[0]
	var idx int
	switch {
	case c >= 'a' && c <= 'z':
		idx = int(c - 'a')
	case c >= 'A' && c <= 'Z':
		idx = int(c - 'A')
	case c >= '1' && c <= '9':
		idx = int(c - '1')
	default:
		return 0, false
	}
	if idx >= n {
		return 0, false
	}
	return idx, true
}
