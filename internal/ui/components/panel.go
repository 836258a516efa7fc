package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/engihub/internal/ui/theme"
)

// Panel renders body inside a rounded box with a heading. The border is
// highlighted when the panel has focus.
func Panel(heading, body string, width int, focused bool) string {
	style := theme.Panel
	if focused {
		style = theme.PanelFocused
	}
	content := body
	if heading != "" {
		content = theme.PanelHeading.Render(heading) + "\n" + body
	}
	return style.Width(width).Render(content)
}

// PanelInnerWidth is the usable text width inside a Panel of width w.
func PanelInnerWidth(w int) int {
	// border (2) + padding (2)
	inner := w - 4
	if inner < 1 {
		inner = 1
	}
	return inner
}

// Centered places s in the middle of a width x height area.
func Centered(s string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s)
}
