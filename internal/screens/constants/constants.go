package constants

import (
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/engihub/internal/screen"
	"github.com/abhisek/engihub/internal/study"
	"github.com/abhisek/engihub/internal/ui/components"
	"github.com/abhisek/engihub/internal/ui/layout"
	"github.com/abhisek/engihub/internal/ui/theme"
)

// ConstantsScreen lists the full table of engineering constants.
type ConstantsScreen struct {
	constants []study.Constant
	view      viewport.Model
}

var _ screen.Screen = (*ConstantsScreen)(nil)
var _ screen.KeyHintProvider = (*ConstantsScreen)(nil)

// New creates the constants screen.
func New() *ConstantsScreen {
	return &ConstantsScreen{
		constants: study.AllConstants(),
		view:      viewport.New(),
	}
}

func (c *ConstantsScreen) Init() tea.Cmd {
	return nil
}

func (c *ConstantsScreen) Title() string {
	return "Engineering Constants"
}

func (c *ConstantsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *ConstantsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	c.view, cmd = c.view.Update(msg)
	return c, cmd
}

func (c *ConstantsScreen) View(width, height int) string {
	w := min(width-4, 72)
	inner := components.PanelInnerWidth(w)

	labelWidth := 0
	for _, k := range c.constants {
		labelWidth = max(labelWidth, lipgloss.Width(k.Label))
	}

	rows := make([]string, 0, len(c.constants))
	for _, k := range c.constants {
		label := theme.Dimmed.Width(labelWidth + 2).Render(k.Label)
		rows = append(rows, label+theme.Body.Render(k.Value))
	}

	// panel border (2) + heading (1)
	c.view.SetWidth(inner)
	c.view.SetHeight(max(1, height-3))
	c.view.SetContent(strings.Join(rows, "\n"))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.Panel("Constants & Reference Values", c.view.View(), w, true))
}
