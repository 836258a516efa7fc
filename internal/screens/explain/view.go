package explain

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/engihub/internal/ui/components"
	"github.com/abhisek/engihub/internal/ui/theme"
)

func (s *ExplainScreen) View(width, height int) string {
	w := min(width-4, 100)
	inner := components.PanelInnerWidth(w)

	header := theme.Subtitle.Render("Subject: "+string(s.subject)) + "\n" + s.input.View()

	var body string
	switch {
	case s.loading:
		body = s.spinner.View() + " " + theme.Subtitle.Render("Explaining "+s.concept+"…")
	case s.answer != "":
		// header (2) + blank (1) + panel border (2) + heading (1)
		s.view.SetWidth(inner)
		s.view.SetHeight(max(1, height-6))
		s.view.SetContent(renderMarkdown(s.answer, inner))
		body = components.Panel(s.concept, s.view.View(), w, false)
	default:
		body = theme.Hint.Render("Type a concept and press Enter.")
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, header+"\n\n"+body)
}

// renderMarkdown styles the small subset of Markdown the model uses:
// headings, bullet lists and bold spans.
func renderMarkdown(md string, width int) string {
	heading := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	bold := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	text := lipgloss.NewStyle().Foreground(theme.Text)

	var out []string
	for _, line := range strings.Split(strings.ReplaceAll(md, "\r\n", "\n"), "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "#"):
			out = append(out, heading.Width(width).Render(strings.TrimSpace(strings.TrimLeft(trimmed, "#"))))
		case strings.HasPrefix(trimmed, "- "), strings.HasPrefix(trimmed, "* "):
			indent := len(line) - len(strings.TrimLeft(line, " \t"))
			item := renderInline(trimmed[2:], bold, text)
			out = append(out, lipgloss.NewStyle().
				PaddingLeft(indent).
				Width(width).
				Render("• "+item))
		default:
			out = append(out, text.Width(width).Render(renderInline(line, bold, text)))
		}
	}
	return strings.Join(out, "\n")
}

// renderInline replaces **bold** spans with styled text.
func renderInline(s string, bold, text lipgloss.Style) string {
	parts := strings.Split(s, "**")
	if len(parts) < 3 {
		return text.Render(s)
	}
	var b strings.Builder
	for i, p := range parts {
		if i%2 == 1 && i < len(parts)-1 {
			b.WriteString(bold.Render(p))
			continue
		}
		if i%2 == 1 {
			// unmatched trailing marker
			p = "**" + p
		}
		b.WriteString(text.Render(p))
	}
	return b.String()
}
