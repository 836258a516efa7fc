package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	quizstate "github.com/abhisek/engihub/internal/quiz"
	"github.com/abhisek/engihub/internal/ui/components"
	"github.com/abhisek/engihub/internal/ui/theme"
)

// maxQuizWidth keeps long questions readable on wide terminals.
const maxQuizWidth = 90

func (s *QuizScreen) View(width, height int) string {
	if s.machine.Finished() {
		return s.renderResults(width, height)
	}
	return s.renderQuestion(width)
}

func (s *QuizScreen) renderQuestion(width int) string {
	w := min(width-4, maxQuizWidth)
	p := s.machine.Progress()
	q := s.machine.Current()

	var b strings.Builder

	b.WriteString(theme.Subtitle.Render(s.machine.Subject()))
	b.WriteString("\n")
	b.WriteString(components.NewStepProgress(p.Index, p.Total, w).View())
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(w).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Question))
	b.WriteString("\n\n")

	b.WriteString(s.options.View(s.machine.OptionStates(), w))

	if p.Answered {
		b.WriteString("\n\n")
		verdict := theme.Incorrect.Render("Not quite.")
		if p.Selected == q.CorrectAnswer {
			verdict = theme.Correct.Render("Correct!")
		}
		explanation := verdict + " " + theme.Body.Render(q.Explanation)
		b.WriteString(components.Panel("Explanation", lipgloss.NewStyle().Width(components.PanelInnerWidth(w)).Render(explanation), w, false))
		b.WriteString("\n\n")
		b.WriteString(components.NewButton(s.nextLabel(), true, nil).View())
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func (s *QuizScreen) renderResults(width, height int) string {
	r := s.machine.Result()
	center := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder
	b.WriteString(center(theme.Title, "Quiz Complete!"))
	b.WriteString("\n\n")
	b.WriteString(center(theme.Subtitle, s.machine.Subject()))
	b.WriteString("\n\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text).Bold(true),
		fmt.Sprintf("%d/%d", r.Score, r.Total)))
	b.WriteString("\n")
	b.WriteString(center(theme.Subtitle, fmt.Sprintf("%.0f%% correct", r.Percentage)))
	b.WriteString("\n\n")
	b.WriteString(center(theme.Subtitle, "Rank"))
	b.WriteString("\n")
	b.WriteString(center(rankStyle(r.Rank), string(r.Rank)))

	return lipgloss.PlaceVertical(height, lipgloss.Center, b.String())
}

func rankStyle(r quizstate.Rank) lipgloss.Style {
	switch r {
	case quizstate.RankLead:
		return theme.Correct
	case quizstate.RankSenior:
		return lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	case quizstate.RankManager:
		return lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true)
	}
}
