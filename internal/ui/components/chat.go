package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/engihub/internal/study"
	"github.com/abhisek/engihub/internal/ui/theme"
)

// RenderTranscript draws the greeting followed by the conversation as
// speaker-labelled bubbles. User messages are right-aligned.
func RenderTranscript(greeting string, msgs []study.Message, typing bool, width int) string {
	bubbleWidth := width * 4 / 5
	if bubbleWidth < 10 {
		bubbleWidth = width
	}

	var blocks []string
	if greeting != "" {
		blocks = append(blocks, botBubble(greeting, bubbleWidth, width))
	}
	for _, m := range msgs {
		if m.Role == study.RoleUser {
			blocks = append(blocks, userBubble(m.Content, bubbleWidth, width))
		} else {
			blocks = append(blocks, botBubble(m.Content, bubbleWidth, width))
		}
	}
	if typing {
		blocks = append(blocks, theme.Hint.Render("EngiBot is typing…"))
	}
	return strings.Join(blocks, "\n\n")
}

func userBubble(text string, bubbleWidth, width int) string {
	label := theme.Speaker.Render("You")
	body := theme.UserBubble.Width(min(bubbleWidth, lipgloss.Width(text)+2)).Render(text)
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, lipgloss.JoinVertical(lipgloss.Right, label, body))
}

func botBubble(text string, bubbleWidth, width int) string {
	label := theme.Speaker.Render("EngiBot")
	body := theme.BotBubble.Width(min(bubbleWidth, lipgloss.Width(text)+2)).Render(text)
	return lipgloss.PlaceHorizontal(width, lipgloss.Left, lipgloss.JoinVertical(lipgloss.Left, label, body))
}
