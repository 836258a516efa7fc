package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/engihub/internal/roadmap"
	"github.com/abhisek/engihub/internal/study"
	"github.com/abhisek/engihub/internal/tutor"
	"github.com/abhisek/engihub/internal/ui/components"
	"github.com/abhisek/engihub/internal/ui/layout"
	"github.com/abhisek/engihub/internal/ui/theme"
)

// gridColumns is the number of subject cards per row.
const gridColumns = 2

// plannerHeight is the rendered height of the planner panel.
const plannerHeight = 6

func (h *HomeScreen) View(width, height int) string {
	if r := h.flow.Active(); r != nil {
		return h.renderRoadmap(r, width, height)
	}

	leftWidth := width * 2 / 5
	if leftWidth < 34 {
		leftWidth = 34
	}
	rightWidth := width - leftWidth - 1

	quickRef := h.renderQuickRef(leftWidth)
	subjects := h.renderSubjects(leftWidth, height-lipgloss.Height(quickRef))
	left := lipgloss.JoinVertical(lipgloss.Left, subjects, quickRef)

	planner := h.renderPlanner(rightWidth)
	chat := h.renderTutor(rightWidth, height-lipgloss.Height(planner))
	right := lipgloss.JoinVertical(lipgloss.Left, planner, chat)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (h *HomeScreen) renderSubjects(width, height int) string {
	inner := components.PanelInnerWidth(width)
	cellWidth := (inner - 1) / gridColumns
	focused := h.focus == focusSubjects

	var rows []string
	for i := 0; i < len(h.subjects); i += gridColumns {
		var cells []string
		for j := i; j < i+gridColumns && j < len(h.subjects); j++ {
			cells = append(cells, h.renderSubjectCell(j, cellWidth, focused))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(cells, " ")))
	}

	body := strings.Join(rows, "\n")
	if focused && height >= 14 {
		desc := h.subjects[h.cursor].Description
		body += "\n\n" + theme.Hint.Width(inner).Render(desc)
	}
	return components.Panel("Subjects", body, width, focused)
}

func (h *HomeScreen) renderSubjectCell(i, width int, focused bool) string {
	info := h.subjects[i]
	label := layout.Truncate(info.Icon+" "+shortName(info.Subject), width)
	style := theme.Unselected.Width(width)
	if focused && i == h.cursor {
		style = theme.Selected.Width(width).Reverse(true)
	}
	return style.Render(label)
}

// shortName drops the trailing "Engineering" so cards fit side by side.
func shortName(s study.Subject) string {
	name := strings.TrimSuffix(string(s), " & Engineering")
	return strings.TrimSuffix(name, " Engineering")
}

func (h *HomeScreen) renderQuickRef(width int) string {
	inner := components.PanelInnerWidth(width)
	var lines []string
	for _, c := range study.QuickRef() {
		label := theme.Dimmed.Render(c.Label)
		value := theme.Body.Render(c.Value)
		gap := inner - lipgloss.Width(label) - lipgloss.Width(value)
		if gap < 1 {
			lines = append(lines, label, "  "+value)
			continue
		}
		lines = append(lines, label+strings.Repeat(" ", gap)+value)
	}
	lines = append(lines, theme.Hint.Render("c: all constants"))
	return components.Panel("Formula Quick-Ref", strings.Join(lines, "\n"), width, false)
}

func (h *HomeScreen) renderPlanner(width int) string {
	inner := components.PanelInnerWidth(width)
	h.planner.SetWidth(inner - 3)
	h.planner.Disabled = h.flow.Loading()

	status := theme.Hint.Render("Enter a topic to get a step-by-step roadmap.")
	switch {
	case h.flow.Loading():
		status = h.spinner.View() + " " + theme.Subtitle.Render("Generating roadmap…")
	case h.flow.Notice() != "":
		status = theme.Notice.Render(layout.Truncate(h.flow.Notice(), inner))
	}

	body := h.planner.View() + "\n\n" + status
	return components.Panel("Study Planner", body, width, h.focus == focusPlanner)
}

func (h *HomeScreen) renderTutor(width, height int) string {
	inner := components.PanelInnerWidth(width)
	// border (2) + heading (1) + blank (1) + input (1)
	viewHeight := height - 5
	if viewHeight < 1 {
		viewHeight = 1
	}

	h.chatView.SetWidth(inner)
	h.chatView.SetHeight(viewHeight)
	h.chatView.SetContent(components.RenderTranscript(tutor.Greeting, h.chat.Messages(), h.chat.Typing(), inner))
	if h.chatFollow {
		h.chatView.GotoBottom()
	}

	h.chatInput.SetWidth(inner - 3)
	input := h.chatInput.View()
	if h.chat.Typing() {
		input = h.spinner.View() + " " + theme.Hint.Render("waiting for EngiBot…")
	}

	body := h.chatView.View() + "\n\n" + input
	return components.Panel("EngiBot Tutor", body, width, h.focus == focusTutor)
}

func (h *HomeScreen) renderRoadmap(r *study.Roadmap, width, height int) string {
	inner := components.PanelInnerWidth(width)
	title := theme.Title.Render("Path to mastering: " + r.Topic)

	var blocks []string
	for _, e := range roadmap.Entries(r) {
		badge := theme.Badge.Render(fmt.Sprintf("%d", e.Number))
		head := badge + " " + theme.Body.Bold(true).Render(e.Title)
		if e.Duration != "" {
			head += "  " + theme.Notice.Render(e.Duration)
		}
		desc := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(inner - 4).
			PaddingLeft(4).
			Render(e.Description)
		blocks = append(blocks, head+"\n"+desc)
	}

	// border (2) + title (1) + blank (1)
	h.roadmapView.SetWidth(inner)
	h.roadmapView.SetHeight(max(1, height-4))
	h.roadmapView.SetContent(strings.Join(blocks, "\n\n"))

	return components.Panel("", title+"\n\n"+h.roadmapView.View(), width, true)
}
