package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// viewMRSelect renders the MR picker overlay.
func (m Model) viewMRSelect() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Switch merge request"))
	b.WriteString("\n\n")

	for i, t := range m.state.Tracked {
		icon := " "
		if len(t.Pipelines) > 0 {
			icon = pipelineStyle(t.Pipelines[0].Status).Render(t.Pipelines[0].Status.Icon())
		}
		line := fmt.Sprintf("%s !%d %s  %s", icon, t.MR.IID,
			truncate(t.MR.Title, 48), styleMuted.Render("@"+t.MR.Author.Username))
		if i == m.state.MRSelectIndex {
			line = styleSelected.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleMuted.Render("j/k:move  enter:switch  esc:cancel"))

	box := stylePaneFocused.Padding(1, 2).Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
