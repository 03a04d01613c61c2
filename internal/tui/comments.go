package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"labpeek/internal/model"
)

// viewComments renders the comment list for the selected MR. System
// notes are shown dimmed but only user notes take part in selection.
func (m Model) viewComments(height int) string {
	mr := m.state.Selected()
	if mr == nil {
		return styleMuted.Render("\n  Nothing to show yet.")
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(
		fmt.Sprintf("  Comments on !%d %s", mr.MR.IID, truncate(mr.MR.Title, 50))))
	b.WriteString("\n\n")

	if !mr.NotesLoaded {
		b.WriteString(styleMuted.Render("  loading comments..."))
		return b.String()
	}
	if len(mr.Notes) == 0 {
		b.WriteString(styleMuted.Render("  no comments"))
		return b.String()
	}

	userIndex := 0
	rows := 0
	for _, n := range mr.Notes {
		if rows >= height-3 {
			break
		}
		line := m.renderNote(n, userIndex)
		if !n.System {
			userIndex++
		}
		b.WriteString(line)
		b.WriteString("\n")
		rows += lipgloss.Height(line)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderNote(n model.Note, userIndex int) string {
	when := n.CreatedAt.Format("2006-01-02 15:04")
	if n.System {
		return styleMuted.Render(fmt.Sprintf("    %s  %s", when, truncate(firstLine(n.Body), m.width-26)))
	}

	head := fmt.Sprintf("  %s  @%s", when, n.Author.Username)
	body := "    " + truncate(firstLine(n.Body), m.width-8)

	mr := m.state.Selected()
	if mr != nil && userIndex == mr.SelectedNote {
		return styleSelected.Render(head) + "\n" + styleSelected.Render(body)
	}
	return styleInfo.Render(head) + "\n" + body
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
