package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// viewLog renders the full-screen log viewer: a title line, the
// visible window of processed lines with search highlights, and
// either the search prompt or the status bar.
func (m Model) viewLog() string {
	log := &m.state.Log

	title := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf(" %s", log.JobName))
	pos := styleMuted.Render(fmt.Sprintf("%d/%d  ts:%s ",
		log.Offset+1, len(log.Lines), log.Timestamps))
	if log.Search.Query != "" || len(log.Search.Matches) > 0 {
		if len(log.Search.Matches) > 0 {
			pos = styleWarning.Render(fmt.Sprintf("[%d/%d] ", log.Search.Current+1, len(log.Search.Matches))) + pos
		} else {
			pos = styleWarning.Render("[no matches] ") + pos
		}
	}
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(pos)
	if gap < 0 {
		gap = 0
	}
	header := title + lipgloss.NewStyle().Width(gap).Render("") + pos

	bodyHeight := m.height - logChromeLines
	if bodyHeight < 0 {
		bodyHeight = 0
	}
	body := m.renderLogWindow(bodyHeight)

	var bottom string
	if log.Searching {
		bottom = " /" + m.searchInput.View()
	} else {
		bottom = m.logStatusBar()
	}

	return header + "\n" + body + "\n" + bottom
}

// renderLogWindow returns exactly height rows starting at the scroll
// offset. Matching lines get a background highlight; the current
// match gets a stronger one.
func (m Model) renderLogWindow(height int) string {
	log := &m.state.Log

	matchSet := make(map[int]bool, len(log.Search.Matches))
	for _, idx := range log.Search.Matches {
		matchSet[idx] = true
	}
	currentMatch := log.Search.CurrentLine()

	rows := make([]string, 0, height)
	for row := 0; row < height; row++ {
		i := log.Offset + row
		if i >= len(log.Lines) {
			rows = append(rows, "")
			continue
		}
		line := log.Lines[i].Text
		switch {
		case i == currentMatch:
			line = styleCurrentMatch.Render(log.Lines[i].Plain)
		case matchSet[i]:
			line = styleMatch.Render(log.Lines[i].Plain)
		}
		rows = append(rows, line)
	}
	return strings.Join(rows, "\n")
}

func (m Model) logStatusBar() string {
	hints := "j/k:scroll  g/G:top/bot  /:search  n/N:match  t:timestamps  e:editor  esc:back"
	help := styleMuted.Render(hints + " ")

	status := ""
	if m.state.Error != "" {
		status = styleFailure.Render(m.state.Error)
	}
	left := "  " + status

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(help)
	if gap < 0 {
		gap = 0
	}
	return lipgloss.NewStyle().
		Background(colorHighlight).
		Width(m.width).
		Render(left + lipgloss.NewStyle().Width(gap).Render("") + help)
}
