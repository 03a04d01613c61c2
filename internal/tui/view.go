package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"labpeek/internal/app"
)

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	switch m.state.Mode {
	case app.ModeViewingLog:
		return m.viewLog()
	case app.ModeShowingHelp:
		return m.viewHelp()
	case app.ModeSelectingMR:
		return m.viewMRSelect()
	}

	header := m.viewHeader()
	tabs := m.viewTabs()
	status := m.viewStatusBar()

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(tabs) - lipgloss.Height(status)
	if bodyHeight < 0 {
		bodyHeight = 0
	}

	var body string
	if m.state.Mode == app.ModeViewingComments {
		body = m.viewComments(bodyHeight)
	} else {
		body = m.viewDashboard(bodyHeight)
	}
	body = lipgloss.NewStyle().Height(bodyHeight).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, tabs, body, status)
}

func (m Model) viewHeader() string {
	title := styleHeader.Render("labpeek")

	scope := ""
	if m.state.FocusBranch && m.state.Branch != "" {
		scope = styleMuted.Render(fmt.Sprintf("  branch: %s", m.state.Branch))
	}

	refreshed := ""
	if !m.state.LastRefresh.IsZero() {
		refreshed = styleMuted.Render(
			fmt.Sprintf("updated %s ", m.state.LastRefresh.Format("15:04:05")))
	}

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(scope) - lipgloss.Width(refreshed)
	if gap < 0 {
		gap = 0
	}
	return title + scope + lipgloss.NewStyle().Width(gap).Render("") + refreshed
}

func (m Model) viewTabs() string {
	if len(m.state.Tracked) == 0 {
		return styleMuted.Render("  no open merge requests")
	}

	tabs := make([]string, 0, len(m.state.Tracked))
	for i, t := range m.state.Tracked {
		label := fmt.Sprintf("!%d %s", t.MR.IID, truncate(t.MR.Title, 24))
		if t.Loading {
			label += " …"
		}
		if i == m.state.SelectedMR {
			tabs = append(tabs, styleTabActive.Render(label))
		} else {
			tabs = append(tabs, styleTab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStatusBar() string {
	status := m.state.Status
	if m.state.Error != "" {
		status = styleFailure.Render(m.state.Error)
	}

	hints := "h/l:mr  [/]:pipeline  j/k:job  enter:log  c:comments  r:refresh  ?:help  q:quit"
	if m.state.Mode == app.ModeViewingComments {
		hints = "j/k:comment  r:refresh  c/esc:back  q:quit"
	}
	help := styleMuted.Render(hints + " ")

	left := "  " + status
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(help)
	if gap < 0 {
		gap = 0
	}
	padding := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.NewStyle().
		Background(colorHighlight).
		Width(m.width).
		Render(left + padding + help)
}

// truncate shortens plain (unstyled) text to max runes. Styled rows
// go through ansi.Truncate instead so escape sequences do not count
// against the width.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return string(r[:max])
	}
	return strings.TrimSpace(string(r[:max-1])) + "…"
}
