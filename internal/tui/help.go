package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var helpSections = []struct {
	title string
	keys  [][2]string
}{
	{"Merge requests", [][2]string{
		{"h/l, ←/→", "previous/next MR"},
		{"m", "pick MR from a list"},
		{"d", "stop tracking MR"},
		{"o", "open MR in browser"},
	}},
	{"Pipelines and jobs", [][2]string{
		{"[ / ]", "previous/next pipeline"},
		{"j/k, ↑/↓", "previous/next job"},
		{"enter", "view job log"},
		{"r", "refresh everything"},
	}},
	{"Comments", [][2]string{
		{"c", "toggle comments view"},
		{"j/k", "previous/next comment"},
	}},
	{"Log viewer", [][2]string{
		{"j/k, ctrl+d/u", "scroll"},
		{"g / G", "top / bottom"},
		{"/", "search, n/N to cycle matches"},
		{"t", "cycle timestamp display"},
		{"e", "open log in editor"},
		{"esc", "back"},
	}},
}

func (m Model) viewHelp() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("labpeek keys"))
	b.WriteString("\n\n")
	for _, sec := range helpSections {
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(sec.title))
		b.WriteString("\n")
		for _, k := range sec.keys {
			b.WriteString(styleInfo.Render(padRight(k[0], 16)))
			b.WriteString(k[1])
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(styleMuted.Render("press ? or esc to close"))

	box := stylePane.Padding(1, 3).Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
