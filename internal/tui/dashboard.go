package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"labpeek/internal/app"
)

// viewDashboard renders the normal-mode body: pipeline list on the
// left, the selected pipeline's jobs on the right.
func (m Model) viewDashboard(height int) string {
	mr := m.state.Selected()
	if mr == nil {
		return styleMuted.Render("\n  Nothing to show yet.")
	}

	leftWidth := m.width / 3
	if leftWidth < 28 {
		leftWidth = 28
	}
	rightWidth := m.width - leftWidth
	innerHeight := height - 2
	if innerHeight < 0 {
		innerHeight = 0
	}

	left := stylePane.
		Width(leftWidth - 2).
		Height(innerHeight).
		Render(m.viewPipelines(mr, leftWidth-4, innerHeight))
	right := stylePaneFocused.
		Width(rightWidth - 2).
		Height(innerHeight).
		Render(m.viewJobs(mr, rightWidth-4, innerHeight))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m Model) viewPipelines(mr *app.TrackedMergeRequest, width, height int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Pipelines"))
	b.WriteString("\n")

	if mr.Loading {
		b.WriteString(styleMuted.Render("loading..."))
		return b.String()
	}
	if len(mr.Pipelines) == 0 {
		b.WriteString(styleMuted.Render("no pipelines"))
		return b.String()
	}

	for i, p := range mr.Pipelines {
		if i >= height-1 {
			break
		}
		icon := pipelineStyle(p.Status).Render(p.Status.Icon())
		line := fmt.Sprintf("%s #%d %s %s", icon, p.ID, p.ShortSHA(), relativeTime(p.CreatedAt))
		line = ansi.Truncate(line, width, "…")
		if i == mr.SelectedPipeline {
			line = styleSelected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) viewJobs(mr *app.TrackedMergeRequest, width, height int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Jobs"))
	b.WriteString("\n")

	p := m.state.SelectedPipeline()
	if p == nil {
		b.WriteString(styleMuted.Render("no pipeline selected"))
		return b.String()
	}
	jobs, ok := mr.Jobs[p.ID]
	if !ok {
		b.WriteString(styleMuted.Render("loading jobs..."))
		return b.String()
	}
	if len(jobs) == 0 {
		b.WriteString(styleMuted.Render("no jobs"))
		return b.String()
	}

	for i, j := range jobs {
		if i >= height-1 {
			break
		}
		icon := jobStyle(j.Status).Render(j.Status.Icon())
		line := fmt.Sprintf("%s %-30s %-12s %s", icon, truncate(j.Name, 30), j.Stage, formatDuration(j.Duration))
		line = ansi.Truncate(line, width, "…")
		if i == m.state.SelectedJob {
			line = styleSelected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatDuration(seconds float64) string {
	if seconds <= 0 {
		return "-"
	}
	d := time.Duration(seconds * float64(time.Second)).Round(time.Second)
	if d >= time.Minute {
		return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%ds", int(d.Seconds()))
}

func relativeTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
