package tui

import (
	"github.com/charmbracelet/lipgloss"

	"labpeek/internal/model"
)

var (
	colorPrimary   = lipgloss.Color("#FC6D26")
	colorSuccess   = lipgloss.Color("#10B981")
	colorFailure   = lipgloss.Color("#EF4444")
	colorWarning   = lipgloss.Color("#F59E0B")
	colorInfo      = lipgloss.Color("#3B82F6")
	colorMuted     = lipgloss.Color("#6B7280")
	colorBorder    = lipgloss.Color("#374151")
	colorHighlight = lipgloss.Color("#1F2937")

	stylePane = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder)

	stylePaneFocused = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary)

	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F9FAFB")).
			Background(colorPrimary).
			Padding(0, 1)

	styleTab = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	styleTabActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F9FAFB")).
			Background(colorHighlight).
			Padding(0, 1)

	styleSuccess = lipgloss.NewStyle().Foreground(colorSuccess)
	styleFailure = lipgloss.NewStyle().Foreground(colorFailure)
	styleWarning = lipgloss.NewStyle().Foreground(colorWarning)
	styleInfo    = lipgloss.NewStyle().Foreground(colorInfo)
	styleMuted   = lipgloss.NewStyle().Foreground(colorMuted)

	styleSelected = lipgloss.NewStyle().
			Bold(true).
			Background(colorHighlight)

	styleMatch = lipgloss.NewStyle().
			Background(lipgloss.Color("#374151"))

	styleCurrentMatch = lipgloss.NewStyle().
				Bold(true).
				Background(lipgloss.Color("#92400E"))
)

func jobStyle(status model.JobStatus) lipgloss.Style {
	switch status {
	case model.JobSuccess:
		return styleSuccess
	case model.JobFailed:
		return styleFailure
	case model.JobCanceled, model.JobManual:
		return styleWarning
	case model.JobRunning:
		return styleInfo
	case model.JobSkipped:
		return styleMuted
	default:
		return styleMuted
	}
}

func pipelineStyle(status model.PipelineStatus) lipgloss.Style {
	switch status {
	case model.PipelineSuccess:
		return styleSuccess
	case model.PipelineFailed:
		return styleFailure
	case model.PipelineCanceled, model.PipelineManual:
		return styleWarning
	case model.PipelineRunning:
		return styleInfo
	case model.PipelineSkipped:
		return styleMuted
	default:
		return styleMuted
	}
}
