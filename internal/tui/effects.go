package tui

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"labpeek/internal/app"
)

// dispatch converts one effect into a command. Each command closes
// over identifier copies from the effect, never over the state, so it
// is safe to run off the update goroutine.
func (m Model) dispatch(eff app.Effect) tea.Cmd {
	client := m.client

	switch e := eff.(type) {
	case app.FetchMergeRequests:
		return func() tea.Msg {
			mrs, err := client.ListOpenMergeRequests(e.ProjectID, "")
			if err != nil {
				return app.APIError{Message: err.Error()}
			}
			return app.MergeRequestsLoaded{MRs: mrs}
		}

	case app.FetchMergeRequestsByBranch:
		return func() tea.Msg {
			mrs, err := client.ListOpenMergeRequests(e.ProjectID, e.Branch)
			if err != nil {
				return app.APIError{Message: err.Error()}
			}
			return app.MergeRequestsLoaded{MRs: mrs}
		}

	case app.RefreshAll:
		return func() tea.Msg {
			mrs, err := client.ListOpenMergeRequests(e.ProjectID, e.Branch)
			if err != nil {
				return app.APIError{Message: err.Error()}
			}
			return app.MergeRequestsLoaded{MRs: mrs}
		}

	case app.FetchPipelines:
		return func() tea.Msg {
			pipelines, err := client.ListMRPipelines(e.ProjectID, e.MRIID)
			if err != nil {
				return app.APIError{Message: err.Error()}
			}
			return app.PipelinesLoaded{MRIndex: e.MRIndex, Pipelines: pipelines}
		}

	case app.FetchJobs:
		return func() tea.Msg {
			jobs, err := client.ListPipelineJobs(e.ProjectID, e.PipelineID)
			if err != nil {
				return app.APIError{Message: err.Error()}
			}
			return app.JobsLoaded{MRIndex: e.MRIndex, PipelineID: e.PipelineID, Jobs: jobs}
		}

	case app.FetchJobTrace:
		return func() tea.Msg {
			trace, err := client.GetJobTrace(e.ProjectID, e.JobID)
			if err != nil {
				return app.APIError{Message: err.Error()}
			}
			return app.JobTraceLoaded{JobID: e.JobID, JobName: e.JobName, Trace: trace}
		}

	case app.FetchNotes:
		return func() tea.Msg {
			notes, err := client.ListMRNotes(e.ProjectID, e.MRIID)
			if err != nil {
				return app.APIError{Message: err.Error()}
			}
			return app.NotesLoaded{MRIndex: e.MRIndex, Notes: notes}
		}

	case app.OpenInEditor:
		path, err := writeTraceFile(e.JobName, e.Content)
		if err != nil {
			return func() tea.Msg { return app.EditorFinished{Err: err} }
		}
		// ExecProcess releases the terminal, runs the editor, and
		// restores the alt screen afterwards, including on error.
		parts := strings.Fields(m.editor)
		if len(parts) == 0 {
			parts = []string{"vim"}
		}
		cmd := exec.Command(parts[0], append(parts[1:], path)...)
		return tea.ExecProcess(cmd, func(err error) tea.Msg {
			return app.EditorFinished{Err: err}
		})

	case app.OpenURL:
		url := e.URL
		return func() tea.Msg {
			if err := openURL(url); err != nil {
				return app.APIError{Message: fmt.Sprintf("open browser: %v", err)}
			}
			return nil
		}
	}

	return nil
}

// writeTraceFile saves a trace to a temp file named after the job so
// the editor's title bar says which log it is.
func writeTraceFile(jobName, content string) (string, error) {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, jobName)
	f, err := os.CreateTemp("", "labpeek-"+name+"-*.log")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(content); err != nil {
		return "", fmt.Errorf("write trace: %w", err)
	}
	return f.Name(), nil
}

func openURL(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
