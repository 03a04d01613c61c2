// Package tui runs the terminal dashboard. It owns the bubbletea
// program loop: key presses become reducer actions, the effects the
// reducer returns are dispatched as commands, and every command's
// result comes back through the same message queue as another action.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"labpeek/internal/api"
	"labpeek/internal/app"
)

// Chrome rows around the log viewport: title line and status bar.
const logChromeLines = 2

type Model struct {
	state  *app.State
	client *api.Client
	editor string

	// tickEvery is how often the auto-refresh threshold is evaluated;
	// it bounds how late an auto-refresh can fire.
	tickEvery time.Duration

	width  int
	height int

	searchInput textinput.Model
}

func New(state *app.State, client *api.Client, editor string, tickEvery time.Duration) Model {
	if tickEvery <= 0 {
		tickEvery = time.Second
	}
	ti := textinput.New()
	ti.Placeholder = "search"
	ti.CharLimit = 256
	return Model{
		state:       state,
		client:      client,
		editor:      editor,
		tickEvery:   tickEvery,
		searchInput: ti,
	}
}

func (m Model) Init() tea.Cmd {
	var eff app.Effect = app.FetchMergeRequests{ProjectID: m.state.ProjectID}
	if m.state.FocusBranch && m.state.Branch != "" {
		eff = app.FetchMergeRequestsByBranch{ProjectID: m.state.ProjectID, Branch: m.state.Branch}
	}
	return tea.Batch(m.dispatch(eff), m.tickCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.searchInput.Width = msg.Width - 4
		return m.apply(app.Resize{Width: msg.Width, Height: msg.Height - logChromeLines})

	case tea.KeyMsg:
		if m.state.Mode == app.ModeViewingLog && m.state.Log.Searching {
			return m.updateSearchPrompt(msg)
		}
		action := keyToAction(m.state.Mode, msg)
		if action == nil {
			return m, nil
		}
		if _, ok := action.(app.StartSearch); ok {
			m.searchInput.SetValue("")
			m.searchInput.Focus()
			next, cmd := m.apply(action)
			return next, tea.Batch(cmd, textinput.Blink)
		}
		return m.apply(action)

	case app.Action:
		next, cmd := m.apply(msg)
		if _, ok := msg.(app.Tick); ok {
			return next, tea.Batch(cmd, m.tickCmd())
		}
		return next, cmd
	}

	return m, nil
}

// updateSearchPrompt routes keys to the search textinput while the
// prompt is open. Only enter and esc reach the reducer.
func (m Model) updateSearchPrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.apply(app.Quit{})
	case "enter":
		query := m.searchInput.Value()
		m.searchInput.Blur()
		return m.apply(app.ExecuteSearch{Query: query})
	case "esc":
		m.searchInput.Blur()
		return m.apply(app.CancelSearch{})
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// apply runs one action through the reducer and turns the resulting
// effects into commands. Effects run concurrently; their results
// arrive back here as actions in whatever order they finish.
func (m Model) apply(action app.Action) (tea.Model, tea.Cmd) {
	effects := m.state.Apply(action)
	cmds := make([]tea.Cmd, 0, len(effects)+1)
	for _, eff := range effects {
		cmds = append(cmds, m.dispatch(eff))
	}
	if m.state.ShouldQuit {
		cmds = append(cmds, tea.Quit)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tickEvery, func(t time.Time) tea.Msg {
		return app.Tick{Now: t}
	})
}
