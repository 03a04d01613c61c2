package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"labpeek/internal/app"
)

// keyToAction maps a key press to a reducer action for the current
// mode. It returns nil for keys with no binding. Search-prompt input
// is handled separately in Update because it feeds a textinput, not
// the reducer.
func keyToAction(mode app.Mode, msg tea.KeyMsg) app.Action {
	key := msg.String()

	if key == "ctrl+c" {
		return app.Quit{}
	}

	switch mode {
	case app.ModeNormal:
		switch key {
		case "q":
			return app.Quit{}
		case "?":
			return app.ShowHelp{}
		case "l", "right", "tab":
			return app.NextMR{}
		case "h", "left", "shift+tab":
			return app.PrevMR{}
		case "j", "down":
			return app.NextJob{}
		case "k", "up":
			return app.PrevJob{}
		case "]":
			return app.NextPipeline{}
		case "[":
			return app.PrevPipeline{}
		case "enter":
			return app.OpenSelectedJobLog{}
		case "r":
			return app.Refresh{}
		case "d":
			return app.RemoveCurrentMR{}
		case "c":
			return app.ToggleCommentsView{}
		case "o":
			return app.OpenMRInBrowser{}
		case "m":
			return app.EnterMRSelect{}
		}

	case app.ModeViewingComments:
		switch key {
		case "q":
			return app.Quit{}
		case "c", "esc":
			return app.ToggleCommentsView{}
		case "j", "down":
			return app.NextNote{}
		case "k", "up":
			return app.PrevNote{}
		case "r":
			return app.Refresh{}
		}

	case app.ModeViewingLog:
		switch key {
		case "q", "esc":
			return app.CloseLogViewer{}
		case "j", "down":
			return app.ScrollLog{Delta: 1}
		case "k", "up":
			return app.ScrollLog{Delta: -1}
		case "ctrl+d", "pgdown":
			return app.ScrollLog{Delta: logPageSize}
		case "ctrl+u", "pgup":
			return app.ScrollLog{Delta: -logPageSize}
		case "g", "home":
			return app.ScrollLogTop{}
		case "G", "end":
			return app.ScrollLogBottom{}
		case "/":
			return app.StartSearch{}
		case "n":
			return app.NextMatch{}
		case "N":
			return app.PrevMatch{}
		case "t":
			return app.ToggleTimestamps{}
		case "e":
			return app.OpenLogInEditor{}
		}

	case app.ModeSelectingMR:
		switch key {
		case "j", "down":
			return app.MRSelectNext{}
		case "k", "up":
			return app.MRSelectPrev{}
		case "enter":
			return app.ConfirmMRSelect{}
		case "esc", "q":
			return app.CancelMRSelect{}
		}

	case app.ModeShowingHelp:
		switch key {
		case "q", "esc", "?":
			return app.HideHelp{}
		}
	}

	return nil
}

const logPageSize = 10
