package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"resumemcp/internal/adapters/tui/views"
	"resumemcp/internal/application/precompute"
	"resumemcp/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewTools ViewState = iota
	ViewKeys
	ViewPayload
	ViewHelp
)

// App is the main TUI application model
type App struct {
	opener ports.EditorOpener

	state    ViewState
	previous ViewState
	tools    *views.ToolsModel
	keys     *views.KeysModel
	payload  *views.PayloadModel
	help     *views.HelpModel

	width  int
	height int
}

// NewApp creates a browser over precomputed answers. Artifact paths are
// reported relative to outputDir. opener may be nil.
func NewApp(answers *precompute.Result, outputDir string, opener ports.EditorOpener) *App {
	return &App{
		opener:  opener,
		state:   ViewTools,
		tools:   views.NewToolsModel(answers),
		keys:    views.NewKeysModel(answers),
		payload: views.NewPayloadModel(answers, outputDir),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.tools.Init()
}

// State returns the active view
func (a *App) State() ViewState {
	return a.state
}

// Payload exposes the payload view
func (a *App) Payload() *views.PayloadModel {
	return a.payload
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.tools.SetSize(msg.Width, msg.Height)
		a.keys.SetSize(msg.Width, msg.Height)
		a.payload.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToToolsMsg:
		a.state = ViewTools
		return a, nil

	case views.SwitchToKeysMsg:
		a.state = ViewKeys
		a.keys.SetTool(msg.Tool)
		return a, a.keys.Init()

	case views.SwitchToPayloadMsg:
		a.state = ViewPayload
		a.payload.Show(msg.Tool, msg.Keys)
		return a, nil

	case views.SwitchToHelpMsg:
		if a.state != ViewHelp {
			a.previous = a.state
		}
		a.state = ViewHelp
		return a, nil

	case views.CloseHelpMsg:
		a.state = a.previous
		return a, nil

	case views.OpenArtifactMsg:
		return a, a.openArtifact(msg.Path)

	case editorFinishedMsg:
		if msg.err != nil {
			a.payload.SetMessage(msg.err.Error(), true)
		}
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewTools:
		_, cmd = a.tools.Update(msg)
	case ViewKeys:
		_, cmd = a.keys.Update(msg)
	case ViewPayload:
		_, cmd = a.payload.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

func (a *App) openArtifact(path string) tea.Cmd {
	if a.opener == nil {
		return nil
	}

	cmd, err := a.opener.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewKeys:
		return a.keys.View()
	case ViewPayload:
		return a.payload.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.tools.View()
	}
}
