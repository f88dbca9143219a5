package views

import (
	"fmt"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	mcpadapter "resumemcp/internal/adapters/mcp"
	"resumemcp/internal/adapters/tui/styles"
	"resumemcp/internal/application/commands"
	"resumemcp/internal/application/precompute"
)

// PayloadKeyMap defines key bindings for the payload view
type PayloadKeyMap struct {
	Copy key.Binding
	Open key.Binding
	Back key.Binding
	Help key.Binding
	Quit key.Binding
}

var PayloadKeys = PayloadKeyMap{
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy path"),
	),
	Open: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "open file"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "back"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

const payloadChrome = 10

// PayloadModel shows the precomputed answer for one tool call
type PayloadModel struct {
	ViewState
	answers   *precompute.Result
	outputDir string
	copyFn    func(string) error

	tool     precompute.Tool
	keys     []string
	path     string
	viewport viewport.Model
}

// NewPayloadModel creates a new payload view model. Copied paths are
// resolved against outputDir.
func NewPayloadModel(answers *precompute.Result, outputDir string) *PayloadModel {
	return &PayloadModel{
		answers:   answers,
		outputDir: outputDir,
		copyFn:    clipboard.WriteAll,
		viewport:  viewport.New(80, defaultListHeight),
	}
}

// SetClipboard replaces the function used to copy the artifact path
func (m *PayloadModel) SetClipboard(fn func(string) error) {
	m.copyFn = fn
}

// SetSize updates the view dimensions and the viewport
func (m *PayloadModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.viewport.Width = max(width-6, 20)
	m.viewport.Height = m.listHeight(payloadChrome)
}

// Show renders the answer of tool for keys
func (m *PayloadModel) Show(tool precompute.Tool, keys []string) {
	m.ClearMessage()
	m.tool = tool
	m.keys = keys
	m.path = ""
	m.viewport.SetContent("")
	m.viewport.GotoTop()

	path, err := tool.Path(keys...)
	if err != nil {
		m.SetMessage(err.Error(), true)
		return
	}
	m.path = path

	payload, err := m.answers.Answer(tool.Name, keys...)
	if err != nil {
		m.SetMessage(fmt.Sprintf("%s: %v", commands.KeyLabel(keys), err), true)
		return
	}
	text, err := mcpadapter.EncodeDocument(payload)
	if err != nil {
		m.SetMessage(err.Error(), true)
		return
	}
	m.viewport.SetContent(string(text))
}

// Path returns the artifact path of the answer being shown
func (m *PayloadModel) Path() string {
	return m.path
}

// Content returns the rendered payload
func (m *PayloadModel) Content() string {
	return m.viewport.View()
}

// Init initializes the payload view
func (m *PayloadModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the payload view
func (m *PayloadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, PayloadKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, PayloadKeys.Back):
			if m.tool.Keyed() {
				tool := m.tool
				return m, func() tea.Msg {
					return SwitchToKeysMsg{Tool: tool}
				}
			}
			return m, func() tea.Msg {
				return SwitchToToolsMsg{}
			}

		case key.Matches(msg, PayloadKeys.Copy):
			m.copyPath()
			return m, nil

		case key.Matches(msg, PayloadKeys.Open):
			if m.path == "" {
				return m, nil
			}
			full := m.FullPath()
			return m, func() tea.Msg {
				return OpenArtifactMsg{Path: full}
			}

		case key.Matches(msg, PayloadKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// FullPath returns the artifact path resolved against the output directory
func (m *PayloadModel) FullPath() string {
	return filepath.Join(m.outputDir, filepath.FromSlash(m.path))
}

func (m *PayloadModel) copyPath() {
	if m.path == "" {
		return
	}
	full := m.FullPath()
	if err := m.copyFn(full); err != nil {
		m.SetMessage(fmt.Sprintf("Copy failed: %v", err), true)
		return
	}
	m.SetMessage("Copied "+full, false)
}

// View renders the payload view
func (m *PayloadModel) View() string {
	crumbs := []string{"tools", m.tool.Name}
	if m.tool.Keyed() {
		crumbs = append(crumbs, commands.KeyLabel(m.keys))
	}

	v := NewViewBuilder().Header(crumbs...)
	if m.path != "" {
		v.Line(styles.PayloadPath.Render(m.path))
	}
	v.Line(styles.PayloadBox.Render(m.viewport.View()))
	v.Muted(fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100))

	return v.
		Message(m.Message, m.MessageErr).
		Help(PayloadKeys.Copy, PayloadKeys.Open, PayloadKeys.Back, PayloadKeys.Help, PayloadKeys.Quit).
		String()
}
