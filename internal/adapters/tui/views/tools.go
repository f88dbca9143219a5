package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"resumemcp/internal/adapters/tui/styles"
	"resumemcp/internal/application/commands"
	"resumemcp/internal/application/precompute"
)

// ToolsKeyMap defines key bindings for the tools view
type ToolsKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Help  key.Binding
	Quit  key.Binding
}

var ToolsKeys = ToolsKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter", "l", "right"),
		key.WithHelp("enter", "open"),
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

// ToolsModel lists every precomputed tool
type ToolsModel struct {
	ViewState
	answers *precompute.Result
	tools   []commands.ToolSummary
	cursor  int
}

// NewToolsModel creates a new tools view model
func NewToolsModel(answers *precompute.Result) *ToolsModel {
	return &ToolsModel{answers: answers}
}

// Init loads the tool summaries
func (m *ToolsModel) Init() tea.Cmd {
	return m.loadTools
}

func (m *ToolsModel) loadTools() tea.Msg {
	tools, err := commands.NewListToolsCommand(m.answers).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return toolsLoadedMsg{tools}
}

type toolsLoadedMsg struct {
	tools []commands.ToolSummary
}

type errMsg struct {
	err error
}

// Update handles messages for the tools view
func (m *ToolsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case toolsLoadedMsg:
		m.tools = msg.tools
		m.cursor = min(m.cursor, max(len(m.tools)-1, 0))
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, ToolsKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, ToolsKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, ToolsKeys.Down):
			if m.cursor < len(m.tools)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, ToolsKeys.Enter):
			s, ok := m.Selected()
			if !ok {
				return m, nil
			}
			if !s.Tool.Keyed() {
				return m, func() tea.Msg {
					return SwitchToPayloadMsg{Tool: s.Tool}
				}
			}
			return m, func() tea.Msg {
				return SwitchToKeysMsg{Tool: s.Tool}
			}

		case key.Matches(msg, ToolsKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

// Selected returns the tool under the cursor
func (m *ToolsModel) Selected() (commands.ToolSummary, bool) {
	if m.cursor >= 0 && m.cursor < len(m.tools) {
		return m.tools[m.cursor], true
	}
	return commands.ToolSummary{}, false
}

// View renders the tools list
func (m *ToolsModel) View() string {
	if m.tools == nil && m.Message == "" {
		return "Loading..."
	}

	v := NewViewBuilder().Header("tools")
	for i, s := range m.tools {
		v.Line(m.renderTool(s, i == m.cursor))
	}
	return v.
		Message(m.Message, m.MessageErr).
		Help(ToolsKeys.Up, ToolsKeys.Down, ToolsKeys.Enter, ToolsKeys.Help, ToolsKeys.Quit).
		String()
}

func (m *ToolsModel) renderTool(s commands.ToolSummary, selected bool) string {
	name := fmt.Sprintf("%-28s", s.Tool.Name)
	params := "(" + strings.Join(s.Tool.Params, ", ") + ")"
	count := fmt.Sprintf("%d", s.Answers)

	if selected {
		return styles.RowSelected.Render(fmt.Sprintf("%s %-28s %s", name, params, count))
	}

	nameStyle := lipgloss.NewStyle().Foreground(styles.ArityColor(s.Tool.Arity()))
	return fmt.Sprintf("%s %s %s",
		nameStyle.Render(name),
		styles.MutedText.Render(fmt.Sprintf("%-28s", params)),
		styles.RowCount.Render(count),
	)
}
