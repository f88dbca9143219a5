package views

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"resumemcp/internal/adapters/tui/styles"
	"resumemcp/internal/application/commands"
	"resumemcp/internal/application/precompute"
)

// KeysKeyMap defines key bindings for the keys view
type KeysKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Select   key.Binding
	Back     key.Binding
	Quit     key.Binding
}

var KeysKeys = KeysKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "page down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "show answer"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear/back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// keysChrome is the number of rows taken by everything but the list
const keysChrome = 12

// KeysModel lists the answer keys of one tool with a fuzzy filter
type KeysModel struct {
	ViewState
	answers  *precompute.Result
	tool     precompute.Tool
	input    textinput.Model
	matches  []commands.KeyMatch
	scroller *Scroller
}

// NewKeysModel creates a new keys view model
func NewKeysModel(answers *precompute.Result) *KeysModel {
	input := textinput.New()
	input.Placeholder = "Filter keys..."
	input.Prompt = "/ "
	input.Focus()

	return &KeysModel{
		answers:  answers,
		input:    input,
		scroller: NewScroller(defaultListHeight),
	}
}

// SetTool selects the tool whose keys are listed. The filter is kept when
// returning to the same tool.
func (m *KeysModel) SetTool(tool precompute.Tool) {
	if tool.Name == m.tool.Name {
		return
	}
	m.tool = tool
	m.input.SetValue("")
	m.scroller.Reset()
	m.ClearMessage()
	m.filter()
}

// Tool returns the tool being browsed
func (m *KeysModel) Tool() precompute.Tool {
	return m.tool
}

// Init initializes the keys view
func (m *KeysModel) Init() tea.Cmd {
	m.filter()
	return textinput.Blink
}

// SetSize updates the view dimensions and the list window
func (m *KeysModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.scroller.SetHeight(m.listHeight(keysChrome))
}

func (m *KeysModel) filter() {
	matches, err := commands.NewSearchKeysCommand(m.answers, m.tool.Name, m.input.Value()).Execute(context.Background())
	if err != nil {
		m.matches = nil
		m.SetMessage(err.Error(), true)
	} else {
		m.matches = matches
	}
	m.scroller.SetTotal(len(m.matches))
}

// Update handles messages for the keys view
func (m *KeysModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, KeysKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, KeysKeys.Back):
			if m.input.Value() != "" {
				m.input.SetValue("")
				m.scroller.Reset()
				m.filter()
				return m, nil
			}
			return m, func() tea.Msg {
				return SwitchToToolsMsg{}
			}

		case key.Matches(msg, KeysKeys.Up):
			m.scroller.Up()
			return m, nil

		case key.Matches(msg, KeysKeys.Down):
			m.scroller.Down()
			return m, nil

		case key.Matches(msg, KeysKeys.PageUp):
			m.scroller.PageUp()
			return m, nil

		case key.Matches(msg, KeysKeys.PageDown):
			m.scroller.PageDown()
			return m, nil

		case key.Matches(msg, KeysKeys.Select):
			match, ok := m.Selected()
			if !ok {
				return m, nil
			}
			tool := m.tool
			return m, func() tea.Msg {
				return SwitchToPayloadMsg{Tool: tool, Keys: match.Keys}
			}
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.scroller.Reset()
		m.filter()
	}
	return m, cmd
}

// Selected returns the key under the cursor
func (m *KeysModel) Selected() (commands.KeyMatch, bool) {
	i := m.scroller.Cursor()
	if i >= 0 && i < len(m.matches) {
		return m.matches[i], true
	}
	return commands.KeyMatch{}, false
}

// Matches returns the keys currently listed
func (m *KeysModel) Matches() []commands.KeyMatch {
	return m.matches
}

// View renders the keys view
func (m *KeysModel) View() string {
	v := NewViewBuilder().Header("tools", m.tool.Name)
	v.Line(styles.InputFocused.Render(m.input.View()))
	v.BlankLine()

	switch {
	case len(m.matches) == 0 && m.input.Value() != "":
		v.Muted("No keys match")
	case len(m.matches) == 0:
		v.Muted("No answers for this tool")
	default:
		start, end := m.scroller.Visible()
		for i := start; i < end; i++ {
			label := m.matches[i].Label
			if i == m.scroller.Cursor() {
				v.Line(styles.RowSelected.Render(label))
			} else {
				v.Line(styles.Row.Render(label))
			}
		}
		v.Muted(fmt.Sprintf("%d of %d", m.scroller.Cursor()+1, len(m.matches)))
	}

	return v.
		Message(m.Message, m.MessageErr).
		Help(KeysKeys.Up, KeysKeys.Down, KeysKeys.Select, KeysKeys.Back).
		String()
}
