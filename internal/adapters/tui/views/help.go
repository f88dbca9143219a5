package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"resumemcp/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, HelpKeys.Close) {
		return m, func() tea.Msg {
			return CloseHelpMsg{}
		}
	}
	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Resume MCP Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Browse the precomputed answers before publishing them"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Tools"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("Enter / l", "List keys, or show the answer of a tool without arguments"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Keys"))
	b.WriteString("\n")
	b.WriteString(helpLine("type", "Fuzzy filter keys"))
	b.WriteString(helpLine("↑ / ↓ / PgUp / PgDn", "Move"))
	b.WriteString(helpLine("Enter", "Show the answer"))
	b.WriteString(helpLine("Esc", "Clear the filter, then go back"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Answer"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / PgUp / PgDn", "Scroll"))
	b.WriteString(helpLine("c", "Copy the artifact path"))
	b.WriteString(helpLine("e", "Open the generated file in $EDITOR or $PAGER"))
	b.WriteString(helpLine("Esc", "Back"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Artifact paths"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  tools/<tool>.json"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  tools/<tool>/<id>.json"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  tools/get_shared_skills/<project_a>/<project_b>.json"))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 22)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len([]rune(s)) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len([]rune(s)))
}
