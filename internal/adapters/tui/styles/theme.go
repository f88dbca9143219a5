package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Tool shapes
	NoKeyColor   = lipgloss.Color("#6366F1") // Indigo
	SingleColor  = lipgloss.Color("#60A5FA") // Blue
	PairKeyColor = lipgloss.Color("#EC4899") // Pink

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	Breadcrumb = lipgloss.NewStyle().
			Foreground(Secondary)

	// List rows
	Row = lipgloss.NewStyle()

	RowSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	RowCount = lipgloss.NewStyle().
			Foreground(Muted)

	RowEmpty = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Payload
	PayloadPath = lipgloss.NewStyle().
			Foreground(Warning)

	PayloadBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Muted).
			Padding(0, 1)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Filter match highlight
	Match = lipgloss.NewStyle().
		Background(Warning).
		Foreground(Black)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// ArityColor returns the color used for a tool taking n keys
func ArityColor(n int) lipgloss.Color {
	switch n {
	case 0:
		return NoKeyColor
	case 1:
		return SingleColor
	default:
		return PairKeyColor
	}
}
