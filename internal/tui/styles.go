package tui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	colorFelt      = lipgloss.Color("#3FB950") // Green for success
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorRed       = lipgloss.Color("#F85149") // Hearts and diamonds
	colorDim       = lipgloss.Color("#6B7280")
	colorGold      = lipgloss.Color("#E3B341") // Armed card
	colorError     = lipgloss.Color("#EF4444")
	colorSeparator = lipgloss.Color("#4B5563")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGold)

	BlackCardStyle = lipgloss.NewStyle().
			Foreground(colorWhite)

	RedCardStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	// Empty slots and placeholders
	DimmedStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	// The card waiting for a destination
	ArmedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#000000")).
			Background(colorGold)

	CursorStyle = lipgloss.NewStyle().
			Reverse(true)

	ColumnHeaderStyle = lipgloss.NewStyle().
				Foreground(colorDim).
				Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(colorFelt).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	KeyStyle = lipgloss.NewStyle().
			Foreground(colorWhite)

	SeparatorStyle = lipgloss.NewStyle().
			Foreground(colorSeparator)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(colorGold)
)

// RenderKeyBinding renders a single key binding hint
func RenderKeyBinding(key, desc string) string {
	return KeyStyle.Render(key) + " " + HelpStyle.Render(desc)
}
