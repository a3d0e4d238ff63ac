package tui

import "github.com/charmbracelet/lipgloss"

// ------- styling (Lip Gloss) -------
var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	accentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)

	boxChecked   = "☑"
	boxUnchecked = "☐"
)

// SetMono drops colors, for -no-color and the mono theme.
func SetMono() {
	plain := lipgloss.NewStyle()
	titleStyle = plain.Bold(true)
	accentStyle = plain
	mutedStyle = plain
	errorStyle = plain.Bold(true)
	successStyle = plain
	selectedStyle = plain.Reverse(true)
	helpStyle = plain
	boxChecked, boxUnchecked = "[x]", "[ ]"
}

func panelString(inner string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1).
		Render(inner)
}
