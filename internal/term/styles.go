package term

import "github.com/charmbracelet/lipgloss"

// Terminal styles for consistent output formatting.
// Lipgloss automatically degrades colors based on terminal capabilities.
var (
	// StyleCyan is used for component names and section headers.
	StyleCyan = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleRed is used for MAJOR issues.
	StyleRed = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// StyleYellow is used for MINOR issues.
	StyleYellow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// StyleGreen is used for perfect-match components.
	StyleGreen = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// StyleGray is used for WARNING issues and hints.
	StyleGray = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderStyle applies a lipgloss style to text when colors are enabled.
// When useColors is false, the text is returned unmodified.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}
