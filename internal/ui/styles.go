package ui

import "github.com/charmbracelet/lipgloss"

// Color palette - torchlit amber theme for the keep.
// Single accent color, everything else stays muted.
const (
	ColorAmber    = "214" // Primary accent - torchlight
	ColorAmberDim = "136" // Dimmed amber for borders/labels
	ColorWhite    = "255" // Room names, important text
	ColorGray     = "245" // Secondary text
	ColorDarkGray = "238" // Separators, borders
	ColorRed      = "196" // Errors
)

// Styles holds the lipgloss styles for TUI rendering.
type Styles struct {
	Title     lipgloss.Style
	RoomName  lipgloss.Style
	Item      lipgloss.Style
	Exit      lipgloss.Style
	Prompt    lipgloss.Style
	Response  lipgloss.Style
	Dim       lipgloss.Style
	Error     lipgloss.Style
	InputLine lipgloss.Style
}

// DefaultStyles returns styled components for TUI mode.
func DefaultStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAmber)),
		RoomName:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorWhite)),
		Item:      lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAmber)),
		Exit:      lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAmberDim)),
		Prompt:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAmber)),
		Response:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDarkGray)),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed)),
		InputLine: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWhite)),
	}
}

// NoColorStyles returns unstyled components for plain terminals.
func NoColorStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle(),
		RoomName:  lipgloss.NewStyle(),
		Item:      lipgloss.NewStyle(),
		Exit:      lipgloss.NewStyle(),
		Prompt:    lipgloss.NewStyle(),
		Response:  lipgloss.NewStyle(),
		Dim:       lipgloss.NewStyle(),
		Error:     lipgloss.NewStyle(),
		InputLine: lipgloss.NewStyle(),
	}
}

// GetStyles returns the appropriate styles for the color preference.
func GetStyles(noColor bool) Styles {
	if noColor {
		return NoColorStyles()
	}
	return DefaultStyles()
}
