package ui

import "github.com/charmbracelet/lipgloss"

// Palette defines lipgloss-compatible colors for block elements such as
// scenario headers and the run summary.
type Palette struct {
	Accent  lipgloss.TerminalColor
	Text    lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
}

var (
	// DarkPalette matches DarkTheme.
	DarkPalette = Palette{
		Accent:  lipgloss.Color("#00AFFF"),
		Text:    lipgloss.Color("#E0E0E0"),
		Success: lipgloss.Color("#9ece6a"),
		Warning: lipgloss.Color("#FFB347"),
		Error:   lipgloss.Color("#FF4444"),
		Dim:     lipgloss.Color("#666666"),
	}

	// NoColorPalette renders text with the terminal's default colors.
	NoColorPalette = Palette{
		Accent:  lipgloss.NoColor{},
		Text:    lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Dim:     lipgloss.NoColor{},
	}
)

// GetCurrentPalette returns the palette matching the currently active theme.
// When NoColorTheme is active, returns NoColorPalette; otherwise DarkPalette.
func GetCurrentPalette() Palette {
	themeMutex.RLock()
	defer themeMutex.RUnlock()

	if currentTheme.Name == "none" {
		return NoColorPalette
	}
	return DarkPalette
}

// HeaderStyle is the style of a scenario title.
func HeaderStyle() lipgloss.Style {
	p := GetCurrentPalette()
	return lipgloss.NewStyle().Bold(true).Foreground(p.Accent)
}

// SummaryStyle is the style of the closing status line. A failed run is
// rendered with the error color, a run with degenerate values with the
// warning color.
func SummaryStyle(failed, degenerate bool) lipgloss.Style {
	p := GetCurrentPalette()
	style := lipgloss.NewStyle().Bold(true)
	switch {
	case failed:
		return style.Foreground(p.Error)
	case degenerate:
		return style.Foreground(p.Warning)
	default:
		return style.Foreground(p.Success)
	}
}

// DimStyle is used for secondary details such as durations.
func DimStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(GetCurrentPalette().Dim)
}
