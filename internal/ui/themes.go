package ui

import (
	"os"
	"strconv"
	"sync"
)

// Theme maps the roles of report output to ANSI escape codes.
type Theme struct {
	Name string
	// Title marks scenario names and other primary accents.
	Title string
	// Operator marks arithmetic and relational operators, paths and
	// environment details.
	Operator string
	// Finite marks finite results and successful outcomes.
	Finite string
	// Degenerate marks Inf and NaN results and warnings.
	Degenerate string
	// Failure marks evaluation and run errors.
	Failure string
	// Detail marks informational values such as the integer width.
	Detail    string
	Bold      string
	Underline string
	Reset     string
}

const (
	escBold      = "\033[1m"
	escUnderline = "\033[4m"
	escReset     = "\033[0m"
)

func color256(n int) string {
	return "\033[38;5;" + strconv.Itoa(n) + "m"
}

var (
	// DarkTheme is tuned for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:       "dark",
		Title:      color256(39),
		Operator:   color256(245),
		Finite:     color256(82),
		Degenerate: color256(220),
		Failure:    color256(196),
		Detail:     color256(141),
		Bold:       escBold,
		Underline:  escUnderline,
		Reset:      escReset,
	}

	// LightTheme uses darker tones for light backgrounds.
	LightTheme = Theme{
		Name:       "light",
		Title:      color256(27),
		Operator:   color256(240),
		Finite:     color256(28),
		Degenerate: color256(130),
		Failure:    color256(124),
		Detail:     color256(54),
		Bold:       escBold,
		Underline:  escUnderline,
		Reset:      escReset,
	}

	// NoColorTheme disables all escape codes.
	// Used when NO_COLOR is set, --no-color is given or stdout is not a terminal.
	NoColorTheme = Theme{Name: "none"}

	themes = map[string]Theme{
		DarkTheme.Name:    DarkTheme,
		LightTheme.Name:   LightTheme,
		NoColorTheme.Name: NoColorTheme,
	}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used by tests to pin and restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme changes the active theme by name ("dark", "light", "none").
// Unknown names select the dark theme.
func SetTheme(name string) {
	t, ok := themes[name]
	if !ok {
		t = DarkTheme
	}
	SetCurrentTheme(t)
}

// InitTheme selects the theme for a run. Colors are disabled when noColor
// is true or the NO_COLOR environment variable is present
// (https://no-color.org/), whatever its value.
func InitTheme(noColor bool) {
	if _, set := os.LookupEnv("NO_COLOR"); noColor || set {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetCurrentTheme(DarkTheme)
}
