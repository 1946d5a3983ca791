// Package ui provides theme and color support for the application's user interface.
// It defines color schemes, ANSI escape code functions for inline coloring, and
// lipgloss styles for block elements, so every presentation layer styles
// output consistently.
//
// Colors are disabled by the --no-color flag or the NO_COLOR environment variable.
package ui
