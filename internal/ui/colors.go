package ui

// The Color* functions return the escape code of the active theme for a
// color role. They return "" when colors are disabled, so callers can always
// wrap text as Color*() + text + ColorReset().

// ColorRed marks failures.
func ColorRed() string { return GetCurrentTheme().Failure }

// ColorGreen marks finite results and successful outcomes.
func ColorGreen() string { return GetCurrentTheme().Finite }

// ColorYellow marks degenerate values and warnings.
func ColorYellow() string { return GetCurrentTheme().Degenerate }

// ColorBlue marks scenario titles.
func ColorBlue() string { return GetCurrentTheme().Title }

// ColorMagenta marks informational values.
func ColorMagenta() string { return GetCurrentTheme().Detail }

// ColorCyan marks operators, paths and environment details.
func ColorCyan() string { return GetCurrentTheme().Operator }

// ColorBold returns the bold escape code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the underline escape code.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorReset clears all formatting.
func ColorReset() string { return GetCurrentTheme().Reset }
