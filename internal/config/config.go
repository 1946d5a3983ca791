// Package config parses and validates the fraccalc command line.
//
// Resolution order (highest priority first):
//  1. CLI flags
//  2. Environment variables prefixed with FRACCALC_
//  3. Defaults declared in this file
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/fraccalc/internal/errors"
)

// EnvPrefix is prepended to every environment variable override.
const EnvPrefix = "FRACCALC_"

// Defaults.
const (
	DefaultWidth    = "int32"
	DefaultTimeout  = 30 * time.Second
	DefaultLogLevel = "warn"
)

// SupportedWidths lists the integer widths a fraction can be instantiated with.
var SupportedWidths = []string{"int8", "int16", "int32", "int64"}

// SupportedShells lists the shells GenerateCompletion knows about.
var SupportedShells = []string{"bash", "zsh", "fish", "powershell"}

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// Width is the integer type backing every fraction ("int8" .. "int64").
	Width string
	// Scenarios selects scenarios by name or 1-based index. Empty runs all.
	Scenarios []string
	// Timeout bounds the whole evaluation run.
	Timeout time.Duration
	// Parallel caps concurrent scenario evaluations. Zero picks a value
	// from the number of CPUs.
	Parallel int
	// Strict turns infinite and undefined results into a non-zero exit code.
	Strict bool
	// Quiet prints result lines only.
	Quiet bool
	// Verbose adds the kind of each result and per-scenario timings.
	Verbose bool
	// NoColor disables ANSI colors.
	NoColor bool
	// Metrics dumps the Prometheus registry after the run.
	Metrics bool
	// LogLevel is the zerolog level name for diagnostics on stderr.
	LogLevel string
	// OutputFile, when set, receives a plain-text copy of the report.
	OutputFile string
	// Completion, when set, prints a completion script for that shell and exits.
	Completion string
}

// ParseConfig parses args (without the program name) into an AppConfig and
// applies environment overrides for flags that were not set explicitly.
// A -h/--help request returns flag.ErrHelp.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	cfg := AppConfig{}
	var scenarios string

	fs.StringVar(&cfg.Width, "width", DefaultWidth, "Integer width backing the fractions ("+strings.Join(SupportedWidths, ", ")+").")
	fs.StringVar(&cfg.Width, "w", DefaultWidth, "Shorthand for --width.")
	fs.StringVar(&scenarios, "scenario", "", "Comma-separated scenario names or 1-based indices (default: all).")
	fs.StringVar(&scenarios, "s", "", "Shorthand for --scenario.")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "Maximum execution time for the whole run.")
	fs.IntVar(&cfg.Parallel, "parallel", 0, "Maximum concurrent scenario evaluations (0 = auto).")
	fs.BoolVar(&cfg.Strict, "strict", false, "Exit with a non-zero status when a result is Inf or NaN.")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Print result lines only.")
	fs.BoolVar(&cfg.Quiet, "q", false, "Shorthand for --quiet.")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Show result kinds and timings.")
	fs.BoolVar(&cfg.Verbose, "v", false, "Shorthand for --verbose.")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output (NO_COLOR is also honored).")
	fs.BoolVar(&cfg.Metrics, "metrics", false, "Print Prometheus metrics after the run.")
	fs.StringVar(&cfg.LogLevel, "log-level", DefaultLogLevel, "Diagnostic log level (debug, info, warn, error, disabled).")
	fs.StringVar(&cfg.OutputFile, "output", "", "Write the report to this file.")
	fs.StringVar(&cfg.OutputFile, "o", "", "Shorthand for --output.")
	fs.StringVar(&cfg.Completion, "completion", "", "Print a shell completion script ("+strings.Join(SupportedShells, ", ")+").")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [options]\n\n", programName)
		fmt.Fprintf(errWriter, "Evaluates exact fraction arithmetic on the built-in demonstration scenarios.\n\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		err := apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
		fmt.Fprintln(errWriter, err)
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, &scenarios, fs)
	cfg.Scenarios = splitList(scenarios)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(errWriter, err)
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the application cannot run with.
func (c AppConfig) Validate() error {
	if !slices.Contains(SupportedWidths, c.Width) {
		return apperrors.NewConfigError("unsupported width %q (accepted values: %s)", c.Width, strings.Join(SupportedWidths, ", "))
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	}
	if c.Parallel < 0 {
		return apperrors.NewConfigError("parallel must not be negative, got %d", c.Parallel)
	}
	if c.Quiet && c.Verbose {
		return apperrors.NewConfigError("--quiet and --verbose are mutually exclusive")
	}
	if c.Completion != "" && !slices.Contains(SupportedShells, c.Completion) {
		return apperrors.NewConfigError("unsupported shell %q (accepted values: %s)", c.Completion, strings.Join(SupportedShells, ", "))
	}
	return nil
}

// splitList splits a comma-separated list, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
