// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayReport], [DisplayQuietReport].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatQuietReport], [FormatSummary].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteReportToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agbru/fraccalc/internal/orchestration"
	"github.com/agbru/fraccalc/internal/scenario"
	"github.com/agbru/fraccalc/internal/ui"
)

// OutputConfig holds configuration for report output.
type OutputConfig struct {
	// OutputFile is the path to save the report (empty for no file output).
	OutputFile string
	// Width is the integer width the scenarios were evaluated with.
	Width string
	// Quiet mode suppresses the confirmation message.
	Quiet bool
}

// WriteReportToFile writes the plain-text report of a run to a file.
// Failed scenarios are written with their error.
//
// Parameters:
//   - results: The scenario results, in presentation order.
//   - elapsed: Wall time of the run.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteReportToFile(results []orchestration.ScenarioResult, elapsed time.Duration, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# Fraction Scenario Report\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Width: %s\n", config.Width)
	fmt.Fprintf(file, "# Duration: %s\n", elapsed)
	fmt.Fprintf(file, "# Scenarios: %d\n", len(results))

	for _, res := range results {
		fmt.Fprintf(file, "\n%s\n", FormatScenarioTitle(res))
		if res.Err != nil {
			fmt.Fprintf(file, "error: %v\n", res.Err)
			continue
		}
		fmt.Fprintln(file, FormatQuietReport(res.Report))
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// FormatQuietReport formats a report for quiet mode output: the report
// lines without colors, joined by newlines.
func FormatQuietReport(report scenario.Report) string {
	return strings.Join(report.Lines(), "\n")
}

// DisplayQuietReport outputs a report in quiet mode (minimal output).
func DisplayQuietReport(out io.Writer, report scenario.Report) {
	fmt.Fprintln(out, FormatQuietReport(report))
}

// DisplaySavedReport confirms where the report was written. Nothing is
// written in quiet mode.
func DisplaySavedReport(out io.Writer, config OutputConfig) {
	if config.Quiet || config.OutputFile == "" {
		return
	}
	fmt.Fprintf(out, "\n%s✓ Report saved to: %s%s%s\n",
		ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
}
