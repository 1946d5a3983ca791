package cli

import (
	"fmt"
	"io"

	apperrors "github.com/agbru/fraccalc/internal/errors"
	"github.com/agbru/fraccalc/internal/format"
	"github.com/agbru/fraccalc/internal/fraction"
	"github.com/agbru/fraccalc/internal/orchestration"
	"github.com/agbru/fraccalc/internal/scenario"
	"github.com/agbru/fraccalc/internal/ui"
)

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
// It provides formatted, colorized output for scenario reports in the
// command-line interface.
type CLIResultPresenter struct{}

// Verify interface compliance.
var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

// PresentScenario displays one scenario: a "Test N: name" title followed by
// the report lines. Scenarios after the first are separated by a blank line.
// In quiet mode only the report lines are written.
func (CLIResultPresenter) PresentScenario(result orchestration.ScenarioResult, opts orchestration.PresentationOptions, out io.Writer) {
	if opts.Quiet {
		if result.Err == nil {
			DisplayQuietReport(out, result.Report)
		}
		return
	}

	if result.Index > 0 {
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, ui.HeaderStyle().Render(FormatScenarioTitle(result)))

	if result.Err != nil {
		fmt.Fprintf(out, "%s❌ Failure: %v%s\n", ui.ColorRed(), result.Err, ui.ColorReset())
		return
	}

	DisplayReport(out, result.Report, opts.Verbose)
	if opts.Verbose {
		fmt.Fprintln(out, ui.DimStyle().Render(fmt.Sprintf("(%s, evaluated in %s)",
			result.Report.Width, format.FormatExecutionDuration(result.Duration))))
	}
}

// PresentSummary displays the closing status line. Nothing is written in
// quiet mode.
func (CLIResultPresenter) PresentSummary(summary orchestration.Summary, opts orchestration.PresentationOptions, out io.Writer) {
	if opts.Quiet {
		return
	}
	line := FormatSummary(summary)
	fmt.Fprintf(out, "\n%s\n", ui.SummaryStyle(summary.Failed > 0, summary.Degenerate > 0).Render(line))
}

// HandleError reports a run-level error in the error color and returns its
// exit code.
func (CLIResultPresenter) HandleError(err error, out io.Writer) int {
	fmt.Fprintf(out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
	return apperrors.ExitCodeFor(err)
}

// FormatScenarioTitle returns the title printed above a scenario report.
func FormatScenarioTitle(result orchestration.ScenarioResult) string {
	return fmt.Sprintf("Test %d: %s", result.Index+1, result.Scenario.Name)
}

// FormatSummary returns the uncolored closing status of a run.
func FormatSummary(s orchestration.Summary) string {
	return fmt.Sprintf("%d scenario(s), %d failed, %d degenerate result(s) in %s",
		s.Total, s.Failed, s.Degenerate, format.FormatExecutionDuration(s.Elapsed))
}

// DisplayReport writes the lines of a report. Degenerate values are
// highlighted; verbose mode appends the kind of every operation result.
func DisplayReport(out io.Writer, report scenario.Report, verbose bool) {
	for _, res := range report.Results {
		color := ui.ColorGreen()
		if res.Kind != fraction.Finite {
			color = ui.ColorYellow()
		}
		fmt.Fprintf(out, "%s %s%s%s %s = %s%s%s",
			report.Left, ui.ColorCyan(), res.Op, ui.ColorReset(), report.Right,
			color, res.Value, ui.ColorReset())
		if verbose {
			fmt.Fprintf(out, "  [%s]", res.Kind)
		}
		fmt.Fprintln(out)
	}
	for _, rel := range report.Relations {
		if rel.Holds {
			fmt.Fprintf(out, "%s %s%s%s %s\n", report.Left, ui.ColorCyan(), rel.Op, ui.ColorReset(), report.Right)
		}
	}
}
