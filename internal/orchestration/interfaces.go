//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

package orchestration

import (
	"io"
	"time"

	"github.com/agbru/fraccalc/internal/scenario"
)

// ScenarioResult encapsulates the outcome of evaluating a single scenario.
// It serves as the shared domain type between orchestration and presentation layers.
type ScenarioResult struct {
	// Index is the position of the scenario in the input slice.
	Index int
	// Scenario is the evaluated input.
	Scenario scenario.Scenario
	// Report holds the rendered operations. It is empty if Err is set.
	Report scenario.Report
	// Duration is the time taken by the evaluation.
	Duration time.Duration
	// Err contains any error that occurred during the evaluation.
	Err error
}

// Summary aggregates a whole run for the closing status line.
type Summary struct {
	Total      int
	Failed     int
	Degenerate int
	Elapsed    time.Duration
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	Width   string
	Verbose bool
	Quiet   bool
	Strict  bool
}

// Observer is notified once per evaluated scenario, from the goroutine that
// evaluated it. Implementations must be safe for concurrent use.
type Observer interface {
	ObserveResult(result ScenarioResult)
}

// ObserverFunc is a function adapter that implements Observer.
type ObserverFunc func(result ScenarioResult)

// ObserveResult calls the underlying function.
func (f ObserverFunc) ObserveResult(result ScenarioResult) { f(result) }

// NullObserver discards every notification.
type NullObserver struct{}

// ObserveResult does nothing.
func (NullObserver) ObserveResult(ScenarioResult) {}

// ResultPresenter defines the interface for presenting scenario reports.
// This interface decouples the orchestration layer from presentation concerns,
// allowing different output formats without modifying the orchestration logic.
type ResultPresenter interface {
	// PresentScenario displays one scenario report (or its error).
	PresentScenario(result ScenarioResult, opts PresentationOptions, out io.Writer)

	// PresentSummary displays the closing status of the run.
	PresentSummary(summary Summary, opts PresentationOptions, out io.Writer)
}

// ErrorHandler reports a run-level error and returns the exit code for it.
type ErrorHandler interface {
	HandleError(err error, out io.Writer) int
}
