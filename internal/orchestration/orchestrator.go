package orchestration

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/fraccalc/internal/errors"
	"github.com/agbru/fraccalc/internal/logging"
	"github.com/agbru/fraccalc/internal/scenario"
)

const tracerName = "github.com/agbru/fraccalc/internal/orchestration"

// EvaluateFunc evaluates one scenario at the given width.
type EvaluateFunc func(width string, s scenario.Scenario) (scenario.Report, error)

// ExecOptions configures ExecuteScenarios.
type ExecOptions struct {
	// Width is the integer width name passed to Evaluate.
	Width string
	// Parallel caps concurrent evaluations. Values below 1 mean no cap.
	Parallel int
	// Evaluate defaults to scenario.EvaluateWidth.
	Evaluate EvaluateFunc
	// Logger defaults to a no-op logger.
	Logger logging.Logger
}

// ExecuteScenarios orchestrates the concurrent evaluation of scenarios.
//
// Every scenario runs in its own errgroup goroutine inside an OpenTelemetry
// span. Results are returned in input order; the observer is notified as each
// one completes. Scenarios that had not started when ctx was canceled carry
// the context error.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - scenarios: The scenarios to evaluate.
//   - opts: Width, parallelism and evaluator.
//   - observer: Receives each result as it completes (use NullObserver to ignore).
//
// Returns:
//   - []ScenarioResult: One result per scenario, in input order.
//   - error: The context error if the run was canceled or timed out.
func ExecuteScenarios(ctx context.Context, scenarios []scenario.Scenario, opts ExecOptions, observer Observer) ([]ScenarioResult, error) {
	evaluate := opts.Evaluate
	if evaluate == nil {
		evaluate = scenario.EvaluateWidth
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewZerologAdapter(zerolog.Nop())
	}
	if observer == nil {
		observer = NullObserver{}
	}

	tracer := otel.Tracer(tracerName)
	ctx, runSpan := tracer.Start(ctx, "scenarios.execute", trace.WithAttributes(
		attribute.String("fraction.width", opts.Width),
		attribute.Int("scenario.count", len(scenarios)),
	))
	defer runSpan.End()

	g, gctx := errgroup.WithContext(ctx)
	if opts.Parallel > 0 {
		g.SetLimit(opts.Parallel)
	}
	results := make([]ScenarioResult, len(scenarios))

	for i, s := range scenarios {
		g.Go(func() error {
			results[i] = evaluateOne(gctx, tracer, i, s, opts.Width, evaluate)
			res := results[i]
			if res.Err != nil {
				logger.Error("scenario failed", res.Err, logging.String("scenario", s.Name), logging.String("width", opts.Width))
			} else {
				logger.Debug("scenario evaluated",
					logging.String("scenario", s.Name),
					logging.String("width", opts.Width),
					logging.Int("degenerate", len(res.Report.Degenerate())),
					logging.Float64("duration_us", float64(res.Duration.Nanoseconds())/1e3),
				)
			}
			observer.ObserveResult(res)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		runSpan.SetStatus(codes.Error, err.Error())
		return results, apperrors.WrapError(err, "scenario run interrupted")
	}
	return results, nil
}

func evaluateOne(ctx context.Context, tracer trace.Tracer, idx int, s scenario.Scenario, width string, evaluate EvaluateFunc) ScenarioResult {
	res := ScenarioResult{Index: idx, Scenario: s}
	if err := ctx.Err(); err != nil {
		res.Err = apperrors.EvaluationError{Scenario: s.Name, Cause: err}
		return res
	}

	_, span := tracer.Start(ctx, "scenario.evaluate", trace.WithAttributes(
		attribute.String("scenario.name", s.Name),
		attribute.Int("scenario.index", idx),
	))
	defer span.End()

	start := time.Now()
	report, err := evaluate(width, s)
	res.Duration = time.Since(start)
	if err != nil {
		res.Err = err
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return res
	}
	res.Report = report
	span.SetAttributes(attribute.Int("fraction.degenerate", len(report.Degenerate())))
	return res
}

// AnalyzeResults presents every result in order, then the summary, and
// returns the process exit code for the run.
//
// The first evaluation error decides the exit code. Without errors, strict
// mode turns any infinite or undefined result into ExitErrorDegenerate.
//
// Parameters:
//   - results: The results of ExecuteScenarios.
//   - elapsed: Wall time of the whole run.
//   - opts: Presentation options.
//   - presenter: The result presenter for display formatting.
//   - errHandler: Reports the deciding error and maps it to an exit code.
//   - out: The io.Writer for the report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeResults(results []ScenarioResult, elapsed time.Duration, opts PresentationOptions, presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	summary := Summary{Total: len(results), Elapsed: elapsed}
	var firstErr, firstDegenerate error

	for _, res := range results {
		presenter.PresentScenario(res, opts, out)
		if res.Err != nil {
			summary.Failed++
			if firstErr == nil {
				firstErr = res.Err
			}
			continue
		}
		for _, d := range res.Report.Degenerate() {
			summary.Degenerate++
			if firstDegenerate == nil {
				firstDegenerate = apperrors.DegenerateError{Scenario: res.Scenario.Name, Op: d.Op, Kind: d.Kind.String()}
			}
		}
	}

	presenter.PresentSummary(summary, opts, out)

	switch {
	case firstErr != nil:
		return errHandler.HandleError(firstErr, out)
	case opts.Strict && firstDegenerate != nil:
		return errHandler.HandleError(firstDegenerate, out)
	}
	return apperrors.ExitSuccess
}

// DefaultErrorHandler prints the error and maps it with apperrors.ExitCodeFor.
type DefaultErrorHandler struct{}

// HandleError writes err to out and returns its exit code.
func (DefaultErrorHandler) HandleError(err error, out io.Writer) int {
	fmt.Fprintf(out, "Error: %v\n", err)
	return apperrors.ExitCodeFor(err)
}
