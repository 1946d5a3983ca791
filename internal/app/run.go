package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/agbru/fraccalc/internal/cli"
	apperrors "github.com/agbru/fraccalc/internal/errors"
	"github.com/agbru/fraccalc/internal/logging"
	"github.com/agbru/fraccalc/internal/orchestration"
)

// runScenarios evaluates the selected scenarios and presents the reports.
func (a *Application) runScenarios(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	scenarios, err := orchestration.GetScenariosToRun(a.Config)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}

	if a.Config.Verbose && !a.Config.Quiet {
		cli.PrintExecutionConfig(ctx, a.Config, out)
		cli.PrintExecutionMode(scenarios, out)
	}

	execOpts := orchestration.ExecOptions{
		Width:    a.Config.Width,
		Parallel: a.Config.EffectiveParallel(),
		Evaluate: a.Evaluate,
		Logger:   a.Logger,
	}

	start := time.Now()
	results, runErr := orchestration.ExecuteScenarios(ctx, scenarios, execOpts, a.metricsObserver())
	elapsed := time.Since(start)

	presenter := cli.CLIResultPresenter{}
	presOpts := orchestration.PresentationOptions{
		Width:   a.Config.Width,
		Verbose: a.Config.Verbose,
		Quiet:   a.Config.Quiet,
		Strict:  a.Config.Strict,
	}
	exitCode := orchestration.AnalyzeResults(results, elapsed, presOpts, presenter, presenter, out)
	if runErr != nil && exitCode == apperrors.ExitSuccess {
		exitCode = presenter.HandleError(a.interruption(runErr), out)
	}

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Width:      a.Config.Width,
		Quiet:      a.Config.Quiet,
	}
	if err := cli.WriteReportToFile(results, elapsed, outputCfg); err != nil {
		a.Logger.Error("saving report failed", err, logging.String("path", outputCfg.OutputFile))
		fmt.Fprintf(a.ErrWriter, "Error saving report: %v\n", err)
		if exitCode == apperrors.ExitSuccess {
			exitCode = apperrors.ExitErrorGeneric
		}
	} else {
		cli.DisplaySavedReport(out, outputCfg)
	}

	if a.Config.Metrics {
		fmt.Fprintln(out)
		if err := a.Metrics.WriteText(out); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error writing metrics: %v\n", err)
		}
	}

	return exitCode
}

// metricsObserver feeds every evaluated scenario into the collector.
func (a *Application) metricsObserver() orchestration.Observer {
	return orchestration.ObserverFunc(func(res orchestration.ScenarioResult) {
		if res.Err != nil {
			a.Metrics.ObserveFailure(res.Duration)
			return
		}
		a.Metrics.ObserveReport(res.Report, res.Duration)
	})
}

// interruption converts a deadline into a TimeoutError naming the limit.
func (a *Application) interruption(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.TimeoutError{Operation: "scenario run", Limit: a.Config.Timeout}
	}
	return err
}
