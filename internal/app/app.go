package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/agbru/fraccalc/internal/cli"
	"github.com/agbru/fraccalc/internal/config"
	apperrors "github.com/agbru/fraccalc/internal/errors"
	"github.com/agbru/fraccalc/internal/logging"
	"github.com/agbru/fraccalc/internal/metrics"
	"github.com/agbru/fraccalc/internal/orchestration"
	"github.com/agbru/fraccalc/internal/scenario"
	"github.com/agbru/fraccalc/internal/ui"
)

// Application represents the fraccalc application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Logger    logging.Logger
	Metrics   *metrics.Collector
	Evaluate  orchestration.EvaluateFunc
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithEvaluator replaces the scenario evaluator, mainly for tests.
func WithEvaluator(f orchestration.EvaluateFunc) AppOption {
	return func(a *Application) { a.Evaluate = f }
}

// WithCollector sets the metrics collector updated after each scenario.
func WithCollector(c *metrics.Collector) AppOption {
	return func(a *Application) { a.Metrics = c }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "fraccalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Metrics == nil {
		app.Metrics = metrics.NewCollector(cfg.Metrics)
	}
	if app.Logger == nil {
		app.Logger = logging.NewLogger(errWriter, "fraccalc")
	}
	if app.Evaluate == nil {
		app.Evaluate = scenario.EvaluateWidth
	}
	return app, nil
}

// Run executes the application based on the configured mode and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	zerolog.SetGlobalLevel(logging.ParseLevel(a.Config.LogLevel))
	ui.InitTheme(a.Config.NoColor || !ui.IsTerminal(out))

	return a.runScenarios(ctx, out)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	selectors := make([]string, len(scenario.Defaults()))
	for i := range selectors {
		selectors[i] = strconv.Itoa(i + 1)
	}
	if err := cli.GenerateCompletion(out, a.Config.Completion, selectors); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
