package cli

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/agbru/fraccalc/internal/config"
	"github.com/agbru/fraccalc/internal/scenario"
	"github.com/agbru/fraccalc/internal/sysmon"
	"github.com/agbru/fraccalc/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration to the user.
// It shows the integer width, timeout, parallelism and environment details,
// including a snapshot of the host load.
//
// Parameters:
//   - ctx: Bounds the host load sampling.
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(ctx context.Context, cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Evaluating fractions backed by %s%s%s with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), cfg.Width, ui.ColorReset(), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "Host load: %s%s%s.\n", ui.ColorCyan(), sysmon.Sample(ctx), ui.ColorReset())
	fmt.Fprintf(out, "Parallelism: %s%d%s concurrent evaluation(s), strict=%t.\n",
		ui.ColorCyan(), cfg.EffectiveParallel(), ui.ColorReset(), cfg.Strict)
}

// PrintExecutionMode displays which scenarios are about to run.
//
// Parameters:
//   - scenarios: The scenarios that will be evaluated.
//   - out: The writer for standard output.
func PrintExecutionMode(scenarios []scenario.Scenario, out io.Writer) {
	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.Name
	}
	fmt.Fprintf(out, "Execution mode: %s%d%s scenario(s): %s.\n",
		ui.ColorGreen(), len(scenarios), ui.ColorReset(), strings.Join(names, "; "))
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
