package orchestration

import (
	"github.com/agbru/fraccalc/internal/config"
	"github.com/agbru/fraccalc/internal/scenario"
)

// GetScenariosToRun determines which scenarios should be evaluated based on
// the configuration. Scenarios keep their built-in order regardless of the
// order of the selectors.
//
// Parameters:
//   - cfg: The application configuration containing the scenario selection.
//
// Returns:
//   - []scenario.Scenario: The scenarios to evaluate.
//   - error: A ValidationError if a selector matches nothing or is ambiguous.
func GetScenariosToRun(cfg config.AppConfig) ([]scenario.Scenario, error) {
	return scenario.Select(scenario.Defaults(), cfg.Scenarios)
}
