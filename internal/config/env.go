// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Environment Variable Utilities
// ─────────────────────────────────────────────────────────────────────────────

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envTarget is what an override writes into: the config plus the raw
// scenario list, which is split after overrides are applied.
type envTarget struct {
	cfg       *AppConfig
	scenarios *string
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the FRACCALC_ prefix) to the CLI flag
// name(s) it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(envTarget, string)
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	// Numeric overrides
	{"PARALLEL", []string{"parallel"}, func(t envTarget, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			t.cfg.Parallel = parsed
		}
	}},

	// Duration overrides
	{"TIMEOUT", []string{"timeout"}, func(t envTarget, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			t.cfg.Timeout = parsed
		}
	}},

	// String overrides
	{"WIDTH", []string{"width", "w"}, func(t envTarget, v string) {
		t.cfg.Width = v
	}},
	{"SCENARIO", []string{"scenario", "s"}, func(t envTarget, v string) {
		*t.scenarios = v
	}},
	{"LOG_LEVEL", []string{"log-level"}, func(t envTarget, v string) {
		t.cfg.LogLevel = v
	}},
	{"OUTPUT", []string{"output", "o"}, func(t envTarget, v string) {
		t.cfg.OutputFile = v
	}},

	// Boolean overrides
	{"STRICT", []string{"strict"}, func(t envTarget, v string) {
		t.cfg.Strict = parseBoolEnv(v, t.cfg.Strict)
	}},
	{"QUIET", []string{"quiet", "q"}, func(t envTarget, v string) {
		t.cfg.Quiet = parseBoolEnv(v, t.cfg.Quiet)
	}},
	{"VERBOSE", []string{"verbose", "v"}, func(t envTarget, v string) {
		t.cfg.Verbose = parseBoolEnv(v, t.cfg.Verbose)
	}},
	{"METRICS", []string{"metrics"}, func(t envTarget, v string) {
		t.cfg.Metrics = parseBoolEnv(v, t.cfg.Metrics)
	}},
	{"NO_COLOR", []string{"no-color"}, func(t envTarget, v string) {
		t.cfg.NoColor = parseBoolEnv(v, t.cfg.NoColor)
	}},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// Supported environment variables (all prefixed with FRACCALC_):
//   - WIDTH, SCENARIO, TIMEOUT, PARALLEL, LOG_LEVEL, OUTPUT,
//     STRICT, QUIET, VERBOSE, METRICS, NO_COLOR
func applyEnvOverrides(config *AppConfig, scenarios *string, fs *flag.FlagSet) {
	target := envTarget{cfg: config, scenarios: scenarios}
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(target, val)
		}
	}
}
