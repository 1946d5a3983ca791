package config

import (
	"bytes"
	"errors"
	"flag"
	"testing"
	"time"

	apperrors "github.com/agbru/fraccalc/internal/errors"
)

func TestParseConfig_Defaults(t *testing.T) {
	var errBuf bytes.Buffer
	cfg, err := ParseConfig("fraccalc", nil, &errBuf)
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}
	if cfg.Width != DefaultWidth {
		t.Errorf("Width = %q, want %q", cfg.Width, DefaultWidth)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %s, want %s", cfg.Timeout, DefaultTimeout)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
	if len(cfg.Scenarios) != 0 {
		t.Errorf("Scenarios = %v, want empty", cfg.Scenarios)
	}
}

func TestParseConfig_Flags(t *testing.T) {
	var errBuf bytes.Buffer
	cfg, err := ParseConfig("fraccalc", []string{
		"-w", "int64", "--scenario", "1, 3,,Limit test", "--timeout", "5s",
		"--parallel", "2", "--strict", "-v", "--no-color", "--metrics", "-o", "out.txt",
	}, &errBuf)
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}

	if cfg.Width != "int64" {
		t.Errorf("Width = %q, want int64", cfg.Width)
	}
	wantScenarios := []string{"1", "3", "Limit test"}
	if len(cfg.Scenarios) != len(wantScenarios) {
		t.Fatalf("Scenarios = %v, want %v", cfg.Scenarios, wantScenarios)
	}
	for i := range wantScenarios {
		if cfg.Scenarios[i] != wantScenarios[i] {
			t.Errorf("Scenarios[%d] = %q, want %q", i, cfg.Scenarios[i], wantScenarios[i])
		}
	}
	if cfg.Timeout != 5*time.Second || cfg.Parallel != 2 {
		t.Errorf("Timeout/Parallel = %s/%d, want 5s/2", cfg.Timeout, cfg.Parallel)
	}
	if !cfg.Strict || !cfg.Verbose || !cfg.NoColor || !cfg.Metrics {
		t.Errorf("boolean flags not applied: %+v", cfg)
	}
	if cfg.OutputFile != "out.txt" {
		t.Errorf("OutputFile = %q, want out.txt", cfg.OutputFile)
	}
}

func TestParseConfig_Help(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := ParseConfig("fraccalc", []string{"--help"}, &errBuf)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
	if !bytes.Contains(errBuf.Bytes(), []byte("Usage: fraccalc")) {
		t.Errorf("usage not printed, got: %s", errBuf.String())
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown width", []string{"--width", "int128"}},
		{"zero timeout", []string{"--timeout", "0s"}},
		{"negative parallel", []string{"--parallel", "-1"}},
		{"quiet and verbose", []string{"-q", "-v"}},
		{"unknown shell", []string{"--completion", "tcsh"}},
		{"positional argument", []string{"3/4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errBuf bytes.Buffer
			_, err := ParseConfig("fraccalc", tt.args, &errBuf)
			var configErr apperrors.ConfigError
			if !errors.As(err, &configErr) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
		})
	}
}

func TestParseConfig_EnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"WIDTH", "int16")
	t.Setenv(EnvPrefix+"SCENARIO", "2")
	t.Setenv(EnvPrefix+"TIMEOUT", "1m")
	t.Setenv(EnvPrefix+"STRICT", "yes")
	t.Setenv(EnvPrefix+"QUIET", "1")
	t.Setenv(EnvPrefix+"PARALLEL", "not-a-number")

	var errBuf bytes.Buffer
	cfg, err := ParseConfig("fraccalc", nil, &errBuf)
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}
	if cfg.Width != "int16" {
		t.Errorf("Width = %q, want int16", cfg.Width)
	}
	if len(cfg.Scenarios) != 1 || cfg.Scenarios[0] != "2" {
		t.Errorf("Scenarios = %v, want [2]", cfg.Scenarios)
	}
	if cfg.Timeout != time.Minute {
		t.Errorf("Timeout = %s, want 1m", cfg.Timeout)
	}
	if !cfg.Strict || !cfg.Quiet {
		t.Errorf("Strict/Quiet = %v/%v, want true/true", cfg.Strict, cfg.Quiet)
	}
	if cfg.Parallel != 0 {
		t.Errorf("invalid PARALLEL should be ignored, got %d", cfg.Parallel)
	}
}

func TestParseConfig_FlagBeatsEnv(t *testing.T) {
	t.Setenv(EnvPrefix+"WIDTH", "int16")
	t.Setenv(EnvPrefix+"QUIET", "true")

	var errBuf bytes.Buffer
	cfg, err := ParseConfig("fraccalc", []string{"-w", "int8", "--quiet=false"}, &errBuf)
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}
	if cfg.Width != "int8" {
		t.Errorf("Width = %q, want int8 from the flag", cfg.Width)
	}
	if cfg.Quiet {
		t.Error("explicit --quiet=false should win over FRACCALC_QUIET")
	}
}

func TestParseBoolEnv(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in       string
		def      bool
		expected bool
	}{
		{"true", false, true},
		{"YES", false, true},
		{"1", false, true},
		{"false", true, false},
		{"No", true, false},
		{"0", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		if got := parseBoolEnv(tt.in, tt.def); got != tt.expected {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.in, tt.def, got, tt.expected)
		}
	}
}

func TestEffectiveParallel(t *testing.T) {
	t.Parallel()
	if got := (AppConfig{Parallel: 3}).EffectiveParallel(); got != 3 {
		t.Errorf("EffectiveParallel() = %d, want 3", got)
	}
	if got := (AppConfig{}).EffectiveParallel(); got < 1 {
		t.Errorf("EffectiveParallel() = %d, want >= 1", got)
	}
	if got := EstimateParallelism(); got < 1 {
		t.Errorf("EstimateParallelism() = %d, want >= 1", got)
	}
}
