package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/agbru/fraccalc/internal/orchestration"
	"github.com/agbru/fraccalc/internal/scenario"
)

func evaluateDefaults(t *testing.T) []orchestration.ScenarioResult {
	t.Helper()
	var results []orchestration.ScenarioResult
	for i, s := range scenario.Defaults() {
		report, err := scenario.EvaluateWidth("int32", s)
		results = append(results, orchestration.ScenarioResult{Index: i, Scenario: s, Report: report, Err: err})
	}
	return results
}

func TestWriteReportToFile(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()

	testCases := []struct {
		name       string
		outputFile string
		checkFunc  func(t *testing.T, filePath string)
	}{
		{
			name:       "Write report to file",
			outputFile: filepath.Join(tmpDir, "report.txt"),
			checkFunc: func(t *testing.T, filePath string) {
				content, err := os.ReadFile(filePath)
				if err != nil {
					t.Fatalf("Failed to read output file: %v", err)
				}
				contentStr := string(content)
				for _, want := range []string{
					"# Width: int32",
					"Test 1: Nominal case (positive values)",
					"2/3 + 2/5 = 16/15",
					"Inf / NaN = NaN",
				} {
					if !strings.Contains(contentStr, want) {
						t.Errorf("File should contain %q", want)
					}
				}
			},
		},
		{
			name:       "Empty output file (no write)",
			outputFile: "",
		},
		{
			name:       "Create nested directory",
			outputFile: filepath.Join(tmpDir, "nested", "dir", "report.txt"),
			checkFunc: func(t *testing.T, filePath string) {
				if _, err := os.Stat(filePath); err != nil {
					t.Errorf("File should exist in nested directory: %v", err)
				}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			config := OutputConfig{OutputFile: tc.outputFile, Width: "int32"}
			if err := WriteReportToFile(evaluateDefaults(t), time.Millisecond, config); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tc.checkFunc != nil {
				tc.checkFunc(t, tc.outputFile)
			}
		})
	}
}

func TestWriteReportToFile_Failure(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "failed.txt")
	results := []orchestration.ScenarioResult{{
		Scenario: scenario.Defaults()[0],
		Err:      os.ErrInvalid,
	}}
	if err := WriteReportToFile(results, 0, OutputConfig{OutputFile: path}); err != nil {
		t.Fatal(err)
	}
	content, _ := os.ReadFile(path)
	if !strings.Contains(string(content), "error: invalid argument") {
		t.Errorf("failed scenario should be written with its error, got:\n%s", content)
	}
}

func TestFormatQuietReport(t *testing.T) {
	t.Parallel()
	report, err := scenario.EvaluateWidth("int64", scenario.Defaults()[3])
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"0/1 + 1/1 = 1/1",
		"0/1 - 1/1 = -1/1",
		"0/1 * 1/1 = 0/1",
		"0/1 / 1/1 = 0/1",
		"0/1 < 1/1",
		"0/1 <= 1/1",
		"0/1 != 1/1",
	}, "\n")
	if got := FormatQuietReport(report); got != want {
		t.Errorf("FormatQuietReport() =\n%s\nwant\n%s", got, want)
	}
}

func TestDisplaySavedReport(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		config OutputConfig
		want   bool
	}{
		{"normal mode", OutputConfig{OutputFile: "out.txt"}, true},
		{"quiet mode", OutputConfig{OutputFile: "out.txt", Quiet: true}, false},
		{"no file", OutputConfig{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			DisplaySavedReport(&buf, tt.config)
			if got := strings.Contains(buf.String(), "Report saved to: out.txt"); got != tt.want {
				t.Errorf("message shown = %v, want %v (%q)", got, tt.want, buf.String())
			}
		})
	}
}
