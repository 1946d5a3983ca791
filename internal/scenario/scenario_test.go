package scenario

import (
	"errors"
	"testing"

	apperrors "github.com/agbru/fraccalc/internal/errors"
)

func names(ss []Scenario) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = s.Name
	}
	return out
}

func TestDefaults(t *testing.T) {
	t.Parallel()
	all := Defaults()
	if len(all) != 5 {
		t.Fatalf("expected 5 default scenarios, got %d", len(all))
	}
	if all[4].Right.Form != Zero {
		t.Errorf("last scenario should use the zero value on the right, got %v", all[4].Right)
	}
}

func TestSelect(t *testing.T) {
	t.Parallel()
	all := Defaults()

	tests := []struct {
		name      string
		selectors []string
		want      []string
	}{
		{"empty selects all", nil, names(all)},
		{"by index", []string{"4"}, []string{all[3].Name}},
		{"keeps scenario order", []string{"3", "1"}, []string{all[0].Name, all[2].Name}},
		{"deduplicates", []string{"1", "nominal case (positive v"}, []string{all[0].Name}},
		{"by prefix", []string{"limit"}, []string{all[3].Name}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Select(all, tt.selectors)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			gotNames := names(got)
			if len(gotNames) != len(tt.want) {
				t.Fatalf("got %v, want %v", gotNames, tt.want)
			}
			for i := range tt.want {
				if gotNames[i] != tt.want[i] {
					t.Errorf("got %v, want %v", gotNames, tt.want)
				}
			}
		})
	}
}

func TestSelect_Errors(t *testing.T) {
	t.Parallel()
	for _, sel := range []string{"0", "6", "nominal", "unknown"} {
		_, err := Select(Defaults(), []string{sel})
		var validationErr apperrors.ValidationError
		if !errors.As(err, &validationErr) {
			t.Errorf("Select(%q): expected ValidationError, got %v", sel, err)
		}
	}
}

func TestOperandString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		o    Operand
		want string
	}{
		{P(242, -10), "(242, -10)"},
		{W(1), "(1)"},
		{Operand{Form: Zero}, "()"},
	}
	for _, tt := range tests {
		if got := tt.o.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
