package scenario

import (
	"fmt"

	"golang.org/x/exp/constraints"

	apperrors "github.com/agbru/fraccalc/internal/errors"
	"github.com/agbru/fraccalc/internal/fraction"
)

// Result is one binary operation of a report.
type Result struct {
	Op    string
	Value string
	Kind  fraction.Kind
}

// Relation is one comparison of a report.
type Relation struct {
	Op    string
	Holds bool
}

// Report is the outcome of evaluating a scenario.
type Report struct {
	Name      string
	Width     string
	Left      string
	Right     string
	Results   []Result
	Relations []Relation
}

// Degenerate returns the results whose value is infinite or undefined.
func (r Report) Degenerate() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Kind != fraction.Finite {
			out = append(out, res)
		}
	}
	return out
}

// Lines renders the report as the driver prints it: one "a op b = c" line per
// operation, then one "a op b" line per relation that holds.
func (r Report) Lines() []string {
	lines := make([]string, 0, len(r.Results)+len(r.Relations))
	for _, res := range r.Results {
		lines = append(lines, fmt.Sprintf("%s %s %s = %s", r.Left, res.Op, r.Right, res.Value))
	}
	for _, rel := range r.Relations {
		if rel.Holds {
			lines = append(lines, fmt.Sprintf("%s %s %s", r.Left, rel.Op, r.Right))
		}
	}
	return lines
}

// Evaluate builds both operands with width T and computes every operation.
// It fails only when an operand does not fit in T.
func Evaluate[T constraints.Signed](s Scenario) (Report, error) {
	a, err := build[T](s.Left, "left")
	if err != nil {
		return Report{}, apperrors.EvaluationError{Scenario: s.Name, Cause: err}
	}
	b, err := build[T](s.Right, "right")
	if err != nil {
		return Report{}, apperrors.EvaluationError{Scenario: s.Name, Cause: err}
	}

	report := Report{
		Name:  s.Name,
		Width: fmt.Sprintf("%T", *new(T)),
		Left:  a.String(),
		Right: b.String(),
	}
	for _, op := range []struct {
		sym string
		f   fraction.Fraction[T]
	}{
		{"+", a.Add(b)},
		{"-", a.Sub(b)},
		{"*", a.Mul(b)},
		{"/", a.Quo(b)},
	} {
		report.Results = append(report.Results, Result{Op: op.sym, Value: op.f.String(), Kind: op.f.Kind()})
	}
	report.Relations = []Relation{
		{"<", a.Less(b)},
		{"<=", a.LessOrEqual(b)},
		{">", a.Greater(b)},
		{">=", a.GreaterOrEqual(b)},
		{"==", a.Equal(b)},
		{"!=", a.NotEqual(b)},
	}
	return report, nil
}

// EvaluateWidth dispatches Evaluate on a width name such as "int32".
func EvaluateWidth(width string, s Scenario) (Report, error) {
	switch width {
	case "int8":
		return Evaluate[int8](s)
	case "int16":
		return Evaluate[int16](s)
	case "int32":
		return Evaluate[int32](s)
	case "int64":
		return Evaluate[int64](s)
	default:
		return Report{}, apperrors.ValidationError{Field: "width", Message: fmt.Sprintf("unsupported width %q", width)}
	}
}

func build[T constraints.Signed](o Operand, side string) (fraction.Fraction[T], error) {
	num, err := narrow[T](o.Num, side+".num")
	if err != nil {
		return fraction.Fraction[T]{}, err
	}
	switch o.Form {
	case Zero:
		return fraction.Fraction[T]{}, nil
	case Whole:
		return fraction.FromInt(num), nil
	}
	den, err := narrow[T](o.Den, side+".den")
	if err != nil {
		return fraction.Fraction[T]{}, err
	}
	return fraction.New(num, den), nil
}

// narrow converts v to T, failing when the value would be truncated.
func narrow[T constraints.Signed](v int64, field string) (T, error) {
	t := T(v)
	if int64(t) != v {
		return 0, apperrors.ValidationError{Field: field, Message: fmt.Sprintf("%d does not fit in %T", v, t)}
	}
	return t, nil
}
