package scenario

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/agbru/fraccalc/internal/errors"
)

// Form says which constructor an Operand stands for.
type Form int

const (
	// Pair is New(Num, Den).
	Pair Form = iota
	// Whole is FromInt(Num).
	Whole
	// Zero is the zero value Fraction{}, i.e. 0/0.
	Zero
)

// Operand is a width-independent description of a fraction.
type Operand struct {
	Num  int64
	Den  int64
	Form Form
}

// P returns a Pair operand.
func P(num, den int64) Operand { return Operand{Num: num, Den: den, Form: Pair} }

// W returns a Whole operand.
func W(num int64) Operand { return Operand{Num: num, Den: 1, Form: Whole} }

// String renders the operand the way it was written, before reduction.
func (o Operand) String() string {
	switch o.Form {
	case Whole:
		return fmt.Sprintf("(%d)", o.Num)
	case Zero:
		return "()"
	default:
		return fmt.Sprintf("(%d, %d)", o.Num, o.Den)
	}
}

// Scenario is a named pair of operands.
type Scenario struct {
	Name  string
	Left  Operand
	Right Operand
}

// Defaults returns the built-in demonstration scenarios.
func Defaults() []Scenario {
	return []Scenario{
		{Name: "Nominal case (positive values)", Left: P(100, 150), Right: P(2, 5)},
		{Name: "Nominal case (positive and negative values)", Left: P(30, 15), Right: P(242, -10)},
		{Name: "Nominal case (negative values)", Left: P(-3, 33), Right: P(7, -21)},
		{Name: "Limit test (with 0 and 1)", Left: P(0, 33), Right: W(1)},
		{Name: "Test of '0' and 'Inf'", Left: P(1, 0), Right: Operand{Form: Zero}},
	}
}

// Select filters all by the given selectors. A selector is either a 1-based
// index or a case-insensitive name prefix. An empty selector list returns all
// scenarios. Order follows all, and each scenario appears at most once.
func Select(all []Scenario, selectors []string) ([]Scenario, error) {
	if len(selectors) == 0 {
		return all, nil
	}

	picked := make([]bool, len(all))
	for _, sel := range selectors {
		idx, err := find(all, sel)
		if err != nil {
			return nil, err
		}
		picked[idx] = true
	}

	var out []Scenario
	for i, s := range all {
		if picked[i] {
			out = append(out, s)
		}
	}
	return out, nil
}

func find(all []Scenario, sel string) (int, error) {
	if n, err := strconv.Atoi(sel); err == nil {
		if n < 1 || n > len(all) {
			return 0, apperrors.ValidationError{
				Field:   "scenario",
				Message: fmt.Sprintf("index %d out of range 1..%d", n, len(all)),
			}
		}
		return n - 1, nil
	}

	match := -1
	for i, s := range all {
		if strings.HasPrefix(strings.ToLower(s.Name), strings.ToLower(sel)) {
			if match >= 0 {
				return 0, apperrors.ValidationError{Field: "scenario", Message: fmt.Sprintf("%q is ambiguous", sel)}
			}
			match = i
		}
	}
	if match < 0 {
		return 0, apperrors.ValidationError{Field: "scenario", Message: fmt.Sprintf("no scenario matches %q", sel)}
	}
	return match, nil
}
