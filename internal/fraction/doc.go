// Package fraction implements an exact rational number type over any
// fixed-width signed integer.
//
// A Fraction is kept in reduced form after every construction and every
// arithmetic operation: the denominator is non-negative and shares no common
// factor with the numerator. A zero denominator is not an error. It encodes
// one of two degenerate values that propagate through arithmetic:
//
//   - n/0 with n != 0 is infinite and renders as "Inf".
//   - 0/0 is undefined and renders as "NaN".
//
// Callers are expected to check IsFinite, IsInf or IsNaN (or Kind) before
// trusting the result of an arithmetic or comparison operation. Ordering
// comparisons use cross multiplication and therefore do not reflect a
// mathematical ordering when either operand has a zero denominator.
//
// Arithmetic wraps on overflow like the underlying integer type does; no
// overflow detection is performed.
package fraction
