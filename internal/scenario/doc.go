// Package scenario holds the demonstration cases and evaluates them with a
// fraction.Fraction of a chosen integer width.
//
// A scenario is a pair of operands. Evaluating it produces the four binary
// results and the six relations, in the order the report prints them.
package scenario
