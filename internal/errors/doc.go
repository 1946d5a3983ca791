// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (configuration,
// validation, evaluation) and for carrying the underlying cause.
//
// The fraction arithmetic itself never returns errors: infinite and undefined
// results are values. The types here are used by the driver around it.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// All wrapping error types implement the Unwrap() method to support errors.Is() and errors.As().
package apperrors
