// Package orchestration coordinates concurrent evaluation of fraction
// scenarios and aggregates their reports. It decouples evaluation from
// presentation via the Observer and ResultPresenter interfaces.
package orchestration
