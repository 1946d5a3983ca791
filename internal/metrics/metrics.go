// Package metrics exposes Prometheus instruments for scenario evaluation.
//
// Instruments live on a private registry so several Collectors (one per test,
// for instance) never collide on registration.
package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/common/expfmt"

	"github.com/agbru/fraccalc/internal/scenario"
)

const namespace = "fraccalc"

// Collector groups the instruments updated after each evaluated scenario.
type Collector struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	results    *prometheus.CounterVec
	scenarios  *prometheus.CounterVec
	duration   prometheus.Histogram
}

// NewCollector creates a Collector with its own registry. Go runtime metrics
// are registered alongside when withRuntime is true.
func NewCollector(withRuntime bool) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Fraction operations evaluated, by operator.",
		}, []string{"op"}),
		results: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "results_total",
			Help:      "Arithmetic results, by kind (finite, infinite, undefined).",
		}, []string{"kind"}),
		scenarios: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scenarios_total",
			Help:      "Scenarios evaluated, by outcome.",
		}, []string{"status"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "scenario_duration_seconds",
			Help:      "Wall time spent evaluating one scenario.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 10, 8),
		}),
	}
	c.registry.MustRegister(c.operations, c.results, c.scenarios, c.duration)
	if withRuntime {
		c.registry.MustRegister(collectors.NewGoCollector())
	}
	return c
}

// Registry returns the registry backing c.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// ObserveReport records a successful evaluation.
func (c *Collector) ObserveReport(r scenario.Report, d time.Duration) {
	for _, res := range r.Results {
		c.operations.WithLabelValues(res.Op).Inc()
		c.results.WithLabelValues(res.Kind.String()).Inc()
	}
	for _, rel := range r.Relations {
		c.operations.WithLabelValues(rel.Op).Inc()
	}
	c.scenarios.WithLabelValues("ok").Inc()
	c.duration.Observe(d.Seconds())
}

// ObserveFailure records an evaluation that returned an error.
func (c *Collector) ObserveFailure(d time.Duration) {
	c.scenarios.WithLabelValues("error").Inc()
	c.duration.Observe(d.Seconds())
}

// WriteText writes every metric family in the Prometheus text exposition
// format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
