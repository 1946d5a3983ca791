package config

import "runtime"

// EffectiveParallel returns the worker limit to use for scenario
// evaluation: the configured value when set, otherwise a heuristic based on
// the number of logical CPUs.
func (c AppConfig) EffectiveParallel() int {
	if c.Parallel > 0 {
		return c.Parallel
	}
	return EstimateParallelism()
}

// EstimateParallelism provides a heuristic worker count without measuring
// anything. Scenario evaluations are tiny, so more workers than CPUs only
// adds scheduling overhead.
func EstimateParallelism() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU <= 1:
		return 1
	case numCPU <= 4:
		return numCPU
	default:
		return 4 + (numCPU-4)/2
	}
}
