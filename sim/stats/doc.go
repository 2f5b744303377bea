// Package stats accumulates simulation output.
//
// EventStats keeps discrete observations (one value per customer, job or
// event) and reports their mean, sample standard deviation, extrema and a
// 95% confidence interval. TimeWeightedStats integrates a piecewise-constant
// signal over simulated time. Collector is a name-keyed registry of both
// kinds that renders a combined text report.
//
// Empty statistics report zeros instead of failing. Recoverable misuse such
// as updating a time-weighted statistic in the past, or asking for a
// confidence interval too early, returns an error wrapping ErrInvalidArgument.
package stats
