// Package mm1 models a single-server FIFO queue with exponential interarrival
// and service times (M/M/1) on top of the sim kernel.
//
// # Reading Guide
//
//   - config.go: run parameters and their defaults
//   - rng.go: per-subsystem random streams derived from one seed
//   - server.go: the queue discipline and the statistics it records
//   - events.go: arrival and departure events
//   - model.go: single runs, replications and their aggregation
//   - theory.go: closed-form M/M/1 results for comparison
//
// # Statistics
//
// A run records "Waiting Time" and "Service Time" per customer, and
// "Queue Length" and "Server Utilization" as time-weighted signals.
package mm1
