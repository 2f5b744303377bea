// Package sim provides the core discrete-event simulation engine for desvu.
//
// # Reading Guide
//
// Start with these two files to understand the simulation kernel:
//   - event.go: the Event interface and the embeddable BaseEvent (delay, scheduled time, cancellation)
//   - simulator.go: the time-ordered queue and the event loop
//
// # Architecture
//
// The sim package holds only the scheduler. Everything else lives in sub-packages:
//   - sim/stats/: event-based and time-weighted statistics plus the named-metric Collector
//   - sim/stats/promstats/: Prometheus export of a Collector
//   - sim/trace/: execution trace recording
//   - sim/mm1/: an M/M/1 queue model built on the kernel
//
// # Ordering
//
// Entries are ordered by scheduled time, then by the sequence in which they
// were scheduled. An event scheduled for the same time as entries already in
// the queue therefore always runs after them.
//
// # Cancellation
//
// Cancelling an event only sets a flag. The entry stays in the queue, still
// counted by Pending, and is skipped when popped.
package sim
