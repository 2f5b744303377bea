// Package trace provides execution-trace recording for the simulation kernel.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// Outcome describes what the scheduler did with a popped queue entry.
type Outcome string

const (
	// OutcomeExecuted means the event's action ran.
	OutcomeExecuted Outcome = "executed"
	// OutcomeCancelled means the entry was skipped because its event was cancelled.
	OutcomeCancelled Outcome = "cancelled"
	// OutcomeDiscarded means the entry lay beyond the run limit and was dropped.
	OutcomeDiscarded Outcome = "discarded"
)

// EventRecord captures a single entry popped from the scheduler's queue.
type EventRecord struct {
	Seq     uint64  // scheduling sequence id (tie-breaker)
	Time    float64 // scheduled time of the entry
	Clock   float64 // simulation clock after the pop was handled
	Label   string  // event label (String() or Go type name)
	Outcome Outcome
}
