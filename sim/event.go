package sim

import "fmt"

// Event defines the interface for all simulation events.
// An event carries the delay it should run after, measured from the moment it
// is scheduled, and an Execute method that advances simulation state when the
// simulator reaches its time. Execute receives the simulator so it can query
// Now() and schedule further events.
//
// Concrete events usually embed BaseEvent, which supplies Delay, Cancelled and
// the scheduled-time bookkeeping, and only implement Execute. An event may also
// implement fmt.Stringer to give itself a human-readable label for logs and traces.
type Event interface {
	Delay() float64
	Cancelled() bool
	Execute(*Simulator)
}

// timestamper is implemented by BaseEvent only. The simulator uses it to
// record the absolute time an event was scheduled for.
type timestamper interface {
	assignTime(t float64)
}

// BaseEvent holds the state shared by every event: the relative delay given
// at construction, the absolute time assigned by the simulator, and the
// cancellation flag.
type BaseEvent struct {
	delay     float64
	time      float64
	scheduled bool
	cancelled bool
}

// NewBaseEvent returns a BaseEvent that will fire delay time units after it is scheduled.
func NewBaseEvent(delay float64) BaseEvent {
	return BaseEvent{delay: delay}
}

// Delay returns the relative offset from scheduling time.
func (e *BaseEvent) Delay() float64 {
	return e.delay
}

// Timestamp returns the absolute time assigned when the event was scheduled.
// It is zero until then.
func (e *BaseEvent) Timestamp() float64 {
	return e.time
}

// Scheduled reports whether the event has been handed to a simulator.
func (e *BaseEvent) Scheduled() bool {
	return e.scheduled
}

// Cancel prevents the event's action from running. The entry stays in the
// simulator's queue and is skipped when popped.
func (e *BaseEvent) Cancel() {
	e.cancelled = true
}

// Cancelled reports whether Cancel has been called.
func (e *BaseEvent) Cancelled() bool {
	return e.cancelled
}

func (e *BaseEvent) assignTime(t float64) {
	if e.scheduled {
		panic(fmt.Sprintf("BaseEvent: already scheduled for t=%g", e.time))
	}
	e.time = t
	e.scheduled = true
}

// Label returns the human-readable name of an event: its String() when it
// implements fmt.Stringer, otherwise its Go type.
func Label(ev Event) string {
	if s, ok := ev.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", ev)
}
