package sim

import "fmt"

// execution is one entry of an executionLog: which event ran and when.
type execution struct {
	Name string
	Time float64
}

// executionLog collects executions in the order the simulator ran them.
type executionLog struct {
	entries []execution
}

func (l *executionLog) names() []string {
	names := make([]string, 0, len(l.entries))
	for _, e := range l.entries {
		names = append(names, e.Name)
	}
	return names
}

// recordingEvent appends itself to a shared log when executed.
type recordingEvent struct {
	BaseEvent
	name string
	log  *executionLog
	then func(*Simulator) // optional follow-up, runs after recording
}

func newRecordingEvent(delay float64, name string, log *executionLog) *recordingEvent {
	return &recordingEvent{BaseEvent: NewBaseEvent(delay), name: name, log: log}
}

func (e *recordingEvent) Execute(sim *Simulator) {
	e.log.entries = append(e.log.entries, execution{Name: e.name, Time: sim.Now()})
	if e.then != nil {
		e.then(sim)
	}
}

func (e *recordingEvent) String() string {
	return fmt.Sprintf("Recording(%s)", e.name)
}

// chainEvent reschedules a copy of itself one time unit later until counter reaches max.
type chainEvent struct {
	BaseEvent
	counter *int
	max     int
}

func (e *chainEvent) Execute(sim *Simulator) {
	*e.counter++
	if *e.counter < e.max {
		sim.Schedule(&chainEvent{BaseEvent: NewBaseEvent(1.0), counter: e.counter, max: e.max})
	}
}
