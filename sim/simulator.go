// sim/simulator.go
package sim

import (
	"container/heap"

	"github.com/sirupsen/logrus"

	"github.com/desvu/desvu/sim/trace"
)

// Unlimited is the run limit meaning "until the queue is empty".
// Any negative limit is treated the same way.
const Unlimited = -1.0

// scheduledEntry pairs an event with the time and sequence id it was enqueued with.
type scheduledEntry struct {
	time  float64
	seq   uint64
	event Event
}

// eventQueue implements heap.Interface and orders entries by time, then by sequence id.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type eventQueue []*scheduledEntry

func (eq eventQueue) Len() int { return len(eq) }

func (eq eventQueue) Less(i, j int) bool {
	if eq[i].time != eq[j].time {
		return eq[i].time < eq[j].time
	}
	// same time: first scheduled, first served
	return eq[i].seq < eq[j].seq
}

func (eq eventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *eventQueue) Push(x any) {
	*eq = append(*eq, x.(*scheduledEntry))
}

func (eq *eventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*eq = old[0 : n-1]
	return item
}

// SimConfig groups optional simulator behavior. The zero value is a silent
// simulator without tracing.
type SimConfig struct {
	// LogEvents logs every executed event at Info level as "t=<time> | <label>".
	LogEvents bool
	// Trace, when non-nil and enabled, receives a record for every popped entry.
	Trace *trace.SimulationTrace
}

// Simulator owns simulated time and the queue of pending events.
// It is single-threaded: events run to completion one at a time, and an
// event's Execute may schedule further events on the same simulator.
type Simulator struct {
	clock     float64
	nextSeq   uint64
	queue     eventQueue
	executed  int
	discarded int
	logEvents bool
	trace     *trace.SimulationTrace
}

// NewSimulator returns a simulator at time 0 with an empty queue.
func NewSimulator(cfg SimConfig) *Simulator {
	s := &Simulator{
		queue:     make(eventQueue, 0),
		logEvents: cfg.LogEvents,
		trace:     cfg.Trace,
	}
	heap.Init(&s.queue)
	return s
}

// Now returns the current simulation time.
func (sim *Simulator) Now() float64 {
	return sim.clock
}

// Pending returns the number of queued entries, cancelled ones included.
func (sim *Simulator) Pending() int {
	return sim.queue.Len()
}

// Executed returns how many event actions have run.
func (sim *Simulator) Executed() int {
	return sim.executed
}

// Discarded returns how many entries were dropped because they lay beyond a run limit.
func (sim *Simulator) Discarded() int {
	return sim.discarded
}

// Schedule enqueues ev to fire at Now() + ev.Delay().
// Delays are not validated; a negative delay places the entry in the past
// and it runs at the current clock without moving time backward.
func (sim *Simulator) Schedule(ev Event) {
	if ev == nil {
		panic("Schedule: event must not be nil")
	}
	t := sim.clock + ev.Delay()
	if ts, ok := ev.(timestamper); ok {
		ts.assignTime(t)
	}
	if t < sim.clock {
		logrus.Debugf("[t=%g] %s scheduled in the past at t=%g", sim.clock, Label(ev), t)
	}
	heap.Push(&sim.queue, &scheduledEntry{time: t, seq: sim.nextSeq, event: ev})
	sim.nextSeq++
}

// Run executes events until the queue is empty.
func (sim *Simulator) Run() {
	sim.RunUntil(Unlimited)
}

// RunUntil executes events in time order until the queue is empty or the next
// entry lies beyond limit. In the latter case the clock is set to limit and
// that entry is dropped: it is not executed and not re-queued, so a later run
// continues with the remaining entries only. A negative limit means no limit.
func (sim *Simulator) RunUntil(limit float64) {
	bounded := limit >= 0
	for sim.queue.Len() > 0 {
		entry := heap.Pop(&sim.queue).(*scheduledEntry)

		if bounded && entry.time > limit {
			// the clock never moves backward, even for a limit already passed
			if limit > sim.clock {
				sim.clock = limit
			}
			sim.discarded++
			logrus.Debugf("[t=%g] run limit reached, dropping %s at t=%g", sim.clock, Label(entry.event), entry.time)
			sim.record(entry, trace.OutcomeDiscarded)
			return
		}

		if entry.event.Cancelled() {
			logrus.Debugf("[t=%g] skipping cancelled %s", sim.clock, Label(entry.event))
			sim.record(entry, trace.OutcomeCancelled)
			continue
		}

		if entry.time > sim.clock {
			sim.clock = entry.time
		}
		sim.executed++
		if sim.logEvents {
			logrus.Infof("t=%6.1f | %s", sim.clock, Label(entry.event))
		}
		sim.record(entry, trace.OutcomeExecuted)

		entry.event.Execute(sim)
	}
}

func (sim *Simulator) record(entry *scheduledEntry, outcome trace.Outcome) {
	if !sim.trace.Enabled() {
		return
	}
	sim.trace.Record(trace.EventRecord{
		Seq:     entry.seq,
		Time:    entry.time,
		Clock:   sim.clock,
		Label:   Label(entry.event),
		Outcome: outcome,
	})
}
