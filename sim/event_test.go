package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type unlabeledEvent struct {
	BaseEvent
}

func (e *unlabeledEvent) Execute(*Simulator) {}

func TestBaseEvent_NewEvent_Defaults(t *testing.T) {
	ev := NewBaseEvent(4.5)

	assert.Equal(t, 4.5, ev.Delay())
	assert.Equal(t, 0.0, ev.Timestamp())
	assert.False(t, ev.Scheduled())
	assert.False(t, ev.Cancelled())
}

func TestBaseEvent_Cancel_IsSticky(t *testing.T) {
	ev := NewBaseEvent(1)
	ev.Cancel()
	ev.Cancel()
	assert.True(t, ev.Cancelled())
}

func TestBaseEvent_TimestampIsNowPlusDelay(t *testing.T) {
	// GIVEN a simulator advanced to t=3
	s := NewSimulator(SimConfig{})
	s.Schedule(&unlabeledEvent{BaseEvent: NewBaseEvent(3)})
	s.Run()

	// WHEN a new event with delay 2 is scheduled
	ev := &unlabeledEvent{BaseEvent: NewBaseEvent(2)}
	s.Schedule(ev)

	// THEN its absolute time is 5
	assert.True(t, ev.Scheduled())
	assert.Equal(t, 5.0, ev.Timestamp())
}

func TestLabel_UsesStringerWhenAvailable(t *testing.T) {
	labeled := newRecordingEvent(0, "x", &executionLog{})
	assert.Equal(t, "Recording(x)", Label(labeled))
	assert.Equal(t, "*sim.unlabeledEvent", Label(&unlabeledEvent{}))
}
