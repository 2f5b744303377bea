package mm1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desvu/desvu/sim"
	"github.com/desvu/desvu/sim/stats"
)

// fixedSampler returns constant durations.
type fixedSampler struct {
	interarrival float64
	service      float64
}

func (f fixedSampler) NextInterarrival() float64 { return f.interarrival }
func (f fixedSampler) NextService() float64      { return f.service }

// arrivalAt delivers one customer to a server without scheduling further arrivals.
type arrivalAt struct {
	sim.BaseEvent
	id  int
	srv *Server
}

func (e *arrivalAt) Execute(s *sim.Simulator) {
	e.srv.HandleArrival(s, &Customer{ID: e.id, ArrivalTime: s.Now()})
}

func TestServer_QueuesWhileBusy(t *testing.T) {
	// GIVEN a server with 2-unit services and arrivals at t=0, 1, 1.5
	c := stats.NewCollector()
	require.NoError(t, c.AddTimeWeighted(StatQueueLength, 0, 0))
	require.NoError(t, c.AddTimeWeighted(StatServerUtilization, 0, 0))
	srv := NewServer(fixedSampler{service: 2}, c)
	s := sim.NewSimulator(sim.SimConfig{})
	for i, at := range []float64{0, 1, 1.5} {
		s.Schedule(&arrivalAt{BaseEvent: sim.NewBaseEvent(at), id: i + 1, srv: srv})
	}

	// WHEN the simulation runs to completion
	s.Run()

	// THEN customers are served back to back, finishing at t=6
	assert.Equal(t, 6.0, s.Now())
	assert.Equal(t, 3, srv.Served())
	assert.False(t, srv.Busy())
	assert.Equal(t, 0, srv.QueueLength())
	assert.NoError(t, srv.Err())

	waiting, ok := c.Event(StatWaitingTime)
	require.True(t, ok)
	assert.Equal(t, []float64{0, 1, 2.5}, waiting.Observations())

	service, ok := c.Event(StatServiceTime)
	require.True(t, ok)
	assert.Equal(t, []float64{2, 2, 2}, service.Observations())

	// queue: 0 on [0,1), 1 on [1,1.5), 2 on [1.5,2), 1 on [2,4), 0 on [4,6)
	ql, _ := c.TimeWeighted(StatQueueLength)
	avg, err := ql.Average(6)
	require.NoError(t, err)
	assert.InDelta(t, 3.5/6, avg, 1e-12)
	assert.Equal(t, 2.0, ql.Max())

	util, _ := c.TimeWeighted(StatServerUtilization)
	avg, err = util.Average(12)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, avg, 1e-12)
	assert.Equal(t, 0.0, util.LastValue(), "server went idle at the last departure")
}

func TestServer_RecordingErrorIsKept(t *testing.T) {
	// GIVEN a collector whose utilization was already updated at t=5
	c := stats.NewCollector()
	require.NoError(t, c.AddTimeWeighted(StatServerUtilization, 5, 0))
	srv := NewServer(fixedSampler{service: 1}, c)
	s := sim.NewSimulator(sim.SimConfig{})

	// WHEN the server records utilization at t=0
	srv.HandleArrival(s, &Customer{ID: 1})

	// THEN the ordering error is retained
	assert.ErrorIs(t, srv.Err(), stats.ErrTimeBeforeLastUpdate)
}
