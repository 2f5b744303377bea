package mm1

import (
	"github.com/sirupsen/logrus"

	"github.com/desvu/desvu/sim"
	"github.com/desvu/desvu/sim/stats"
)

// Statistic names recorded by a Server.
const (
	StatWaitingTime       = "Waiting Time"
	StatServiceTime       = "Service Time"
	StatQueueLength       = "Queue Length"
	StatServerUtilization = "Server Utilization"
)

// Server serves customers one at a time in arrival order and records the
// model's statistics into a Collector.
type Server struct {
	queue   WaitQueue
	busy    bool
	sampler Sampler
	stats   *stats.Collector
	served  int
	err     error // first statistics error, surfaced by Err
}

// NewServer returns an idle server drawing service times from sampler.
func NewServer(sampler Sampler, collector *stats.Collector) *Server {
	return &Server{sampler: sampler, stats: collector}
}

// HandleArrival starts serving c immediately if the server is idle,
// otherwise puts it at the back of the queue.
func (srv *Server) HandleArrival(s *sim.Simulator, c *Customer) {
	if srv.busy {
		srv.queue.Enqueue(c)
		srv.recordLevel(StatQueueLength, s.Now(), float64(srv.queue.Len()))
		return
	}
	srv.busy = true
	srv.recordLevel(StatServerUtilization, s.Now(), 1)
	srv.stats.AddEvent(StatWaitingTime, 0)
	srv.startService(s)
}

// ServiceCompleted finishes the current service and starts the next
// waiting customer, or goes idle when nobody is waiting.
func (srv *Server) ServiceCompleted(s *sim.Simulator) {
	srv.served++
	next := srv.queue.Dequeue()
	if next == nil {
		srv.busy = false
		srv.recordLevel(StatServerUtilization, s.Now(), 0)
		return
	}
	srv.recordLevel(StatQueueLength, s.Now(), float64(srv.queue.Len()))
	srv.stats.AddEvent(StatWaitingTime, next.WaitingTime(s.Now()))
	srv.startService(s)
}

func (srv *Server) startService(s *sim.Simulator) {
	d := srv.sampler.NextService()
	srv.stats.AddEvent(StatServiceTime, d)
	s.Schedule(NewDepartureEvent(d, srv))
}

func (srv *Server) recordLevel(name string, t, v float64) {
	if err := srv.stats.AddTimeWeighted(name, t, v); err != nil {
		logrus.Errorf("[t=%g] recording %s: %v", t, name, err)
		if srv.err == nil {
			srv.err = err
		}
	}
}

// Busy reports whether a customer is in service.
func (srv *Server) Busy() bool { return srv.busy }

// QueueLength returns the number of customers waiting, the one in service excluded.
func (srv *Server) QueueLength() int { return srv.queue.Len() }

// Served returns the number of completed services.
func (srv *Server) Served() int { return srv.served }

// Err returns the first error hit while recording statistics, if any.
func (srv *Server) Err() error { return srv.err }
