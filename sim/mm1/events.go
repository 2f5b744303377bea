package mm1

import "github.com/desvu/desvu/sim"

// ArrivalEvent brings one customer into the system and schedules the next arrival.
type ArrivalEvent struct {
	sim.BaseEvent
	model *model
}

// newArrivalEvent returns an arrival for m firing delay time units after scheduling.
func newArrivalEvent(delay float64, m *model) *ArrivalEvent {
	return &ArrivalEvent{BaseEvent: sim.NewBaseEvent(delay), model: m}
}

// Execute admits a customer at the current time.
func (e *ArrivalEvent) Execute(s *sim.Simulator) {
	m := e.model
	m.arrived++
	s.Schedule(newArrivalEvent(m.sampler.NextInterarrival(), m))
	m.server.HandleArrival(s, &Customer{ID: m.arrived, ArrivalTime: s.Now()})
}

func (e *ArrivalEvent) String() string { return "Arrival" }

// DepartureEvent completes the service in progress on a server.
type DepartureEvent struct {
	sim.BaseEvent
	server *Server
}

// NewDepartureEvent returns a departure from srv firing delay time units after scheduling.
func NewDepartureEvent(delay float64, srv *Server) *DepartureEvent {
	return &DepartureEvent{BaseEvent: sim.NewBaseEvent(delay), server: srv}
}

// Execute hands control back to the server.
func (e *DepartureEvent) Execute(s *sim.Simulator) {
	e.server.ServiceCompleted(s)
}

func (e *DepartureEvent) String() string { return "Departure" }
