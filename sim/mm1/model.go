package mm1

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/desvu/desvu/sim"
	"github.com/desvu/desvu/sim/stats"
)

// SeedStride separates the seeds of consecutive replications.
const SeedStride = 100

// model is the state shared by the events of one run.
type model struct {
	sampler Sampler
	server  *Server
	arrived int
}

// Result is the outcome of a single run.
type Result struct {
	Config           Config
	Stats            *stats.Collector
	CustomersArrived int
	CustomersServed  int
	// CustomersInSystem counts customers still waiting or in service at the horizon.
	CustomersInSystem int
	EventsExecuted    int
}

// Report renders the run's statistics averaged over the run horizon.
func (r *Result) Report() (string, error) {
	return r.Stats.Report(r.Config.SimTime)
}

// Run simulates cfg until cfg.SimTime with exponential arrivals and services.
func Run(cfg Config, simCfg sim.SimConfig) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return RunWithSampler(cfg, NewExponentialSampler(cfg), simCfg)
}

// RunWithSampler simulates cfg until cfg.SimTime drawing durations from sampler.
// cfg's rates and seed are not used.
func RunWithSampler(cfg Config, sampler Sampler, simCfg sim.SimConfig) (*Result, error) {
	collector := stats.NewCollector()
	for _, name := range []string{StatQueueLength, StatServerUtilization} {
		if err := collector.AddTimeWeighted(name, 0, 0); err != nil {
			return nil, err
		}
	}

	m := &model{sampler: sampler, server: NewServer(sampler, collector)}
	s := sim.NewSimulator(simCfg)
	s.Schedule(newArrivalEvent(0, m))
	s.RunUntil(cfg.SimTime)

	if err := m.server.Err(); err != nil {
		return nil, fmt.Errorf("run with seed %d: %w", cfg.Seed, err)
	}

	inSystem := m.server.QueueLength()
	if m.server.Busy() {
		inSystem++
	}
	logrus.Debugf("seed %d: %d arrived, %d served, %d events", cfg.Seed, m.arrived, m.server.Served(), s.Executed())
	return &Result{
		Config:            cfg,
		Stats:             collector,
		CustomersArrived:  m.arrived,
		CustomersServed:   m.server.Served(),
		CustomersInSystem: inSystem,
		EventsExecuted:    s.Executed(),
	}, nil
}

// RunReplications performs n independent runs of cfg. Replication i uses
// seed cfg.Seed + i*SeedStride. simCfg applies to every replication.
func RunReplications(cfg Config, n int, simCfg sim.SimConfig) ([]*Result, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: replications must be at least 1, got %d", ErrInvalidConfig, n)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	results := make([]*Result, 0, n)
	for i := 0; i < n; i++ {
		repCfg := cfg
		repCfg.Seed = cfg.Seed + int64(i)*SeedStride
		r, err := Run(repCfg, simCfg)
		if err != nil {
			return nil, fmt.Errorf("replication %d: %w", i+1, err)
		}
		results = append(results, r)
		logrus.Infof("Completed replication %d/%d", i+1, n)
	}
	return results, nil
}

// Aggregate combines several replications: per-customer observations are
// pooled, and each replication contributes one time-weighted average.
type Aggregate struct {
	Waiting     *stats.EventStats
	Service     *stats.EventStats
	QueueLength *stats.EventStats
	Utilization *stats.EventStats
}

// AggregateResults combines results. Time-weighted averages are taken over
// each result's own horizon.
func AggregateResults(results []*Result) (*Aggregate, error) {
	agg := &Aggregate{
		Waiting:     stats.NewEventStats("Waiting Time (All Replications)"),
		Service:     stats.NewEventStats("Service Time (All Replications)"),
		QueueLength: stats.NewEventStats("Average Queue Length per Replication"),
		Utilization: stats.NewEventStats("Average Utilization per Replication"),
	}
	for _, r := range results {
		pool(agg.Waiting, r.Stats, StatWaitingTime)
		pool(agg.Service, r.Stats, StatServiceTime)
		if err := addAverage(agg.QueueLength, r, StatQueueLength); err != nil {
			return nil, err
		}
		if err := addAverage(agg.Utilization, r, StatServerUtilization); err != nil {
			return nil, err
		}
	}
	return agg, nil
}

func pool(dst *stats.EventStats, c *stats.Collector, name string) {
	src, ok := c.Event(name)
	if !ok {
		return
	}
	for _, v := range src.Observations() {
		dst.Add(v)
	}
}

func addAverage(dst *stats.EventStats, r *Result, name string) error {
	tw, ok := r.Stats.TimeWeighted(name)
	if !ok {
		return nil
	}
	avg, err := tw.Average(r.Config.SimTime)
	if err != nil {
		return fmt.Errorf("aggregate %s (seed %d): %w", name, r.Config.Seed, err)
	}
	dst.Add(avg)
	return nil
}

// Report renders the four aggregated statistics separated by blank lines.
func (a *Aggregate) Report() string {
	return strings.Join([]string{
		a.Waiting.Report(),
		a.Service.Report(),
		a.QueueLength.Report(),
		a.Utilization.Report(),
	}, "\n\n")
}
