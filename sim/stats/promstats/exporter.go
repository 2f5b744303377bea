// Package promstats exposes a stats.Collector as Prometheus metrics.
//
// Every statistic becomes a set of gauges labelled with its name. The values
// are a snapshot taken at scrape time, so the exporter is normally used once,
// after a run, to write a node-exporter textfile.
package promstats

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/desvu/desvu/sim/stats"
)

const namespace = "desvu"

// Exporter implements prometheus.Collector over a stats.Collector.
type Exporter struct {
	collector *stats.Collector
	endTime   float64

	eventCount  *prometheus.Desc
	eventMean   *prometheus.Desc
	eventStdDev *prometheus.Desc
	eventMin    *prometheus.Desc
	eventMax    *prometheus.Desc
	eventCILow  *prometheus.Desc
	eventCIHigh *prometheus.Desc

	twUpdates *prometheus.Desc
	twAverage *prometheus.Desc
	twMin     *prometheus.Desc
	twMax     *prometheus.Desc
}

// NewExporter returns an exporter for c. Time-weighted averages are taken up
// to endTime. constLabels, which may be nil, are attached to every metric.
func NewExporter(c *stats.Collector, endTime float64, constLabels prometheus.Labels) *Exporter {
	desc := func(subsystem, name, help string) *prometheus.Desc {
		return prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, name),
			help, []string{"name"}, constLabels,
		)
	}
	return &Exporter{
		collector: c,
		endTime:   endTime,

		eventCount:  desc("event", "count", "Number of event-based observations."),
		eventMean:   desc("event", "mean", "Mean of event-based observations."),
		eventStdDev: desc("event", "stddev", "Sample standard deviation of event-based observations."),
		eventMin:    desc("event", "min", "Smallest event-based observation."),
		eventMax:    desc("event", "max", "Largest event-based observation."),
		eventCILow:  desc("event", "ci95_lower", "Lower bound of the 95% confidence interval of the mean."),
		eventCIHigh: desc("event", "ci95_upper", "Upper bound of the 95% confidence interval of the mean."),

		twUpdates: desc("time_weighted", "updates", "Number of time-weighted updates, the initial point included."),
		twAverage: desc("time_weighted", "average", "Time-weighted average up to the end of the run."),
		twMin:     desc("time_weighted", "min", "Smallest time-weighted value."),
		twMax:     desc("time_weighted", "max", "Largest time-weighted value."),
	}
}

// Describe implements prometheus.Collector.
func (e *Exporter) Describe(ch chan<- *prometheus.Desc) {
	for _, d := range []*prometheus.Desc{
		e.eventCount, e.eventMean, e.eventStdDev, e.eventMin, e.eventMax, e.eventCILow, e.eventCIHigh,
		e.twUpdates, e.twAverage, e.twMin, e.twMax,
	} {
		ch <- d
	}
}

// Collect implements prometheus.Collector. Confidence bounds are omitted for
// statistics with fewer than two observations.
func (e *Exporter) Collect(ch chan<- prometheus.Metric) {
	gauge := func(d *prometheus.Desc, v float64, name string) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.GaugeValue, v, name)
	}

	for _, name := range e.collector.EventNames() {
		s, _ := e.collector.Event(name)
		gauge(e.eventCount, float64(s.Count()), name)
		gauge(e.eventMean, s.Mean(), name)
		gauge(e.eventStdDev, s.StandardDeviation(), name)
		gauge(e.eventMin, s.Min(), name)
		gauge(e.eventMax, s.Max(), name)
		if lower, upper, err := s.ConfidenceInterval95(); err == nil {
			gauge(e.eventCILow, lower, name)
			gauge(e.eventCIHigh, upper, name)
		}
	}

	for _, name := range e.collector.TimeWeightedNames() {
		s, _ := e.collector.TimeWeighted(name)
		avg, err := s.Average(e.endTime)
		if err != nil {
			ch <- prometheus.NewInvalidMetric(e.twAverage, err)
			continue
		}
		gauge(e.twUpdates, float64(s.Count()), name)
		gauge(e.twAverage, avg, name)
		gauge(e.twMin, s.Min(), name)
		gauge(e.twMax, s.Max(), name)
	}
}

// WriteTextfile writes the statistics of c to path in the Prometheus text
// format, ready for the node exporter's textfile collector.
func WriteTextfile(path string, c *stats.Collector, endTime float64, constLabels prometheus.Labels) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(NewExporter(c, endTime, constLabels)); err != nil {
		return err
	}
	return prometheus.WriteToTextfile(path, reg)
}
