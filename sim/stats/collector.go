package stats

import (
	"fmt"
	"sort"
	"strings"
)

// reportBanner opens every Collector report.
const reportBanner = "=== Statistics Report ===\n"

// Collector is a registry of named statistics. Event-based and time-weighted
// statistics live in separate namespaces: the same name may exist in both,
// and the two never interact. Statistics are created on first write.
type Collector struct {
	events       map[string]*EventStats
	timeWeighted map[string]*TimeWeightedStats
}

// NewCollector returns an empty registry.
func NewCollector() *Collector {
	return &Collector{
		events:       make(map[string]*EventStats),
		timeWeighted: make(map[string]*TimeWeightedStats),
	}
}

// AddEvent records an observation for the event-based statistic name,
// creating it if needed.
func (c *Collector) AddEvent(name string, value float64) {
	s, ok := c.events[name]
	if !ok {
		s = NewEventStats(name)
		c.events[name] = s
	}
	s.Add(value)
}

// AddTimeWeighted updates the time-weighted statistic name at time t,
// creating it if needed. Errors from Update are returned unchanged.
func (c *Collector) AddTimeWeighted(name string, t, value float64) error {
	s, ok := c.timeWeighted[name]
	if !ok {
		s = NewTimeWeightedStats(name)
		c.timeWeighted[name] = s
	}
	return s.Update(t, value)
}

// Event returns the event-based statistic registered under name.
func (c *Collector) Event(name string) (*EventStats, bool) {
	s, ok := c.events[name]
	return s, ok
}

// TimeWeighted returns the time-weighted statistic registered under name.
func (c *Collector) TimeWeighted(name string) (*TimeWeightedStats, bool) {
	s, ok := c.timeWeighted[name]
	return s, ok
}

// HasEvent reports whether an event-based statistic named name exists.
func (c *Collector) HasEvent(name string) bool {
	_, ok := c.events[name]
	return ok
}

// HasTimeWeighted reports whether a time-weighted statistic named name exists.
func (c *Collector) HasTimeWeighted(name string) bool {
	_, ok := c.timeWeighted[name]
	return ok
}

// EventNames returns the event-based statistic names in sorted order.
func (c *Collector) EventNames() []string {
	return sortedKeys(c.events)
}

// TimeWeightedNames returns the time-weighted statistic names in sorted order.
func (c *Collector) TimeWeightedNames() []string {
	return sortedKeys(c.timeWeighted)
}

// Report renders every event-based statistic, then every time-weighted one
// averaged up to endTime, each group in name order. Blocks are separated by
// a blank line and preceded by a banner line.
func (c *Collector) Report(endTime float64) (string, error) {
	blocks := make([]string, 0, len(c.events)+len(c.timeWeighted))
	for _, name := range c.EventNames() {
		blocks = append(blocks, c.events[name].Report())
	}
	for _, name := range c.TimeWeightedNames() {
		block, err := c.timeWeighted[name].Report(endTime)
		if err != nil {
			return "", fmt.Errorf("report: %w", err)
		}
		blocks = append(blocks, block)
	}
	return reportBanner + strings.Join(blocks, "\n\n"), nil
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
