package stats

import (
	"fmt"
	"math"
	"strings"
)

// TimeWeightedStats summarizes a piecewise-constant signal such as a queue
// length: each value is weighted by how long it stayed in effect.
//
// A new statistic starts with value 0 at time 0, and that initial point
// counts as its first update and takes part in Min and Max.
type TimeWeightedStats struct {
	name        string
	lastTime    float64
	lastValue   float64
	integral    float64
	min         float64
	max         float64
	updateCount int
}

// NewTimeWeightedStats returns a statistic holding value 0 since time 0.
func NewTimeWeightedStats(name string) *TimeWeightedStats {
	return &TimeWeightedStats{name: name, updateCount: 1}
}

// Name returns the statistic's name.
func (s *TimeWeightedStats) Name() string {
	return s.name
}

// Update sets the signal to value from time t on. The previous value is
// charged for [LastTime(), t). An update at LastTime() replaces the current
// value without adding to the integral. A t earlier than LastTime() returns
// ErrTimeBeforeLastUpdate and leaves the statistic unchanged.
func (s *TimeWeightedStats) Update(t, value float64) error {
	if t < s.lastTime {
		return fmt.Errorf("update %q at t=%g, last update at t=%g: %w",
			s.name, t, s.lastTime, ErrTimeBeforeLastUpdate)
	}

	s.integral += s.lastValue * (t - s.lastTime)
	s.min = math.Min(s.min, value)
	s.max = math.Max(s.max, value)
	s.lastTime = t
	s.lastValue = value
	s.updateCount++
	return nil
}

// Count returns the number of updates, the implicit initial one included.
func (s *TimeWeightedStats) Count() int {
	return s.updateCount
}

// Average returns the time-weighted mean over [0, endTime], charging the
// last value for the tail after the last update. It returns 0 when endTime
// is not positive, and ErrTimeBeforeLastUpdate when endTime precedes LastTime().
func (s *TimeWeightedStats) Average(endTime float64) (float64, error) {
	if endTime < s.lastTime {
		return 0, fmt.Errorf("average %q at t=%g, last update at t=%g: %w",
			s.name, endTime, s.lastTime, ErrTimeBeforeLastUpdate)
	}
	if endTime <= 0 {
		return 0, nil
	}
	total := s.integral + s.lastValue*(endTime-s.lastTime)
	return total / endTime, nil
}

// Min returns the smallest value seen, the initial 0 included.
func (s *TimeWeightedStats) Min() float64 { return s.min }

// Max returns the largest value seen, the initial 0 included.
func (s *TimeWeightedStats) Max() float64 { return s.max }

// Integral returns the accumulated integral up to LastTime().
func (s *TimeWeightedStats) Integral() float64 { return s.integral }

// LastValue returns the value currently in effect.
func (s *TimeWeightedStats) LastValue() float64 { return s.lastValue }

// LastTime returns the time of the most recent update.
func (s *TimeWeightedStats) LastTime() float64 { return s.lastTime }

// Report renders the statistic as a fixed-format text block, averaging up to endTime.
func (s *TimeWeightedStats) Report(endTime float64) (string, error) {
	avg, err := s.Average(endTime)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (Time-Weighted)\n", s.name)
	fmt.Fprintf(&sb, "  Updates: %d\n", s.Count())
	fmt.Fprintf(&sb, "  Average: %.4f\n", avg)
	fmt.Fprintf(&sb, "  Min: %.4f\n", s.Min())
	fmt.Fprintf(&sb, "  Max: %.4f", s.Max())
	return sb.String(), nil
}
