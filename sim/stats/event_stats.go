package stats

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// normalCritical95 is the two-tailed 95% critical value of the standard normal
// distribution, used once the sample holds more than largeSampleSize observations.
const (
	normalCritical95 = 1.96
	largeSampleSize  = 30
)

// tCritical95 holds two-tailed 95% Student's t critical values indexed by
// degrees of freedom minus one (df = 1..29).
// See https://en.wikipedia.org/wiki/Student%27s_t-distribution
var tCritical95 = [...]float64{
	12.706, 4.303, 3.182, 2.776, 2.571, // df = 1-5
	2.447, 2.365, 2.306, 2.262, 2.228, // df = 6-10
	2.201, 2.179, 2.160, 2.145, 2.131, // df = 11-15
	2.120, 2.110, 2.101, 2.093, 2.086, // df = 16-20
	2.080, 2.074, 2.069, 2.064, 2.060, // df = 21-25
	2.056, 2.052, 2.048, 2.045, // df = 26-29
}

// tCritical returns the 95% t critical value for df degrees of freedom.
// Callers only reach it with 1 <= df <= 29; anything else is a programming error.
func tCritical(df int) float64 {
	if df < 1 || df > len(tCritical95) {
		panic(fmt.Sprintf("tCritical: degrees of freedom %d outside table range [1, %d]", df, len(tCritical95)))
	}
	return tCritical95[df-1]
}

// EventStats summarizes scalar observations recorded at discrete events,
// such as the waiting time of each customer.
//
// Observations are kept in insertion order and every summary is recomputed
// from them on demand.
type EventStats struct {
	name         string
	observations []float64
}

// NewEventStats returns an empty statistic.
func NewEventStats(name string) *EventStats {
	return &EventStats{name: name}
}

// Name returns the statistic's name.
func (s *EventStats) Name() string {
	return s.name
}

// Add records one observation.
func (s *EventStats) Add(value float64) {
	s.observations = append(s.observations, value)
}

// Count returns the number of observations.
func (s *EventStats) Count() int {
	return len(s.observations)
}

// Observations returns a copy of the recorded values in insertion order.
func (s *EventStats) Observations() []float64 {
	out := make([]float64, len(s.observations))
	copy(out, s.observations)
	return out
}

// Mean returns the average observation, or 0 when there are none.
func (s *EventStats) Mean() float64 {
	if len(s.observations) == 0 {
		return 0
	}
	return stat.Mean(s.observations, nil)
}

// StandardDeviation returns the sample standard deviation (N-1 divisor),
// or 0 when there are fewer than two observations.
func (s *EventStats) StandardDeviation() float64 {
	if len(s.observations) < 2 {
		return 0
	}
	return stat.StdDev(s.observations, nil)
}

// Min returns the smallest observation, or 0 when there are none.
func (s *EventStats) Min() float64 {
	if len(s.observations) == 0 {
		return 0
	}
	return floats.Min(s.observations)
}

// Max returns the largest observation, or 0 when there are none.
func (s *EventStats) Max() float64 {
	if len(s.observations) == 0 {
		return 0
	}
	return floats.Max(s.observations)
}

// ConfidenceInterval95 returns a 95% confidence interval for the mean.
// Samples larger than 30 use the normal critical value 1.96; smaller ones use
// Student's t with N-1 degrees of freedom.
func (s *EventStats) ConfidenceInterval95() (lower, upper float64, err error) {
	n := len(s.observations)
	if n < 2 {
		return 0, 0, fmt.Errorf("confidence interval for %q with %d observations: %w",
			s.name, n, ErrInsufficientObservations)
	}

	critical := normalCritical95
	if n <= largeSampleSize {
		critical = tCritical(n - 1)
	}

	mean := s.Mean()
	margin := critical * s.StandardDeviation() / math.Sqrt(float64(n))
	return mean - margin, mean + margin, nil
}

// Report renders the statistic as a fixed-format text block.
func (s *EventStats) Report() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (Event-based)\n", s.name)
	fmt.Fprintf(&sb, "  Count: %d\n", s.Count())
	fmt.Fprintf(&sb, "  Average: %.4f\n", s.Mean())
	fmt.Fprintf(&sb, "  Std Dev: %.4f\n", s.StandardDeviation())
	fmt.Fprintf(&sb, "  Min: %.4f\n", s.Min())
	fmt.Fprintf(&sb, "  Max: %.4f", s.Max())
	if lower, upper, err := s.ConfidenceInterval95(); err == nil {
		fmt.Fprintf(&sb, "\n  95%% CI: [%.4f, %.4f]", lower, upper)
	} else {
		sb.WriteString("\n  95% CI: N/A (need >= 2 observations)")
	}
	return sb.String()
}
