package mm1

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned when run parameters cannot describe a valid model.
var ErrInvalidConfig = errors.New("invalid M/M/1 configuration")

// Default run parameters.
const (
	DefaultSimTime     = 10000.0
	DefaultArrivalRate = 0.8
	DefaultServiceRate = 1.0
	DefaultSeed        = 42
)

// Config holds the parameters of one M/M/1 run.
type Config struct {
	SimTime     float64 `yaml:"sim_time"`     // run horizon in simulated time units
	ArrivalRate float64 `yaml:"arrival_rate"` // lambda, customers per time unit
	ServiceRate float64 `yaml:"service_rate"` // mu, customers per time unit
	Seed        int64   `yaml:"seed"`
}

// DefaultConfig returns a stable queue with utilization 0.8.
func DefaultConfig() Config {
	return Config{
		SimTime:     DefaultSimTime,
		ArrivalRate: DefaultArrivalRate,
		ServiceRate: DefaultServiceRate,
		Seed:        DefaultSeed,
	}
}

// Validate checks that every parameter is positive and finite.
func (c Config) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"sim_time", c.SimTime},
		{"arrival_rate", c.ArrivalRate},
		{"service_rate", c.ServiceRate},
	} {
		if f.value <= 0 || math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be a positive finite number, got %v", ErrInvalidConfig, f.name, f.value)
		}
	}
	return nil
}

// TrafficIntensity returns rho = lambda / mu.
func (c Config) TrafficIntensity() float64 {
	return c.ArrivalRate / c.ServiceRate
}
