package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/desvu/desvu/sim/mm1"
)

// DefaultReplications is the number of runs performed by `replicate`.
const DefaultReplications = 100

// Scenario is the content of a scenario file: the model parameters plus the
// number of replications. Fields left out of the file keep their defaults.
type Scenario struct {
	mm1.Config   `yaml:",inline"`
	Replications int `yaml:"replications"`
}

// DefaultScenario returns the default model with DefaultReplications runs.
func DefaultScenario() Scenario {
	return Scenario{Config: mm1.DefaultConfig(), Replications: DefaultReplications}
}

// loadScenario reads a scenario file over the defaults.
// Uses strict field checking: typos must cause errors.
func loadScenario(path string) (Scenario, error) {
	sc := DefaultScenario()
	data, err := os.ReadFile(path)
	if err != nil {
		return sc, fmt.Errorf("read scenario %s: %w", path, err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&sc); err != nil {
		return sc, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	return sc, nil
}

// modelFlags holds the flags shared by `run` and `replicate`.
type modelFlags struct {
	seed            int64
	simTime         float64
	arrivalRate     float64
	serviceRate     float64
	replications    int
	scenarioPath    string
	logLevel        string
	logEvents       bool
	traceLevel      string
	metricsTextfile string
}

func (f *modelFlags) register(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&f.seed, "seed", mm1.DefaultSeed, "Seed for the arrival and service streams")
	cmd.Flags().Float64Var(&f.simTime, "sim-time", mm1.DefaultSimTime, "Simulation horizon")
	cmd.Flags().Float64Var(&f.arrivalRate, "arrival-rate", mm1.DefaultArrivalRate, "Customer arrival rate (lambda)")
	cmd.Flags().Float64Var(&f.serviceRate, "service-rate", mm1.DefaultServiceRate, "Service rate (mu)")
	cmd.Flags().StringVar(&f.scenarioPath, "config", "", "Path to a scenario YAML file; explicit flags override it")
	cmd.Flags().StringVar(&f.logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	cmd.Flags().BoolVar(&f.logEvents, "log-events", false, "Log every executed event (raises the log level to info)")
	cmd.Flags().StringVar(&f.traceLevel, "trace", "none", "Execution trace level (none, events)")
}

// resolve builds the scenario: defaults, then the scenario file, then any
// flag the user set explicitly.
func (f *modelFlags) resolve(cmd *cobra.Command) (Scenario, error) {
	sc := DefaultScenario()
	if f.scenarioPath != "" {
		loaded, err := loadScenario(f.scenarioPath)
		if err != nil {
			return sc, err
		}
		sc = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		sc.Seed = f.seed
	}
	if flags.Changed("sim-time") {
		sc.SimTime = f.simTime
	}
	if flags.Changed("arrival-rate") {
		sc.ArrivalRate = f.arrivalRate
	}
	if flags.Changed("service-rate") {
		sc.ServiceRate = f.serviceRate
	}
	if flags.Lookup("replications") != nil && flags.Changed("replications") {
		sc.Replications = f.replications
	}

	if err := sc.Validate(); err != nil {
		return sc, err
	}
	if sc.Replications < 1 {
		return sc, fmt.Errorf("%w: replications must be at least 1, got %d", mm1.ErrInvalidConfig, sc.Replications)
	}
	return sc, nil
}
