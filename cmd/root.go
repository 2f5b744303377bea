package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/xid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/desvu/desvu/sim"
	"github.com/desvu/desvu/sim/mm1"
	"github.com/desvu/desvu/sim/stats/promstats"
	"github.com/desvu/desvu/sim/trace"
)

var (
	runFlags       modelFlags // flags of `run`
	replicateFlags modelFlags // flags of `replicate`
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "desvu",
	Short: "Discrete-event simulation of an M/M/1 queue",
}

// runCmd performs a single replication and prints its statistics report
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one M/M/1 replication",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging(&runFlags)
		sc, err := runFlags.resolve(cmd)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}
		if err := runSingle(cmd.OutOrStdout(), &runFlags, sc); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
	},
}

// replicateCmd performs independent replications and prints aggregated and theoretical results
var replicateCmd = &cobra.Command{
	Use:   "replicate",
	Short: "Run independent M/M/1 replications and aggregate them",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging(&replicateFlags)
		sc, err := replicateFlags.resolve(cmd)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}
		if err := runReplicated(cmd.OutOrStdout(), &replicateFlags, sc); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(f *modelFlags) {
	level, err := logrus.ParseLevel(f.logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", f.logLevel)
	}
	if f.logEvents && level < logrus.InfoLevel {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// newSimConfig translates the kernel-related flags.
func newSimConfig(f *modelFlags) (sim.SimConfig, error) {
	if !trace.IsValidTraceLevel(f.traceLevel) {
		return sim.SimConfig{}, fmt.Errorf("unknown trace level %q", f.traceLevel)
	}
	return sim.SimConfig{
		LogEvents: f.logEvents,
		Trace:     trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevel(f.traceLevel)}),
	}, nil
}

func printHeader(out io.Writer, title string) {
	fmt.Fprintln(out, "===========================================")
	fmt.Fprintf(out, "  %s\n", title)
	fmt.Fprintln(out, "===========================================")
}

func printParameters(out io.Writer, sc Scenario) {
	fmt.Fprintf(out, "Arrival rate: %g\n", sc.ArrivalRate)
	fmt.Fprintf(out, "Service rate: %g\n", sc.ServiceRate)
	fmt.Fprintf(out, "Simulation time: %g\n", sc.SimTime)
	fmt.Fprintf(out, "Seed: %d\n", sc.Seed)
}

// runSingle simulates one replication of sc and writes its report to out.
func runSingle(out io.Writer, f *modelFlags, sc Scenario) error {
	simCfg, err := newSimConfig(f)
	if err != nil {
		return err
	}
	runID := xid.New().String()
	log := logrus.WithField("run", runID)
	log.Infof("Starting simulation: lambda=%g, mu=%g, horizon=%g, seed=%d",
		sc.ArrivalRate, sc.ServiceRate, sc.SimTime, sc.Seed)
	startTime := time.Now()

	result, err := mm1.Run(sc.Config, simCfg)
	if err != nil {
		return err
	}
	report, err := result.Report()
	if err != nil {
		return err
	}

	printHeader(out, "M/M/1 Queue Simulation")
	printParameters(out, sc)
	fmt.Fprintln(out)
	fmt.Fprintln(out, report)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Customers arrived: %d\n", result.CustomersArrived)
	fmt.Fprintf(out, "Customers served: %d\n", result.CustomersServed)
	fmt.Fprintf(out, "Events executed: %d\n", result.EventsExecuted)

	if simCfg.Trace.Enabled() {
		printTraceSummary(out, trace.Summarize(simCfg.Trace))
	}

	if f.metricsTextfile != "" {
		labels := prometheus.Labels{"run": runID}
		if err := promstats.WriteTextfile(f.metricsTextfile, result.Stats, sc.SimTime, labels); err != nil {
			return fmt.Errorf("write metrics textfile: %w", err)
		}
		log.Infof("Metrics written to %s", f.metricsTextfile)
	}

	log.Infof("Simulation complete in %v.", time.Since(startTime))
	return nil
}

// runReplicated simulates sc.Replications replications and writes the
// aggregated, theoretical and summary sections to out.
func runReplicated(out io.Writer, f *modelFlags, sc Scenario) error {
	simCfg, err := newSimConfig(f)
	if err != nil {
		return err
	}
	log := logrus.WithField("run", xid.New().String())
	log.Infof("Starting %d replications: lambda=%g, mu=%g, horizon=%g, base seed=%d",
		sc.Replications, sc.ArrivalRate, sc.ServiceRate, sc.SimTime, sc.Seed)
	startTime := time.Now()

	results, err := mm1.RunReplications(sc.Config, sc.Replications, simCfg)
	if err != nil {
		return err
	}
	agg, err := mm1.AggregateResults(results)
	if err != nil {
		return err
	}

	printHeader(out, "M/M/1 Queue Simulation")
	printParameters(out, sc)
	fmt.Fprintf(out, "Number of replications: %d\n", sc.Replications)
	fmt.Fprintln(out)
	printHeader(out, "Aggregated Results Across Replications")
	fmt.Fprintln(out)
	fmt.Fprintln(out, agg.Report())
	fmt.Fprintln(out)
	printHeader(out, "Theoretical Values (M/M/1)")
	fmt.Fprintln(out, mm1.Theoretical(sc.Config).Report())

	if simCfg.Trace.Enabled() {
		printTraceSummary(out, trace.Summarize(simCfg.Trace))
	}

	log.Infof("Replications complete in %v.", time.Since(startTime))
	return nil
}

func printTraceSummary(out io.Writer, s *trace.TraceSummary) {
	fmt.Fprintln(out)
	printHeader(out, "Trace Summary")
	fmt.Fprintf(out, "Records: %d\n", s.TotalRecords)
	fmt.Fprintf(out, "Executed: %d\n", s.ExecutedCount)
	fmt.Fprintf(out, "Cancelled: %d\n", s.CancelledCount)
	fmt.Fprintf(out, "Discarded: %d\n", s.DiscardedCount)
	for _, label := range sortedLabels(s.LabelDistribution) {
		fmt.Fprintf(out, "  %s: %d\n", label, s.LabelDistribution[label])
	}
}

// init sets up CLI flags and subcommands
func init() {
	runFlags.register(runCmd)
	runCmd.Flags().StringVar(&runFlags.metricsTextfile, "metrics-textfile", "", "Write the statistics in Prometheus textfile format to this path")

	replicateFlags.register(replicateCmd)
	replicateCmd.Flags().IntVar(&replicateFlags.replications, "replications", DefaultReplications, "Number of independent replications")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replicateCmd)
}

func sortedLabels(m map[string]int) []string {
	labels := make([]string, 0, len(m))
	for l := range m {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}
