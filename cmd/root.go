package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hawkes-sim/hawkes-sim/hawkes"
	"github.com/hawkes-sim/hawkes-sim/hawkes/trace"
)

var (
	// CLI flags shared across subcommands
	logLevel   string // Log verbosity level
	configPath string // Path to the YAML model spec

	// CLI flags for simulate
	seed           int64  // Master seed; overrides the spec's seed when set
	outputPath     string // Where to write the sampled realization CSV ("" = stdout summary only)
	maxGenerations int    // Cap on branching generations (0 = default)
	maxEvents      int    // Cap on accumulated events (0 = default)
	showTrace      bool   // Print the per-generation cluster structure

	// CLI flags for loglik
	eventsPath string // Realization CSV to evaluate
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "hawkes-sim",
	Short: "Exact simulation and likelihood evaluation for multivariate Hawkes processes",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// simulateCmd draws one realization via the branching sampler.
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Sample a realization from a model spec",
	Run: func(cmd *cobra.Command, args []string) {
		spec := loadSpec()
		key := hawkes.NewSimulationKey(spec.Seed)
		if cmd.Flags().Changed("seed") {
			key = hawkes.NewSimulationKey(seed)
		}
		limits := hawkes.Limits{MaxGenerations: maxGenerations, MaxEvents: maxEvents}
		if limits == (hawkes.Limits{}) {
			limits = hawkes.Limits{MaxGenerations: spec.Limits.MaxGenerations, MaxEvents: spec.Limits.MaxEvents}
		}

		var ct *trace.ClusterTrace
		if showTrace {
			ct = &trace.ClusterTrace{}
		}
		realization, err := hawkes.SimulateTraced(key, spec.Params(), spec.Horizon, limits, ct)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		hawkes.Summarize(realization, spec.Params().NumProcesses(), spec.Horizon).Print()
		if showTrace {
			printTraceSummary(trace.Summarize(ct))
		}
		if outputPath != "" {
			if err := WriteRealizationCSV(outputPath, realization); err != nil {
				logrus.Fatalf("Writing realization: %v", err)
			}
			logrus.Infof("Wrote %d events to %s", len(realization), outputPath)
		}
	},
}

// loglikCmd evaluates a realization CSV under a model spec.
var loglikCmd = &cobra.Command{
	Use:   "loglik",
	Short: "Compute the exact log-likelihood of a realization",
	Run: func(cmd *cobra.Command, args []string) {
		spec := loadSpec()
		times, marks, err := ReadRealizationCSV(eventsPath)
		if err != nil {
			logrus.Fatalf("Reading realization %s: %v", eventsPath, err)
		}
		ll, err := hawkes.ComputeLogLikelihood(times, marks, spec.Params(), spec.Horizon)
		if err != nil {
			logrus.Fatalf("Likelihood evaluation failed: %v", err)
		}
		fmt.Printf("events: %d\n", len(times))
		fmt.Printf("loglik: %.9f\n", ll)
	},
}

func loadSpec() *hawkes.ModelSpec {
	if configPath == "" {
		logrus.Fatalf("Model spec not provided. Use --config.")
	}
	spec, err := hawkes.LoadModelSpec(configPath)
	if err != nil {
		logrus.Fatalf("Failed to load model spec: %v", err)
	}
	return spec
}

func printTraceSummary(s *trace.TraceSummary) {
	fmt.Println("=== Cluster Structure ===")
	fmt.Printf("Generations      : %d\n", s.Generations)
	fmt.Printf("Immigrants       : %d\n", s.Immigrants)
	fmt.Printf("Mean Offspring   : %.4f\n", s.MeanOffspring)
	fmt.Printf("Peak Generation  : %d\n", s.PeakGenerationSize)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "loglevel", "info", "Log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML model spec")

	simulateCmd.Flags().Int64Var(&seed, "seed", 0, "Master seed (overrides the spec's seed)")
	simulateCmd.Flags().StringVar(&outputPath, "output", "", "Path to write the realization CSV")
	simulateCmd.Flags().IntVar(&maxGenerations, "max-generations", 0, "Cap on branching generations (0 = default)")
	simulateCmd.Flags().IntVar(&maxEvents, "max-events", 0, "Cap on accumulated events (0 = default)")
	simulateCmd.Flags().BoolVar(&showTrace, "trace", false, "Print the per-generation cluster structure")

	loglikCmd.Flags().StringVar(&eventsPath, "events", "", "Path to a realization CSV (time,mark rows)")
	_ = loglikCmd.MarkFlagRequired("events")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(loglikCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
