package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/cpusched/sim"
	"github.com/inference-sim/cpusched/sim/trace"
	"github.com/inference-sim/cpusched/sim/workload"
)

var (
	runFlags   = DefaultRunConfig() // values bound to the run flags
	configPath string               // optional YAML run config
	logLevel   string               // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "cpusched",
	Short: "Tick-based single-CPU scheduling simulator",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the scheduling simulation for each policy",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg, err := resolveRunConfig(cmd, configPath, runFlags)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		logrus.Infof("Starting simulation: jobs=%s, policies=%v, horizon=%d ticks, quantum=%d",
			cfg.Jobs, cfg.Policies, cfg.Horizon, cfg.Quantum)
		startTime := time.Now()

		// Trace and comparison text would corrupt machine-readable output.
		aux := io.Writer(os.Stdout)
		if cfg.Output == sim.FormatJSON || cfg.Output == sim.FormatYAML {
			aux = os.Stderr
		}
		if err := executeRun(cfg, os.Stdout, aux); err != nil {
			logrus.Fatalf("%v", err)
		}

		logrus.Infof("Simulation complete in %s.", time.Since(startTime))
	},
}

// resolveRunConfig layers the config file (if any) over the defaults, then
// applies the flags the user set explicitly.
func resolveRunConfig(cmd *cobra.Command, path string, flags RunConfig) (RunConfig, error) {
	if path == "" {
		return flags, nil
	}
	cfg, err := loadRunConfig(path)
	if err != nil {
		return cfg, err
	}
	changed := cmd.Flags().Changed
	if changed("jobs") {
		cfg.Jobs = flags.Jobs
	}
	if changed("policies") {
		cfg.Policies = flags.Policies
	}
	if changed("horizon") {
		cfg.Horizon = flags.Horizon
	}
	if changed("quantum") {
		cfg.Quantum = flags.Quantum
	}
	if changed("max-jobs") {
		cfg.MaxJobs = flags.MaxJobs
	}
	if changed("output") {
		cfg.Output = flags.Output
	}
	if changed("trace") {
		cfg.Trace = flags.Trace
	}
	if changed("summary") {
		cfg.Summary = flags.Summary
	}
	return cfg, nil
}

// executeRun loads the job file, simulates every policy in order and writes
// the report to out. Decision traces and the comparison table go to aux.
func executeRun(cfg RunConfig, out, aux io.Writer) error {
	jobs, err := workload.LoadJobs(cfg.Jobs, cfg.MaxJobs)
	if err != nil {
		return fmt.Errorf("loading jobs: %w", err)
	}
	logrus.Infof("Loaded %d job(s) from %s", len(jobs), cfg.Jobs)

	results, err := sim.RunAll(cfg.Policies, jobs, cfg.SimConfig())
	if err != nil {
		return err
	}

	runs := make([]*sim.Metrics, 0, len(results))
	for _, res := range results {
		if err := res.Trace.WriteLog(aux); err != nil {
			return err
		}
		runs = append(runs, sim.NewMetrics(res))
	}
	if err := sim.WriteReport(out, runs, cfg.Output); err != nil {
		return err
	}

	if !cfg.Summary {
		return nil
	}
	if err := sim.WriteComparison(aux, runs); err != nil {
		return err
	}
	if cfg.SimConfig().TraceLevel != trace.TraceLevelDecisions {
		return nil
	}
	for _, res := range results {
		s := trace.Summarize(res.Trace)
		if _, err := fmt.Fprintf(aux, "%s: %d dispatches, %d preemptions, %d idle ticks\n",
			res.Policy, s.Dispatches, s.Preemptions, s.IdleTicks); err != nil {
			return err
		}
	}
	return nil
}

// bindRunFlags registers the flags that map onto RunConfig fields, using the
// current field values as defaults.
func bindRunFlags(c *cobra.Command, cfg *RunConfig) {
	c.Flags().StringVar(&cfg.Jobs, "jobs", cfg.Jobs, "Job file: whitespace separated 'id arrival duration' triples, or .yaml")
	c.Flags().StringSliceVar(&cfg.Policies, "policies", cfg.Policies, "Comma-separated policies to run, in order")
	c.Flags().Int64Var(&cfg.Horizon, "horizon", cfg.Horizon, "Total simulation horizon (in ticks)")
	c.Flags().Int64Var(&cfg.Quantum, "quantum", cfg.Quantum, "Round-robin time slice (in ticks)")
	c.Flags().IntVar(&cfg.MaxJobs, "max-jobs", cfg.MaxJobs, "Maximum number of jobs read from the job file")
	c.Flags().StringVar(&cfg.Output, "output", cfg.Output, "Report format (text, json, yaml)")
	c.Flags().StringVar(&cfg.Trace, "trace", cfg.Trace, "Trace level (none, decisions)")
	c.Flags().BoolVar(&cfg.Summary, "summary", cfg.Summary, "Print a cross-policy comparison table")
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML run config; explicit flags override it")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	bindRunFlags(runCmd, &runFlags)

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
