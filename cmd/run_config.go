package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/cpusched/sim"
	"github.com/inference-sim/cpusched/sim/trace"
	"github.com/inference-sim/cpusched/sim/workload"
)

// RunConfig is the optional YAML file passed with --config. Every field
// mirrors a run flag; flags set explicitly on the command line win.
type RunConfig struct {
	Jobs     string   `yaml:"jobs"`
	Policies []string `yaml:"policies"`
	Horizon  int64    `yaml:"horizon"`
	Quantum  int64    `yaml:"quantum"`
	MaxJobs  int      `yaml:"max_jobs"`
	Output   string   `yaml:"output"`
	Trace    string   `yaml:"trace"`
	Summary  bool     `yaml:"summary"`
}

// DefaultRunConfig returns the settings of a bare `cpusched run`.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Jobs:     workload.DefaultJobsFile,
		Policies: sim.PolicyNames(),
		Horizon:  sim.DefaultHorizon,
		Quantum:  sim.DefaultQuantum,
		MaxJobs:  workload.DefaultMaxJobs,
		Output:   sim.FormatText,
		Trace:    string(trace.TraceLevelNone),
	}
}

// loadRunConfig reads a run config file on top of the defaults.
// Unknown keys are rejected so that typos surface as errors.
func loadRunConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading run config: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing run config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field before any job file is read.
func (c RunConfig) Validate() error {
	if c.Jobs == "" {
		return fmt.Errorf("jobs file must be set")
	}
	if len(c.Policies) == 0 {
		return fmt.Errorf("at least one policy is required")
	}
	for _, name := range c.Policies {
		if !sim.IsValidPolicy(name) {
			return fmt.Errorf("unknown policy %q; valid policies: %s", name, strings.Join(sim.PolicyNames(), ", "))
		}
	}
	if c.MaxJobs <= 0 {
		return fmt.Errorf("max-jobs must be positive, got %d", c.MaxJobs)
	}
	if !sim.IsValidOutputFormat(c.Output) {
		return fmt.Errorf("unknown output format %q", c.Output)
	}
	return c.SimConfig().Validate()
}

// SimConfig extracts the per-run simulator parameters.
func (c RunConfig) SimConfig() sim.SimConfig {
	level := trace.TraceLevel(c.Trace)
	if level == "" {
		level = trace.TraceLevelNone
	}
	return sim.SimConfig{Horizon: c.Horizon, Quantum: c.Quantum, TraceLevel: level}
}
