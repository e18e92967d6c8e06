package workload

import (
	"fmt"
	"io"
	"sort"

	"github.com/inference-sim/cpusched/sim"
)

// GenerateConfig parameterizes a synthetic job list.
type GenerateConfig struct {
	Count       int   // number of jobs
	Seed        int64 // RNG seed; same seed, same jobs
	MaxArrival  int64 // arrivals are drawn from [0, MaxArrival]
	MinDuration int64 // durations are drawn from [MinDuration, MaxDuration]
	MaxDuration int64
}

// DefaultGenerateConfig returns a small workload that fits the default horizon.
func DefaultGenerateConfig() GenerateConfig {
	return GenerateConfig{Count: 5, Seed: 42, MaxArrival: 10, MinDuration: 1, MaxDuration: 10}
}

// Validate checks parameter ranges.
func (c GenerateConfig) Validate() error {
	if c.Count <= 0 {
		return fmt.Errorf("count must be positive, got %d", c.Count)
	}
	if c.MaxArrival < 0 {
		return fmt.Errorf("max arrival must be non-negative, got %d", c.MaxArrival)
	}
	if c.MinDuration <= 0 {
		return fmt.Errorf("min duration must be positive, got %d", c.MinDuration)
	}
	if c.MaxDuration < c.MinDuration {
		return fmt.Errorf("max duration %d is below min duration %d", c.MaxDuration, c.MinDuration)
	}
	return nil
}

// Generate creates a job table deterministically from cfg.
// Returns jobs sorted by arrival (stable) with sequential IDs starting at 1.
func Generate(cfg GenerateConfig) (sim.JobTable, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generate config: %w", err)
	}
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(cfg.Seed))
	arrivalRNG := rng.ForSubsystem(sim.SubsystemArrival)
	durationRNG := rng.ForSubsystem(sim.SubsystemDuration)

	type draw struct{ arrival, duration int64 }
	draws := make([]draw, cfg.Count)
	for i := range draws {
		draws[i].arrival = arrivalRNG.Int63n(cfg.MaxArrival + 1)
		draws[i].duration = cfg.MinDuration + durationRNG.Int63n(cfg.MaxDuration-cfg.MinDuration+1)
	}
	sort.SliceStable(draws, func(i, j int) bool {
		return draws[i].arrival < draws[j].arrival
	})

	jobs := make(sim.JobTable, cfg.Count)
	for i, d := range draws {
		jobs[i] = sim.NewJob(i+1, d.arrival, d.duration)
	}
	return jobs, nil
}

// WriteJobs writes jobs in the triple format read by ParseJobs.
func WriteJobs(w io.Writer, jobs sim.JobTable) error {
	for _, j := range jobs {
		if _, err := fmt.Fprintf(w, "%d %d %d\n", j.ID, j.ArrivalTime, j.Duration); err != nil {
			return fmt.Errorf("writing job %d: %w", j.ID, err)
		}
	}
	return nil
}
