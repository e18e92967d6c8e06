package sim

import (
	"fmt"

	"github.com/inference-sim/cpusched/sim/trace"
)

// DefaultHorizon bounds the tick loop when no horizon is configured.
const DefaultHorizon int64 = 100

// SimConfig groups the per-run parameters of the tick loop.
type SimConfig struct {
	Horizon    int64            // ticks simulated at most; the loop covers [0, Horizon)
	Quantum    int64            // round-robin slice in ticks
	TraceLevel trace.TraceLevel // "none" (default) or "decisions"
}

// DefaultSimConfig returns the configuration used when nothing is overridden.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		Horizon:    DefaultHorizon,
		Quantum:    DefaultQuantum,
		TraceLevel: trace.TraceLevelNone,
	}
}

// Validate checks parameter ranges.
func (c SimConfig) Validate() error {
	if c.Horizon <= 0 {
		return fmt.Errorf("horizon must be positive, got %d", c.Horizon)
	}
	if c.Quantum <= 0 {
		return fmt.Errorf("quantum must be positive, got %d", c.Quantum)
	}
	if !trace.IsValidTraceLevel(string(c.TraceLevel)) {
		return fmt.Errorf("unknown trace level %q", c.TraceLevel)
	}
	return nil
}
