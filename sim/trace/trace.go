package trace

import (
	"fmt"
	"io"
)

// TraceLevel controls the verbosity of decision tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDecisions captures admissions, completions, preemptions and dispatches.
	TraceLevelDecisions TraceLevel = "decisions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelDecisions: true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level  TraceLevel
	Policy string // policy name used as the run log prefix
}

// Enabled reports whether the config asks for any recording.
func (c TraceConfig) Enabled() bool {
	return c.Level == TraceLevelDecisions
}

// SimulationTrace collects tick records during one simulation run.
type SimulationTrace struct {
	Config  TraceConfig
	Records []TickRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config:  config,
		Records: make([]TickRecord, 0),
	}
}

// Record appends a tick record.
func (st *SimulationTrace) Record(record TickRecord) {
	st.Records = append(st.Records, record)
}

// RecordJob appends a job-level event.
func (st *SimulationTrace) RecordJob(clock int64, kind EventKind, jobID int, value int64) {
	st.Record(TickRecord{Clock: clock, Kind: kind, JobID: jobID, Value: value})
}

// RecordCPU appends a CPU-level event.
func (st *SimulationTrace) RecordCPU(clock int64, kind EventKind, value int64) {
	st.Record(TickRecord{Clock: clock, Kind: kind, JobID: -1, Value: value})
}

// WriteLog renders the records as a run log, one line per record.
// Output depends only on the records, so identical runs produce identical bytes.
// Safe for a nil trace (writes nothing).
func (st *SimulationTrace) WriteLog(w io.Writer) error {
	if st == nil {
		return nil
	}
	for _, r := range st.Records {
		if _, err := fmt.Fprintf(w, "%s [tick %03d] %s\n", st.Config.Policy, r.Clock, describe(r)); err != nil {
			return fmt.Errorf("writing run log: %w", err)
		}
	}
	return nil
}

func describe(r TickRecord) string {
	switch r.Kind {
	case EventAdmit:
		return fmt.Sprintf("job %d: runnable", r.JobID)
	case EventComplete:
		return fmt.Sprintf("job %d: done", r.JobID)
	case EventPreempt:
		return fmt.Sprintf("job %d: preempted, %d left", r.JobID, r.Value)
	case EventDispatch:
		return fmt.Sprintf("job %d: start! end time %d", r.JobID, r.Value)
	case EventIdle:
		return "nothing to run"
	case EventAllDone:
		return "ALL JOBS DONE"
	case EventHorizon:
		return fmt.Sprintf("horizon reached, %d jobs not done", r.Value)
	default:
		return string(r.Kind)
	}
}
