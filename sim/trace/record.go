// Package trace provides per-tick decision recording for scheduling runs.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// EventKind identifies what happened to a job (or the CPU) at a tick.
type EventKind string

const (
	EventAdmit    EventKind = "admit"    // job arrived and became runnable
	EventComplete EventKind = "complete" // running job finished
	EventPreempt  EventKind = "preempt"  // running job lost the CPU
	EventDispatch EventKind = "dispatch" // job was given the CPU
	EventIdle     EventKind = "idle"     // no job holds the CPU after dispatch
	EventAllDone  EventKind = "all-done" // loop terminated early
	EventHorizon  EventKind = "horizon"  // loop ran out of ticks
)

// TickRecord captures one event of a simulation run.
type TickRecord struct {
	Clock int64
	Kind  EventKind
	JobID int   // -1 for CPU-level events (idle, all-done, horizon)
	Value int64 // dispatch: projected end tick; preempt: time left; horizon: incomplete job count
}
