// Defines the Job struct that models one unit of CPU-bound work in the simulation.
// Tracks arrival, duration, progress and the start/end ticks used for turnaround/response.

package sim

import (
	"fmt"
)

// JobStatus represents the lifecycle state of a job.
//
//	unknown -> runnable -> running -> done
//	              ^           |
//	              +-----------+  (preemption)
type JobStatus string

const (
	StatusUnknown  JobStatus = "unknown"
	StatusRunnable JobStatus = "runnable"
	StatusRunning  JobStatus = "running"
	StatusDone     JobStatus = "done"
)

// Job models a single job's lifecycle in the simulation.
// Only the Simulator mutates a Job; policies read it.
type Job struct {
	ID          int   // Unique identifier, stable across runs
	ArrivalTime int64 // Tick at which the job becomes runnable
	Duration    int64 // Total CPU ticks required

	Status          JobStatus
	StartTime       int64 // Tick of first dispatch, -1 until set
	EndTime         int64 // Tick of completion, -1 until set
	TimeRunning     int64 // Ticks executed, updated on preemption and completion
	TimeLeft        int64 // Duration - TimeRunning, updated on preemption and completion
	LastStartedTime int64 // Tick of the most recent dispatch, -1 before the first one
	EndEstimate     int64 // Projected completion tick while running (LastStartedTime + TimeLeft), -1 otherwise
}

// NewJob creates a Job in the unknown state with all scheduling ticks unset.
func NewJob(id int, arrivalTime, duration int64) *Job {
	return &Job{
		ID:              id,
		ArrivalTime:     arrivalTime,
		Duration:        duration,
		Status:          StatusUnknown,
		StartTime:       -1,
		EndTime:         -1,
		LastStartedTime: -1,
		EndEstimate:     -1,
	}
}

// admit moves an arrived job to runnable and resets its progress counters.
func (j *Job) admit() {
	j.Status = StatusRunnable
	j.TimeRunning = 0
	j.TimeLeft = j.Duration
	j.LastStartedTime = -1
}

// dispatch gives the CPU to the job starting at tick.
func (j *Job) dispatch(tick int64) {
	if j.StartTime == -1 {
		j.StartTime = tick
	}
	j.Status = StatusRunning
	j.LastStartedTime = tick
	j.EndEstimate = tick + j.TimeLeft
}

// preempt takes the CPU away at tick and settles the progress made since the
// last dispatch.
func (j *Job) preempt(tick int64) {
	j.TimeRunning += tick - j.LastStartedTime
	j.TimeLeft = j.Duration - j.TimeRunning
	j.Status = StatusRunnable
	j.EndEstimate = -1
}

// complete marks the job done at tick. Done is terminal.
func (j *Job) complete(tick int64) {
	j.Status = StatusDone
	j.EndTime = tick
	j.TimeRunning = j.Duration
	j.TimeLeft = 0
	j.EndEstimate = -1
}

// This method returns a human-readable string representation of a Job.
func (j Job) String() string {
	return fmt.Sprintf("Job: (ID: %d, Status: %s, ArrivalTime: %d, Duration: %d, TimeLeft: %d)",
		j.ID, j.Status, j.ArrivalTime, j.Duration, j.TimeLeft)
}

// JobTable is the ordered collection of jobs for one simulation run.
// Table order (not ID) is the tie-break order used by every policy.
type JobTable []*Job

// Clone returns a deep copy so that independent runs never share Job records.
func (t JobTable) Clone() JobTable {
	out := make(JobTable, len(t))
	for i, j := range t {
		c := *j
		out[i] = &c
	}
	return out
}

// Running returns the table index of the running job, or -1 if the CPU is idle.
func (t JobTable) Running() int {
	for i, j := range t {
		if j.Status == StatusRunning {
			return i
		}
	}
	return -1
}

// CountRunning returns how many jobs are in the running state.
func (t JobTable) CountRunning() int {
	n := 0
	for _, j := range t {
		if j.Status == StatusRunning {
			n++
		}
	}
	return n
}

// AllDone reports whether every job has completed. An empty table is done.
func (t JobTable) AllDone() bool {
	for _, j := range t {
		if j.Status != StatusDone {
			return false
		}
	}
	return true
}

// IDs returns job IDs in table order.
func (t JobTable) IDs() []int {
	ids := make([]int, len(t))
	for i, j := range t {
		ids[i] = j.ID
	}
	return ids
}
