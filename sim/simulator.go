// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/cpusched/sim/trace"
)

// Simulator is the core object that holds simulation time, the job table and the tick loop.
// It is the only component that mutates Job state.
type Simulator struct {
	Clock   int64
	Horizon int64
	// Jobs is owned exclusively by this simulator for the duration of the run.
	Jobs   JobTable
	Policy Policy
	// Trace is nil unless the config asks for decision tracing.
	Trace *trace.SimulationTrace
	// table index of the job holding the CPU, -1 when idle
	running int
}

// Result is what a finished run hands to reporting.
type Result struct {
	Policy    string
	Jobs      JobTable
	EndTick   int64 // tick at which the loop stopped
	Completed bool  // false when the horizon ran out before every job was done
	Trace     *trace.SimulationTrace
}

// NewSimulator builds a simulator over jobs. The simulator takes ownership of
// the table; pass a Clone when the caller keeps using it.
func NewSimulator(cfg SimConfig, policy Policy, jobs JobTable) *Simulator {
	s := &Simulator{
		Clock:   0,
		Horizon: cfg.Horizon,
		Jobs:    jobs,
		Policy:  policy,
		running: jobs.Running(),
	}
	if cfg.TraceLevel == trace.TraceLevelDecisions {
		s.Trace = trace.NewSimulationTrace(trace.TraceConfig{Level: cfg.TraceLevel, Policy: policy.Name()})
	}
	return s
}

// Run advances the clock one tick at a time until every job is done or the
// horizon is exhausted.
func (sim *Simulator) Run() *Result {
	completed := false
	for sim.Clock = 0; sim.Clock < sim.Horizon; sim.Clock++ {
		if sim.Step() {
			completed = true
			break
		}
	}
	if completed {
		logrus.Infof("[tick %07d] %s: all jobs done", sim.Clock, sim.Policy.Name())
		sim.recordCPU(trace.EventAllDone, 0)
	} else {
		pending := len(sim.Jobs) - sim.countDone()
		logrus.Warnf("[tick %07d] %s: horizon reached with %d job(s) not done", sim.Clock, sim.Policy.Name(), pending)
		sim.recordCPU(trace.EventHorizon, int64(pending))
	}
	return &Result{
		Policy:    sim.Policy.Name(),
		Jobs:      sim.Jobs,
		EndTick:   sim.Clock,
		Completed: completed,
		Trace:     sim.Trace,
	}
}

// Step executes one tick in fixed order: admission, completion, decision,
// dispatch. Returns true when every job is done afterwards.
func (sim *Simulator) Step() bool {
	logrus.Tracef("[tick %07d] %s", sim.Clock, sim.Policy.Name())
	sim.admitArrivals()
	sim.completeRunning()
	choice := sim.Policy.Choose(sim.Jobs, sim.Clock)
	sim.applyChoice(choice)
	done := sim.Jobs.AllDone()
	if sim.running == -1 && !done {
		logrus.Debugf("[tick %07d] nothing to run", sim.Clock)
		sim.recordCPU(trace.EventIdle, 0)
	}
	return done
}

func (sim *Simulator) admitArrivals() {
	for _, j := range sim.Jobs {
		if j.Status == StatusUnknown && j.ArrivalTime == sim.Clock {
			j.admit()
			logrus.Debugf("[tick %07d] job %d: runnable", sim.Clock, j.ID)
			sim.recordJob(trace.EventAdmit, j.ID, 0)
		}
	}
}

func (sim *Simulator) completeRunning() {
	if sim.running == -1 {
		return
	}
	j := sim.Jobs[sim.running]
	if j.EndEstimate > sim.Clock {
		return
	}
	j.complete(sim.Clock)
	logrus.Debugf("[tick %07d] job %d: done", sim.Clock, j.ID)
	sim.recordJob(trace.EventComplete, j.ID, 0)
	sim.running = -1
}

// applyChoice preempts the incumbent (if any) and dispatches the chosen job.
// Choices that would break the state machine are dropped with a warning.
func (sim *Simulator) applyChoice(choice int) {
	if choice == NoChoice || choice == sim.running {
		return
	}
	if choice < 0 || choice >= len(sim.Jobs) {
		logrus.Warnf("[tick %07d] %s chose out-of-range index %d; ignored", sim.Clock, sim.Policy.Name(), choice)
		return
	}
	next := sim.Jobs[choice]
	if next.Status != StatusRunnable {
		logrus.Warnf("[tick %07d] %s chose job %d in state %s; ignored", sim.Clock, sim.Policy.Name(), next.ID, next.Status)
		return
	}
	if sim.running != -1 {
		cur := sim.Jobs[sim.running]
		cur.preempt(sim.Clock)
		logrus.Debugf("[tick %07d] job %d: preempted, %d left", sim.Clock, cur.ID, cur.TimeLeft)
		sim.recordJob(trace.EventPreempt, cur.ID, cur.TimeLeft)
	}
	next.dispatch(sim.Clock)
	sim.running = choice
	logrus.Debugf("[tick %07d] job %d: start! end time %d", sim.Clock, next.ID, next.EndEstimate)
	sim.recordJob(trace.EventDispatch, next.ID, next.EndEstimate)
}

func (sim *Simulator) countDone() int {
	n := 0
	for _, j := range sim.Jobs {
		if j.Status == StatusDone {
			n++
		}
	}
	return n
}

func (sim *Simulator) recordJob(kind trace.EventKind, jobID int, value int64) {
	if sim.Trace != nil {
		sim.Trace.RecordJob(sim.Clock, kind, jobID, value)
	}
}

func (sim *Simulator) recordCPU(kind trace.EventKind, value int64) {
	if sim.Trace != nil {
		sim.Trace.RecordCPU(sim.Clock, kind, value)
	}
}

// Run simulates one named policy against an independent copy of jobs.
// Errors are configuration errors detected before any tick runs; an
// unfinished simulation is reported through Result.Completed.
func Run(policyName string, jobs JobTable, cfg SimConfig) (*Result, error) {
	if !IsValidPolicy(policyName) {
		return nil, fmt.Errorf("unknown policy %q", policyName)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}
	policy := NewPolicy(policyName, PolicyOptions{Quantum: cfg.Quantum})
	return NewSimulator(cfg, policy, jobs.Clone()).Run(), nil
}

// RunAll runs each named policy in order, each against its own copy of jobs.
func RunAll(policyNames []string, jobs JobTable, cfg SimConfig) ([]*Result, error) {
	results := make([]*Result, 0, len(policyNames))
	for _, name := range policyNames {
		res, err := Run(name, jobs, cfg)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}
