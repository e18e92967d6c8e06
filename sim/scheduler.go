package sim

import (
	"fmt"
	"strings"
)

// NoChoice is returned by a Policy that wants the CPU left as it is: the
// running job keeps running, or the CPU stays idle.
const NoChoice = -1

// DefaultQuantum is the round-robin time slice in ticks.
const DefaultQuantum int64 = 3

// Policy decides which job should hold the CPU at a tick.
// Choose returns a table index or NoChoice. Implementations MUST NOT modify the
// table; all state changes are applied by the Simulator.
type Policy interface {
	Name() string
	Choose(table JobTable, tick int64) int
}

// PolicyOptions carries per-run policy configuration.
type PolicyOptions struct {
	Quantum int64 // round-robin slice in ticks; <= 0 uses DefaultQuantum
}

// pickFirst scans the table in index order and returns the index of the first
// eligible job that no later job strictly beats. Equal keys never displace an
// earlier pick, so the lowest table index wins ties.
func pickFirst(table JobTable, eligible func(*Job) bool, better func(a, b *Job) bool) int {
	best := NoChoice
	for i, j := range table {
		if !eligible(j) {
			continue
		}
		if best == NoChoice || better(j, table[best]) {
			best = i
		}
	}
	return best
}

func isRunnable(j *Job) bool { return j.Status == StatusRunnable }

// FIFOPolicy runs the earliest arrival to completion.
type FIFOPolicy struct{}

func (p *FIFOPolicy) Name() string { return "FIFO" }

func (p *FIFOPolicy) Choose(table JobTable, _ int64) int {
	if table.Running() != -1 {
		return NoChoice
	}
	return pickFirst(table, isRunnable, func(a, b *Job) bool {
		return a.ArrivalTime < b.ArrivalTime
	})
}

// SJFPolicy runs the shortest job (by total duration) to completion.
// Warning: SJF can starve long jobs under sustained arrivals.
type SJFPolicy struct{}

func (p *SJFPolicy) Name() string { return "SJF" }

func (p *SJFPolicy) Choose(table JobTable, _ int64) int {
	if table.Running() != -1 {
		return NoChoice
	}
	return pickFirst(table, isRunnable, func(a, b *Job) bool {
		return a.Duration < b.Duration
	})
}

// BJFPolicy runs the biggest job first (pathological template, the inverse of SJF).
type BJFPolicy struct{}

func (p *BJFPolicy) Name() string { return "BJF" }

func (p *BJFPolicy) Choose(table JobTable, _ int64) int {
	if table.Running() != -1 {
		return NoChoice
	}
	return pickFirst(table, isRunnable, func(a, b *Job) bool {
		return a.Duration > b.Duration
	})
}

// STCFPolicy picks the job with the smallest TimeLeft every tick.
// The running job competes on its stored TimeLeft, which is only settled on
// preemption, so it still carries the value it had when dispatched. It is not
// favoured on ties: a lower-index job with equal TimeLeft preempts it.
type STCFPolicy struct{}

func (p *STCFPolicy) Name() string { return "STCF" }

func (p *STCFPolicy) Choose(table JobTable, _ int64) int {
	return pickFirst(table,
		func(j *Job) bool { return j.Status == StatusRunnable || j.Status == StatusRunning },
		func(a, b *Job) bool { return a.TimeLeft < b.TimeLeft },
	)
}

// RoundRobinPolicy rotates the CPU through runnable jobs in table order,
// switching only after the running job has held it for Quantum ticks.
type RoundRobinPolicy struct {
	Quantum int64
}

func (p *RoundRobinPolicy) Name() string { return "RR" }

func (p *RoundRobinPolicy) Choose(table JobTable, tick int64) int {
	cur := table.Running()
	if cur == -1 {
		return pickFirst(table, isRunnable, func(_, _ *Job) bool { return false })
	}
	if tick-table[cur].LastStartedTime < p.Quantum {
		return NoChoice
	}
	n := len(table)
	for k := 1; k < n; k++ {
		i := (cur + k) % n
		if table[i].Status == StatusRunnable {
			return i
		}
	}
	// Nobody else is eligible; the running job continues by default.
	return NoChoice
}

// policyInfo describes a registered policy for listings.
type policyInfo struct {
	name       string
	preemptive bool
	summary    string
}

// registeredPolicies is in canonical run order.
var registeredPolicies = []policyInfo{
	{"FIFO", false, "earliest arrival first"},
	{"SJF", false, "shortest duration first"},
	{"BJF", false, "biggest duration first"},
	{"STCF", true, "shortest time to completion, re-evaluated every tick"},
	{"RR", true, "round robin in table order, fixed quantum"},
}

// PolicyNames returns the policy names in canonical run order.
func PolicyNames() []string {
	names := make([]string, len(registeredPolicies))
	for i, p := range registeredPolicies {
		names[i] = p.name
	}
	return names
}

// IsPreemptive reports whether the named policy may take the CPU from a running job.
func IsPreemptive(name string) bool {
	for _, p := range registeredPolicies {
		if p.name == canonicalPolicyName(name) {
			return p.preemptive
		}
	}
	return false
}

// PolicySummary returns a one-line description of the named policy, or "" if unknown.
func PolicySummary(name string) string {
	for _, p := range registeredPolicies {
		if p.name == canonicalPolicyName(name) {
			return p.summary
		}
	}
	return ""
}

// IsValidPolicy returns true if name (case-insensitive) is a known policy.
func IsValidPolicy(name string) bool {
	return PolicySummary(name) != ""
}

func canonicalPolicyName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// NewPolicy creates a Policy by name (case-insensitive).
// Valid names: "FIFO", "SJF", "BJF", "STCF", "RR".
// Panics on unrecognized names.
func NewPolicy(name string, opts PolicyOptions) Policy {
	if !IsValidPolicy(name) {
		panic(fmt.Sprintf("unknown policy %q", name))
	}
	switch canonicalPolicyName(name) {
	case "FIFO":
		return &FIFOPolicy{}
	case "SJF":
		return &SJFPolicy{}
	case "BJF":
		return &BJFPolicy{}
	case "STCF":
		return &STCFPolicy{}
	case "RR":
		quantum := opts.Quantum
		if quantum <= 0 {
			quantum = DefaultQuantum
		}
		return &RoundRobinPolicy{Quantum: quantum}
	default:
		panic(fmt.Sprintf("unhandled policy %q", name))
	}
}
