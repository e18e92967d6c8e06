package sim

import "fmt"

// newTestTable builds a job table from (id, arrival, duration) triples in
// table order, all in the unknown state.
func newTestTable(triples ...[3]int64) JobTable {
	t := make(JobTable, len(triples))
	for i, tr := range triples {
		t[i] = NewJob(int(tr[0]), tr[1], tr[2])
	}
	return t
}

// runnable returns an admitted job, as the driver would leave it.
func runnable(id int, arrival, duration int64) *Job {
	j := NewJob(id, arrival, duration)
	j.admit()
	return j
}

// running returns a job dispatched at tick.
func running(id int, arrival, duration, tick int64) *Job {
	j := runnable(id, arrival, duration)
	j.dispatch(tick)
	return j
}

// invariantPolicy wraps a policy and checks table invariants every time the
// simulator asks for a decision.
type invariantPolicy struct {
	inner      Policy
	violations []string
	ticks      int
}

func (p *invariantPolicy) Name() string { return p.inner.Name() }

func (p *invariantPolicy) Choose(table JobTable, tick int64) int {
	p.ticks++
	if n := table.CountRunning(); n > 1 {
		p.violations = append(p.violations, fmtViolation(tick, "more than one running job", n))
	}
	for _, j := range table {
		if j.Status == StatusUnknown {
			continue
		}
		if j.TimeRunning+j.TimeLeft != j.Duration {
			p.violations = append(p.violations, fmtViolation(tick, "time accounting broken for job", j.ID))
		}
		if j.TimeLeft < 0 {
			p.violations = append(p.violations, fmtViolation(tick, "negative time left for job", j.ID))
		}
	}
	return p.inner.Choose(table, tick)
}

// fixedPolicy always returns the same decision.
type fixedPolicy struct{ choice int }

func (p *fixedPolicy) Name() string                   { return "FIXED" }
func (p *fixedPolicy) Choose(_ JobTable, _ int64) int { return p.choice }

func fmtViolation(tick int64, what string, v int) string {
	return fmt.Sprintf("tick %d: %s %d", tick, what, v)
}
