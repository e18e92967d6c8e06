package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	Admissions       int
	Completions      int
	Dispatches       int
	Preemptions      int
	IdleTicks        int
	DispatchesPerJob map[int]int // job ID → number of times it was given the CPU
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		DispatchesPerJob: make(map[int]int),
	}
	if st == nil {
		return summary
	}

	for _, r := range st.Records {
		switch r.Kind {
		case EventAdmit:
			summary.Admissions++
		case EventComplete:
			summary.Completions++
		case EventDispatch:
			summary.Dispatches++
			summary.DispatchesPerJob[r.JobID]++
		case EventPreempt:
			summary.Preemptions++
		case EventIdle:
			summary.IdleTicks++
		}
	}
	return summary
}
