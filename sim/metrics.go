// Computes per-job and per-run timing metrics from a finished simulation:
// turnaround (end - arrival) and response (first dispatch - arrival).

package sim

// JobMetrics holds the timing of one job after a run.
// Turnaround and Response are nil when the job did not finish within the
// horizon; they are undefined rather than zero.
type JobMetrics struct {
	ID          int    `json:"id" yaml:"id"`
	ArrivalTime int64  `json:"arrival_time" yaml:"arrival_time"`
	Duration    int64  `json:"duration" yaml:"duration"`
	StartTime   int64  `json:"start_time" yaml:"start_time"` // -1 if never dispatched
	EndTime     int64  `json:"end_time" yaml:"end_time"`     // -1 if not done
	Turnaround  *int64 `json:"turnaround" yaml:"turnaround"`
	Response    *int64 `json:"response" yaml:"response"`
	Done        bool   `json:"done" yaml:"done"`
}

// Metrics aggregates the outcome of one policy run for reporting.
// Aggregates cover done jobs only.
type Metrics struct {
	Policy         string       `json:"policy" yaml:"policy"`
	Completed      bool         `json:"completed" yaml:"completed"`
	EndTick        int64        `json:"end_tick" yaml:"end_tick"`
	Jobs           []JobMetrics `json:"jobs" yaml:"jobs"`
	DoneJobs       int          `json:"done_jobs" yaml:"done_jobs"`
	IncompleteJobs int          `json:"incomplete_jobs" yaml:"incomplete_jobs"`
	MeanTurnaround float64      `json:"mean_turnaround" yaml:"mean_turnaround"`
	MeanResponse   float64      `json:"mean_response" yaml:"mean_response"`
	P90Turnaround  float64      `json:"p90_turnaround" yaml:"p90_turnaround"`
	P90Response    float64      `json:"p90_response" yaml:"p90_response"`
	Makespan       int64        `json:"makespan" yaml:"makespan"` // latest end tick among done jobs
}

// NewJobMetrics computes the metrics of a single job from its final state.
func NewJobMetrics(j *Job) JobMetrics {
	m := JobMetrics{
		ID:          j.ID,
		ArrivalTime: j.ArrivalTime,
		Duration:    j.Duration,
		StartTime:   j.StartTime,
		EndTime:     j.EndTime,
		Done:        j.Status == StatusDone,
	}
	if m.Done {
		turnaround := j.EndTime - j.ArrivalTime
		response := j.StartTime - j.ArrivalTime
		m.Turnaround = &turnaround
		m.Response = &response
	}
	return m
}

// NewMetrics computes metrics for every job of a finished run, in table order.
func NewMetrics(res *Result) *Metrics {
	m := &Metrics{
		Policy:    res.Policy,
		Completed: res.Completed,
		EndTick:   res.EndTick,
		Jobs:      make([]JobMetrics, 0, len(res.Jobs)),
	}
	turnarounds := make([]int64, 0, len(res.Jobs))
	responses := make([]int64, 0, len(res.Jobs))
	for _, j := range res.Jobs {
		jm := NewJobMetrics(j)
		m.Jobs = append(m.Jobs, jm)
		if !jm.Done {
			m.IncompleteJobs++
			continue
		}
		m.DoneJobs++
		turnarounds = append(turnarounds, *jm.Turnaround)
		responses = append(responses, *jm.Response)
		m.Makespan = max(m.Makespan, jm.EndTime)
	}
	m.MeanTurnaround = CalculateMean(turnarounds)
	m.MeanResponse = CalculateMean(responses)
	m.P90Turnaround = CalculatePercentile(turnarounds, 90)
	m.P90Response = CalculatePercentile(responses, 90)
	return m
}
