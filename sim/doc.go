// Package sim provides the tick-based single-CPU scheduling simulator.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - job.go: Job lifecycle (unknown → runnable → running → done) and the job table
//   - scheduler.go: the Policy interface and the FIFO, SJF, BJF, STCF and RR policies
//   - simulator.go: the tick loop and the fixed per-tick order
//     (admission, completion, decision, dispatch/preemption)
//
// # Architecture
//
// Policies only read the job table and return a table index (or NoChoice);
// the Simulator applies every state change. Each named-policy run works on
// its own deep copy of the table, so runs never influence each other.
//
// Sub-packages:
//   - sim/workload/: job-file loaders and the seeded job generator
//   - sim/trace/: per-tick decision trace and its summary
//
// Metrics (metrics.go) and reporting (report.go) turn a finished Result into
// the per-job run log, JSON/YAML reports and the cross-policy comparison.
package sim
