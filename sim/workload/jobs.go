package workload

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/cpusched/sim"
)

const (
	// DefaultJobsFile is the job list read when no path is given.
	DefaultJobsFile = "jobs.dat"
	// DefaultMaxJobs caps the number of jobs loaded; extra jobs are dropped.
	DefaultMaxJobs = 100
)

// ParseJobs reads whitespace-separated "id arrival duration" triples until EOF.
// At most maxJobs jobs are kept (maxJobs <= 0 means no cap); anything after the
// cap is not read. Input order becomes table order.
func ParseJobs(r io.Reader, maxJobs int) (sim.JobTable, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	jobs := make(sim.JobTable, 0)
	seen := make(map[int]bool)
	var triple [3]int64
	n := 0
	token := 0
	for sc.Scan() {
		if maxJobs > 0 && len(jobs) >= maxJobs {
			logrus.Debugf("job list truncated at %d jobs", maxJobs)
			break
		}
		token++
		v, err := strconv.ParseInt(sc.Text(), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", token, err)
		}
		triple[n] = v
		n++
		if n < 3 {
			continue
		}
		n = 0
		job, err := newJob(int(triple[0]), triple[1], triple[2])
		if err != nil {
			return nil, fmt.Errorf("job %d: %w", len(jobs)+1, err)
		}
		if seen[job.ID] {
			return nil, fmt.Errorf("job %d: duplicate id %d", len(jobs)+1, job.ID)
		}
		seen[job.ID] = true
		jobs = append(jobs, job)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading jobs: %w", err)
	}
	if n != 0 {
		return nil, fmt.Errorf("incomplete job entry after %d jobs: got %d of 3 values", len(jobs), n)
	}
	return jobs, nil
}

// LoadJobs reads a job list from path. Files ending in .yaml or .yml are
// parsed as a JobSpec; everything else as whitespace-separated triples.
func LoadJobs(path string, maxJobs int) (sim.JobTable, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		spec, err := LoadJobSpec(path)
		if err != nil {
			return nil, err
		}
		return spec.Table(maxJobs)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening job file: %w", err)
	}
	defer f.Close()
	jobs, err := ParseJobs(f, maxJobs)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	logrus.Debugf("loaded %d jobs from %s", len(jobs), path)
	return jobs, nil
}

// newJob validates the job specs the simulator relies on.
func newJob(id int, arrival, duration int64) (*sim.Job, error) {
	if arrival < 0 {
		return nil, fmt.Errorf("arrival time must be non-negative, got %d", arrival)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %d", duration)
	}
	return sim.NewJob(id, arrival, duration), nil
}
