package workload

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/cpusched/sim"
)

// JobSpec is the YAML form of a job list:
//
//	version: "1"
//	jobs:
//	  - {id: 1, arrival: 0, duration: 10}
type JobSpec struct {
	Version string     `yaml:"version"`
	Jobs    []JobEntry `yaml:"jobs"`
}

// JobEntry describes one job in a JobSpec.
type JobEntry struct {
	ID       int   `yaml:"id"`
	Arrival  int64 `yaml:"arrival"`
	Duration int64 `yaml:"duration"`
}

// LoadJobSpec reads and parses a YAML job spec with strict field checking.
func LoadJobSpec(path string) (*JobSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job spec: %w", err)
	}
	return ParseJobSpec(data)
}

// ParseJobSpec parses YAML bytes into a JobSpec. Unknown fields are errors.
func ParseJobSpec(data []byte) (*JobSpec, error) {
	var spec JobSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing job spec: %w", err)
	}
	return &spec, nil
}

// Validate checks every entry and rejects duplicate ids.
func (s *JobSpec) Validate() error {
	if s.Version != "" && s.Version != "1" {
		return fmt.Errorf("unsupported job spec version %q", s.Version)
	}
	seen := make(map[int]bool, len(s.Jobs))
	for i, e := range s.Jobs {
		if _, err := newJob(e.ID, e.Arrival, e.Duration); err != nil {
			return fmt.Errorf("jobs[%d]: %w", i, err)
		}
		if seen[e.ID] {
			return fmt.Errorf("jobs[%d]: duplicate id %d", i, e.ID)
		}
		seen[e.ID] = true
	}
	return nil
}

// Table validates the spec and builds a job table in document order,
// keeping at most maxJobs entries (maxJobs <= 0 means no cap).
func (s *JobSpec) Table(maxJobs int) (sim.JobTable, error) {
	entries := s.Jobs
	if maxJobs > 0 && len(entries) > maxJobs {
		logrus.Debugf("job spec truncated from %d to %d jobs", len(entries), maxJobs)
		entries = entries[:maxJobs]
	}
	trimmed := JobSpec{Version: s.Version, Jobs: entries}
	if err := trimmed.Validate(); err != nil {
		return nil, fmt.Errorf("invalid job spec: %w", err)
	}
	jobs := make(sim.JobTable, len(entries))
	for i, e := range entries {
		jobs[i] = sim.NewJob(e.ID, e.Arrival, e.Duration)
	}
	return jobs, nil
}
