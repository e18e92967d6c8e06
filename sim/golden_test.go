package sim_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/cpusched/sim"
	"github.com/inference-sim/cpusched/sim/internal/testutil"
	"github.com/inference-sim/cpusched/sim/workload"
)

// TestGoldenDataset replays every case in testdata/goldendataset.json and
// compares start/end ticks per job and the aggregate means.
func TestGoldenDataset(t *testing.T) {
	dataset := testutil.LoadGoldenDataset(t)
	require.NotEmpty(t, dataset.Tests)

	for _, tc := range dataset.Tests {
		t.Run(tc.Name, func(t *testing.T) {
			jobs, err := workload.LoadJobs(filepath.Join(testutil.TestdataDir(t), tc.JobsFile), workload.DefaultMaxJobs)
			require.NoError(t, err)

			cfg := sim.SimConfig{Horizon: tc.Horizon, Quantum: tc.Quantum}
			res, err := sim.Run(tc.Policy, jobs, cfg)
			require.NoError(t, err)
			m := sim.NewMetrics(res)

			assert.Equal(t, tc.Expected.Completed, res.Completed)
			assert.Equal(t, tc.Expected.EndTick, res.EndTick)
			require.Len(t, m.Jobs, len(tc.Expected.Jobs))
			for i, want := range tc.Expected.Jobs {
				got := m.Jobs[i]
				assert.Equal(t, want.ID, got.ID)
				assert.Equal(t, want.Start, got.StartTime, "job %d start", want.ID)
				assert.Equal(t, want.End, got.EndTime, "job %d end", want.ID)
			}
			testutil.AssertFloat64Equal(t, "mean_turnaround", tc.Expected.MeanTurnaround, m.MeanTurnaround, 1e-9)
			testutil.AssertFloat64Equal(t, "mean_response", tc.Expected.MeanResponse, m.MeanResponse, 1e-9)
		})
	}
}

// TestGoldenDataset_YAMLMatchesTriples checks that both job file formats
// produce the same run.
func TestGoldenDataset_YAMLMatchesTriples(t *testing.T) {
	dir := testutil.TestdataDir(t)
	fromDat, err := workload.LoadJobs(filepath.Join(dir, "jobs.dat"), workload.DefaultMaxJobs)
	require.NoError(t, err)
	fromYAML, err := workload.LoadJobs(filepath.Join(dir, "jobs.yaml"), workload.DefaultMaxJobs)
	require.NoError(t, err)

	for _, name := range sim.PolicyNames() {
		a, err := sim.Run(name, fromDat, sim.DefaultSimConfig())
		require.NoError(t, err)
		b, err := sim.Run(name, fromYAML, sim.DefaultSimConfig())
		require.NoError(t, err)
		assert.Equal(t, sim.NewMetrics(a), sim.NewMetrics(b), name)
	}
}
