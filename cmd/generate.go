package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/cpusched/sim/workload"
)

var genConfig = workload.DefaultGenerateConfig()

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic job file",
	Long:  "Generate a seeded synthetic job list in the 'id arrival duration' format. Output is written to stdout for piping.",
	Run: func(cmd *cobra.Command, args []string) {
		jobs, err := workload.Generate(genConfig)
		if err != nil {
			logrus.Fatalf("Job generation failed: %v", err)
		}
		if err := workload.WriteJobs(os.Stdout, jobs); err != nil {
			logrus.Fatalf("Failed to write jobs: %v", err)
		}
	},
}

func init() {
	generateCmd.Flags().IntVar(&genConfig.Count, "count", genConfig.Count, "Number of jobs")
	generateCmd.Flags().Int64Var(&genConfig.Seed, "seed", genConfig.Seed, "Seed for random job generation")
	generateCmd.Flags().Int64Var(&genConfig.MaxArrival, "max-arrival", genConfig.MaxArrival, "Latest arrival tick")
	generateCmd.Flags().Int64Var(&genConfig.MinDuration, "min-duration", genConfig.MinDuration, "Shortest job duration (in ticks)")
	generateCmd.Flags().Int64Var(&genConfig.MaxDuration, "max-duration", genConfig.MaxDuration, "Longest job duration (in ticks)")
	rootCmd.AddCommand(generateCmd)
}
