package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/cpusched/sim"
)

var policiesCmd = &cobra.Command{
	Use:   "policies",
	Short: "List the available scheduling policies",
	Run: func(cmd *cobra.Command, args []string) {
		if err := writePolicies(os.Stdout); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

func writePolicies(w io.Writer) error {
	for _, name := range sim.PolicyNames() {
		kind := "non-preemptive"
		if sim.IsPreemptive(name) {
			kind = "preemptive"
		}
		if _, err := fmt.Fprintf(w, "%-5s %-15s %s\n", name, kind, sim.PolicySummary(name)); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(policiesCmd)
}
