package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by WriteReport.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// validOutputFormats maps accepted report format strings.
var validOutputFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
	FormatYAML: true,
	"":         true, // empty defaults to text
}

// IsValidOutputFormat returns true if format is a recognized report format.
func IsValidOutputFormat(format string) bool {
	return validOutputFormats[format]
}

const undefinedField = "--"

// WriteRunLog prints the per-job run log of one policy run:
//
//	Run log for FIFO:
//	Job id 01 start/finish 00 - 03, total 03, response 00
//
// Jobs that did not finish print "--" for undefined values and are marked incomplete.
func WriteRunLog(w io.Writer, m *Metrics) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Run log for %s:\n", m.Policy)
	for _, j := range m.Jobs {
		if j.Done {
			fmt.Fprintf(&b, "Job id %02d start/finish %02d - %02d, total %02d, response %02d\n",
				j.ID, j.StartTime, j.EndTime, *j.Turnaround, *j.Response)
			continue
		}
		start := undefinedField
		if j.StartTime >= 0 {
			start = fmt.Sprintf("%02d", j.StartTime)
		}
		fmt.Fprintf(&b, "Job id %02d start/finish %s - %s, total %s, response %s (incomplete)\n",
			j.ID, start, undefinedField, undefinedField, undefinedField)
	}
	if !m.Completed {
		fmt.Fprintf(&b, "Simulation incomplete: %d job(s) not done by tick %d\n", m.IncompleteJobs, m.EndTick)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteReport writes the metrics of all runs in the requested format.
// Text output is the run log of each policy followed by its averages.
func WriteReport(w io.Writer, runs []*Metrics, format string) error {
	switch format {
	case "", FormatText:
		for _, m := range runs {
			if err := WriteRunLog(w, m); err != nil {
				return fmt.Errorf("writing run log: %w", err)
			}
			if _, err := fmt.Fprintf(w, "Average turnaround %.2f, average response %.2f\n\n",
				m.MeanTurnaround, m.MeanResponse); err != nil {
				return fmt.Errorf("writing averages: %w", err)
			}
		}
		return nil
	case FormatJSON:
		data, err := json.MarshalIndent(runs, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling report: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(runs); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// WriteComparison prints one row of aggregates per policy run.
func WriteComparison(w io.Writer, runs []*Metrics) error {
	var b strings.Builder
	b.WriteString("=== Policy Comparison ===\n")
	fmt.Fprintf(&b, "%-6s %6s %10s %10s %10s %10s %9s\n",
		"policy", "done", "avg_turn", "p90_turn", "avg_resp", "p90_resp", "makespan")
	for _, m := range runs {
		fmt.Fprintf(&b, "%-6s %3d/%-2d %10.2f %10.2f %10.2f %10.2f %9d\n",
			m.Policy, m.DoneJobs, len(m.Jobs),
			m.MeanTurnaround, m.P90Turnaround, m.MeanResponse, m.P90Response, m.Makespan)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
