package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/puzzlebench/connbench/internal/reporting"
	"github.com/puzzlebench/connbench/internal/statistics"
)

func newCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <detail1.csv> <detail2.csv>",
		Short: "Compare two detail CSVs from separate evaluation runs",
		Long: `Compare per-model average scores between two detail CSVs.

Shows the score delta and normalized gain per model, for models present in
either file. Useful after re-running an evaluation with changed extraction
options or a new prediction set.`,
		Args: cobra.ExactArgs(2),
		RunE: runCompare,
	}
	return cmd
}

// modelDelta holds the per-model comparison between two runs.
type modelDelta struct {
	model    string
	mean     [2]float64
	puzzles  [2]int
	delta    float64
	normGain float64
}

func runCompare(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	before, err := reporting.LoadDetailScores(args[0])
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}
	after, err := reporting.LoadDetailScores(args[1])
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[1], err)
	}

	modelSet := make(map[string]bool)
	for m := range before {
		modelSet[m] = true
	}
	for m := range after {
		modelSet[m] = true
	}
	names := make([]string, 0, len(modelSet))
	for m := range modelSet {
		names = append(names, m)
	}
	sort.Strings(names)

	deltas := make([]modelDelta, 0, len(names))
	for _, m := range names {
		d := modelDelta{model: m}
		d.mean[0] = statistics.Mean(before[m])
		d.mean[1] = statistics.Mean(after[m])
		d.puzzles[0] = len(before[m])
		d.puzzles[1] = len(after[m])
		d.delta = d.mean[1] - d.mean[0]
		d.normGain = statistics.NormalizedGain(d.mean[0], d.mean[1])
		deltas = append(deltas, d)
	}

	printCompareTable(w, args, deltas)
	return nil
}

//nolint:errcheck
func printCompareTable(w writer, files []string, deltas []modelDelta) {
	fmt.Fprintf(w, "Comparing %s → %s\n\n", files[0], files[1])

	nameWidth := len("Model")
	for _, d := range deltas {
		if len(d.model) > nameWidth {
			nameWidth = len(d.model)
		}
	}

	fmt.Fprintf(w, "%s  %-14s  %-14s  %-8s  %s\n",
		padRight("Model", nameWidth), "Before", "After", "Delta", "Norm. gain")
	for _, d := range deltas {
		fmt.Fprintf(w, "%s  %-14s  %-14s  %+-8.4f  %+.4f\n",
			padRight(d.model, nameWidth),
			fmt.Sprintf("%.4f (n=%d)", d.mean[0], d.puzzles[0]),
			fmt.Sprintf("%.4f (n=%d)", d.mean[1], d.puzzles[1]),
			d.delta,
			d.normGain)
	}
}
