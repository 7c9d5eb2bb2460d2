package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/puzzlebench/connbench/internal/dataset"
	"github.com/puzzlebench/connbench/internal/evaluation"
	"github.com/puzzlebench/connbench/internal/extract"
	"github.com/puzzlebench/connbench/internal/models"
	"github.com/puzzlebench/connbench/internal/scoring"
)

func newInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <predictions-file>",
		Short: "Show what the extractor pulls out of a prediction file",
		Long: `Show the groups extracted from each record of a prediction file, for both
the prediction text and the ground-truth text, along with the resulting score.

Useful when a new model's output format scores unexpectedly low: the extracted
groups reveal which formatting convention (if any) the cascade matched.`,
		Args: cobra.ExactArgs(1),
		RunE: runInspect,
	}

	cmd.Flags().String("puzzle", "", "Only inspect the record with this puzzle ID")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	puzzleID, err := cmd.Flags().GetString("puzzle")
	if err != nil {
		return err
	}

	records, err := dataset.Load(args[0])
	if err != nil {
		return err
	}

	extractor := extract.NewDefault()
	evaluator := evaluation.New(extractor)

	shown := 0
	for _, rec := range records {
		if puzzleID != "" && rec.ID() != puzzleID {
			continue
		}
		shown++

		result := evaluator.EvaluateRecord(rec)
		fmt.Fprintf(w, "\npuzzle %s  (score %.2f, %d/%d groups)\n", rec.ID(), result.Score, result.CorrectGroups, result.TotalGroups) //nolint:errcheck
		printGroups(w, "prediction", extractor.Extract(rec.Prediction))
		printGroups(w, "ground truth", extractor.Extract(rec.GroundTruth))
		printMatches(w, extractor.Extract(rec.Prediction), extractor.Extract(rec.GroundTruth))
	}

	if shown == 0 {
		if puzzleID != "" {
			return fmt.Errorf("no record with puzzle_id %q in %s", puzzleID, args[0])
		}
		fmt.Fprintf(w, "No records in %s\n", args[0]) //nolint:errcheck
	}
	return nil
}

//nolint:errcheck
func printGroups(w writer, label string, groups models.GroupSet) {
	fmt.Fprintf(w, "  %s: %d group(s)\n", label, len(groups))
	for i, g := range groups {
		marker := " "
		if len(g) != models.GroupSize {
			marker = "!" // wrong word count, never a match candidate
		}
		fmt.Fprintf(w, "   %s %d. %s\n", marker, i+1, strings.Join(g, ", "))
	}
}

//nolint:errcheck
func printMatches(w writer, predicted, groundTruth models.GroupSet) {
	for i, gt := range groundTruth {
		if len(gt) != models.GroupSize {
			continue
		}
		matched := false
		for _, pred := range predicted {
			if len(pred) == models.GroupSize && scoring.SameElements(pred, gt) {
				matched = true
				break
			}
		}
		if !matched {
			fmt.Fprintf(w, "  unmatched: ground-truth group %d (%s)\n", i+1, strings.Join(gt, ", "))
		}
	}
}
