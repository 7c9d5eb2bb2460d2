package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/puzzlebench/connbench/internal/evaluation"
	"github.com/puzzlebench/connbench/internal/extract"
	"github.com/puzzlebench/connbench/internal/models"
	"github.com/puzzlebench/connbench/internal/projectconfig"
	"github.com/puzzlebench/connbench/internal/reporting"
	"github.com/puzzlebench/connbench/internal/statistics"
)

func newEvaluateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate all prediction files against their ground truth",
		Long: `Evaluate every prediction file in the predictions directory.

Each file is a JSON array of puzzle records (prediction text plus ground-truth
text). Groups are extracted from both texts, compared case-insensitively, and
each correctly matched group earns a quarter of the puzzle's score.

Writes a detail CSV (one row per model/puzzle pair) and a summary CSV (one row
per model), and prints per-model summaries to the console. Files that cannot
be read or parsed are skipped with a warning; the rest of the run continues.

Defaults come from .connbench.yaml in the working directory when present.`,
		Args: cobra.NoArgs,
		RunE: runEvaluate,
	}

	cmd.Flags().String("predictions-dir", "", "Directory containing prediction JSON files")
	cmd.Flags().String("output", "", "Detail CSV output path")
	cmd.Flags().String("summary", "", "Summary CSV output path")
	cmd.Flags().Int64("seed", -1, "Seed for the bootstrap confidence interval (negative = non-deterministic)")

	return cmd
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	cfg, err := projectconfig.Load(".")
	if err != nil {
		return err
	}

	predictionsDir := cfg.Paths.Predictions
	if v, _ := cmd.Flags().GetString("predictions-dir"); v != "" {
		predictionsDir = v
	}
	detailPath := cfg.Paths.Detail
	if v, _ := cmd.Flags().GetString("output"); v != "" {
		detailPath = v
	}
	summaryPath := cfg.Paths.Summary
	if v, _ := cmd.Flags().GetString("summary"); v != "" {
		summaryPath = v
	}
	seed, err := cmd.Flags().GetInt64("seed")
	if err != nil {
		return err
	}

	opts, err := extract.OptionsFromMap(cfg.Extract)
	if err != nil {
		return err
	}

	evaluator := evaluation.New(extract.New(opts))
	run, err := evaluator.Run(predictionsDir)
	if err != nil {
		return fmt.Errorf("evaluating %s: %w", predictionsDir, err)
	}

	if len(run.Outcomes) == 0 && len(run.Skipped) == 0 {
		fmt.Fprintf(w, "No prediction files found in %s\n", predictionsDir) //nolint:errcheck
		return nil
	}

	fmt.Fprintf(w, "Puzzle predictions evaluation (run %s)\n", run.ID) //nolint:errcheck

	rows := make([]summaryRow, 0, len(run.Outcomes))
	for _, outcome := range run.Outcomes {
		s := models.Summarize(outcome.ModelName, outcome.Results)
		ci := statistics.BootstrapCIWithSeed(outcome.Results.Scores(), cfg.Statistics.ConfidenceLevel, seed)
		rows = append(rows, summaryRow{summary: s, ci: ci})
		printModelSummary(w, s)
	}
	for _, path := range run.Skipped {
		fmt.Fprintf(w, "\nSkipped (unreadable): %s\n", path) //nolint:errcheck
	}

	if err := reporting.WriteDetailCSV(detailPath, run.Outcomes); err != nil {
		return err
	}
	if err := reporting.WriteSummaryCSV(summaryPath, run.Outcomes); err != nil {
		return err
	}

	printSummaryTable(w, rows)
	fmt.Fprintf(w, "Detailed results: %s\n", detailPath) //nolint:errcheck
	fmt.Fprintf(w, "Summary results:  %s\n", summaryPath) //nolint:errcheck

	return nil
}

// printModelSummary mirrors the per-file console report: average score as a
// plain fraction (4 decimals) and as a percentage (2 decimals).
//
//nolint:errcheck
func printModelSummary(w writer, s models.ModelSummary) {
	fmt.Fprintf(w, "\nEvaluating: %s\n", s.ModelName)
	fmt.Fprintf(w, "  Total puzzles: %d\n", s.TotalPuzzles)
	if s.TotalPuzzles == 0 {
		return
	}
	fmt.Fprintf(w, "  Average score: %.4f (%.2f%%)\n", s.AverageScore, s.Percentage())
	fmt.Fprintf(w, "  Perfect puzzles: %d/%d (%.2f%%)\n", s.PerfectPuzzles, s.TotalPuzzles, s.PerfectPercentage())
}
