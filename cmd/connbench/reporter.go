package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/puzzlebench/connbench/internal/models"
	"github.com/puzzlebench/connbench/internal/statistics"
)

type writer = interface{ Write([]byte) (int, error) }

// summaryRow pairs a model's aggregate metrics with the confidence interval
// over its per-puzzle scores.
type summaryRow struct {
	summary models.ModelSummary
	ci      statistics.ConfidenceInterval
}

// printSummaryTable renders the final cross-model table.
//
//nolint:errcheck
func printSummaryTable(w writer, rows []summaryRow) {
	const maxNameWidth = 40
	const minNameWidth = 10

	// Compute dynamic column width from the longest model name.
	nameWidth := len("Model")
	for _, r := range rows {
		if runeLen := utf8.RuneCountInString(r.summary.ModelName); runeLen > nameWidth {
			nameWidth = runeLen
		}
	}
	if nameWidth > maxNameWidth {
		nameWidth = maxNameWidth
	}
	if nameWidth < minNameWidth {
		nameWidth = minNameWidth
	}

	const colPuzzles = 7
	const colAvg = 8
	const colPct = 8
	const colPerfect = 9
	const colGroups = 8
	const colCI = 16
	totalWidth := nameWidth + colPuzzles + colAvg + colPct + colPerfect + colGroups + colCI + 12 // 12 = 6 gaps × 2 spaces

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("═", totalWidth))
	fmt.Fprintf(w, " EVALUATION SUMMARY\n")
	fmt.Fprintf(w, "%s\n\n", strings.Repeat("═", totalWidth))

	fmt.Fprintf(w, "%s  %s  %s  %s  %s  %s  %s\n",
		padRight("Model", nameWidth),
		padRight("Puzzles", colPuzzles),
		padRight("Avg", colAvg),
		padRight("Avg %", colPct),
		padRight("Perfect", colPerfect),
		padRight("Groups", colGroups),
		"95% CI")
	fmt.Fprintf(w, "%s\n", strings.Repeat("─", totalWidth))

	for _, r := range rows {
		s := r.summary
		name := truncateName(s.ModelName, nameWidth)
		perfect := fmt.Sprintf("%d/%d", s.PerfectPuzzles, s.TotalPuzzles)
		ci := fmt.Sprintf("[%.3f, %.3f]", r.ci.Lower, r.ci.Upper)

		fmt.Fprintf(w, "%s  %s  %s  %s  %s  %s  %s\n",
			padRight(name, nameWidth),
			padRight(fmt.Sprintf("%d", s.TotalPuzzles), colPuzzles),
			padRight(fmt.Sprintf("%.4f", s.AverageScore), colAvg),
			padRight(fmt.Sprintf("%.2f%%", s.Percentage()), colPct),
			padRight(perfect, colPerfect),
			padRight(fmt.Sprintf("%d", s.TotalCorrectGroups), colGroups),
			ci)
	}
	fmt.Fprintf(w, "\n")
}

// truncateName shortens a name to maxLen runes, replacing the last rune with "…" if needed.
func truncateName(name string, maxLen int) string {
	runes := []rune(name)
	if len(runes) <= maxLen {
		return name
	}
	return string(runes[:maxLen-1]) + "…"
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}
