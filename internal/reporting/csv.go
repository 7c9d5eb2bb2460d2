// Package reporting writes the detail and summary tables produced by an
// evaluation run, and reads detail tables back for comparisons.
package reporting

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/puzzlebench/connbench/internal/models"
)

var detailHeader = []string{"model_name", "puzzle_id", "score", "correct_groups", "total_groups"}

var summaryHeader = []string{"model_name", "total_puzzles", "average_score", "percentage", "perfect_puzzles", "perfect_percentage", "total_correct_groups"}

// WriteDetailCSV writes one row per model/puzzle pair, sorted by model name
// then puzzle ID. Parent directories are created as needed.
func WriteDetailCSV(path string, outcomes []models.FileOutcome) error {
	w, closeFn, err := createCSV(path)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := w.Write(detailHeader); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}

	for _, outcome := range sortedOutcomes(outcomes) {
		ids := make([]string, 0, len(outcome.Results))
		for id := range outcome.Results {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		for _, id := range ids {
			r := outcome.Results[id]
			row := []string{
				outcome.ModelName,
				id,
				formatScore(r.Score),
				strconv.Itoa(r.CorrectGroups),
				strconv.Itoa(r.TotalGroups),
			}
			if err := w.Write(row); err != nil {
				return fmt.Errorf("csv: write row: %w", err)
			}
		}
	}

	w.Flush()
	return w.Error()
}

// WriteSummaryCSV writes one aggregate row per model, sorted by model name.
// Percentages use two decimal places, the average score four.
func WriteSummaryCSV(path string, outcomes []models.FileOutcome) error {
	w, closeFn, err := createCSV(path)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := w.Write(summaryHeader); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}

	for _, outcome := range sortedOutcomes(outcomes) {
		if len(outcome.Results) == 0 {
			continue
		}
		s := models.Summarize(outcome.ModelName, outcome.Results)
		row := []string{
			s.ModelName,
			strconv.Itoa(s.TotalPuzzles),
			fmt.Sprintf("%.4f", s.AverageScore),
			fmt.Sprintf("%.2f", s.Percentage()),
			strconv.Itoa(s.PerfectPuzzles),
			fmt.Sprintf("%.2f", s.PerfectPercentage()),
			strconv.Itoa(s.TotalCorrectGroups),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

// LoadDetailScores reads a detail CSV back into per-model score slices.
func LoadDetailScores(path string) (map[string][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv: %s is empty (no header row)", path)
	}

	cols := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		cols[h] = i
	}
	modelCol, ok := cols["model_name"]
	if !ok {
		return nil, fmt.Errorf("csv: %s missing model_name column", path)
	}
	scoreCol, ok := cols["score"]
	if !ok {
		return nil, fmt.Errorf("csv: %s missing score column", path)
	}

	scores := make(map[string][]float64)
	for i, record := range records[1:] {
		if len(record) != len(records[0]) {
			return nil, fmt.Errorf("csv: row %d has %d columns, expected %d", i+2, len(record), len(records[0]))
		}
		score, err := strconv.ParseFloat(record[scoreCol], 64)
		if err != nil {
			return nil, fmt.Errorf("csv: row %d has invalid score %q: %w", i+2, record[scoreCol], err)
		}
		model := record[modelCol]
		scores[model] = append(scores[model], score)
	}
	return scores, nil
}

func createCSV(path string) (*csv.Writer, func(), error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("csv: create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("csv: create %s: %w", path, err)
	}
	return csv.NewWriter(f), func() { f.Close() }, nil //nolint:errcheck
}

func sortedOutcomes(outcomes []models.FileOutcome) []models.FileOutcome {
	sorted := make([]models.FileOutcome, len(outcomes))
	copy(sorted, outcomes)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ModelName < sorted[j].ModelName
	})
	return sorted
}

// formatScore renders a score with the fewest digits that round-trip: puzzle
// scores are quarters, so this yields 0, 0.25, 0.5, 0.75, or 1.
func formatScore(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
