package models

// ModelSummary aggregates one model's puzzle results. It is derived from a
// PuzzleResult, never stored independently.
type ModelSummary struct {
	ModelName          string  `json:"model_name"`
	TotalPuzzles       int     `json:"total_puzzles"`
	AverageScore       float64 `json:"average_score"`
	PerfectPuzzles     int     `json:"perfect_puzzles"`
	TotalCorrectGroups int     `json:"total_correct_groups"`
}

// Summarize reduces a model's puzzle results into aggregate metrics.
func Summarize(modelName string, results PuzzleResult) ModelSummary {
	s := ModelSummary{
		ModelName:    modelName,
		TotalPuzzles: len(results),
	}

	var totalScore float64
	for _, r := range results {
		totalScore += r.Score
		s.TotalCorrectGroups += r.CorrectGroups
		if r.Perfect() {
			s.PerfectPuzzles++
		}
	}

	if s.TotalPuzzles > 0 {
		s.AverageScore = totalScore / float64(s.TotalPuzzles)
	}
	return s
}

// Percentage returns the average score as a percentage.
func (s ModelSummary) Percentage() float64 {
	return s.AverageScore * 100
}

// PerfectPercentage returns the share of fully solved puzzles as a percentage.
func (s ModelSummary) PerfectPercentage() float64 {
	if s.TotalPuzzles == 0 {
		return 0
	}
	return float64(s.PerfectPuzzles) / float64(s.TotalPuzzles) * 100
}
