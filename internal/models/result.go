// Package models holds the data types shared between the extraction and
// scoring core and the batch evaluation layer.
package models

const (
	// GroupSize is the number of words in a well-formed puzzle group. Groups
	// of any other length are never match candidates.
	GroupSize = 4

	// TotalGroups is the number of groups in a puzzle. Each group is worth an
	// equal quarter of the score.
	TotalGroups = 4
)

// Group is an ordered sequence of extracted words. Extraction may yield fewer
// or more than GroupSize words; downstream length checks tolerate this.
type Group []string

// GroupSet is the sequence of groups extracted from one text blob, in
// extraction order. The order carries no meaning and must not be used for
// identity.
type GroupSet []Group

// ScoreResult is the outcome of scoring one puzzle. Score is always
// 0.25 * CorrectGroups: each ground-truth group is worth an equal quarter.
type ScoreResult struct {
	Score         float64 `json:"score"`
	CorrectGroups int     `json:"correct_groups"`
	TotalGroups   int     `json:"total_groups"`
}

// Perfect reports whether every group was matched.
func (r ScoreResult) Perfect() bool {
	return r.Score == 1.0
}

// PuzzleResult maps puzzle IDs to their scores for one model's predictions.
type PuzzleResult map[string]ScoreResult

// Scores returns the per-puzzle scores in unspecified order.
func (p PuzzleResult) Scores() []float64 {
	scores := make([]float64, 0, len(p))
	for _, r := range p {
		scores = append(scores, r.Score)
	}
	return scores
}

// FileOutcome pairs a model identifier with the results of evaluating its
// prediction file.
type FileOutcome struct {
	ModelName string       `json:"model_name"`
	Results   PuzzleResult `json:"results"`
}
