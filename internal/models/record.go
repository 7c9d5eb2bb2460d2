package models

// UnknownPuzzleID is substituted when a record omits its puzzle_id.
const UnknownPuzzleID = "unknown"

// PredictionRecord is one puzzle/model pair as read from a prediction file.
// Records are read-only inputs; the evaluator never writes them back.
type PredictionRecord struct {
	PuzzleID    string `json:"puzzle_id"`
	Prediction  string `json:"prediction"`
	GroundTruth string `json:"ground_truth"`
}

// ID returns the record's puzzle ID, or UnknownPuzzleID when absent.
func (r PredictionRecord) ID() string {
	if r.PuzzleID == "" {
		return UnknownPuzzleID
	}
	return r.PuzzleID
}
