// Package evaluation runs the extraction and scoring core over batches of
// prediction records. Puzzles are evaluated independently and sequentially;
// extraction and scoring are pure functions of their inputs.
package evaluation

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/puzzlebench/connbench/internal/dataset"
	"github.com/puzzlebench/connbench/internal/discovery"
	"github.com/puzzlebench/connbench/internal/extract"
	"github.com/puzzlebench/connbench/internal/models"
	"github.com/puzzlebench/connbench/internal/scoring"
)

// Evaluator scores prediction records against their ground truth.
type Evaluator struct {
	extractor *extract.Extractor
}

// New returns an Evaluator using the given extractor.
func New(extractor *extract.Extractor) *Evaluator {
	return &Evaluator{extractor: extractor}
}

// NewDefault returns an Evaluator with default extraction options.
func NewDefault() *Evaluator {
	return New(extract.NewDefault())
}

// EvaluateRecord scores a single record. Malformed content never fails; it
// scores zero.
func (e *Evaluator) EvaluateRecord(rec models.PredictionRecord) models.ScoreResult {
	predicted := e.extractor.Extract(rec.Prediction)
	groundTruth := e.extractor.Extract(rec.GroundTruth)

	result := scoring.ScorePuzzle(predicted, groundTruth)
	slog.Debug("puzzle scored",
		"puzzle", rec.ID(),
		"predictedGroups", len(predicted),
		"groundTruthGroups", len(groundTruth),
		"score", result.Score,
		"correctGroups", result.CorrectGroups)
	return result
}

// EvaluateRecords scores each record independently. Records sharing a puzzle
// ID overwrite earlier ones; the last record wins.
func (e *Evaluator) EvaluateRecords(records []models.PredictionRecord) models.PuzzleResult {
	results := make(models.PuzzleResult, len(records))
	for _, rec := range records {
		results[rec.ID()] = e.EvaluateRecord(rec)
	}
	return results
}

// EvaluateFile loads one prediction file and scores all its records. The
// model name is derived from the file name.
func (e *Evaluator) EvaluateFile(path string) (models.FileOutcome, error) {
	records, err := dataset.Load(path)
	if err != nil {
		return models.FileOutcome{}, err
	}

	return models.FileOutcome{
		ModelName: dataset.ModelName(path),
		Results:   e.EvaluateRecords(records),
	}, nil
}

// Run is the result of evaluating every prediction file under one directory.
type Run struct {
	// ID identifies this evaluation run in logs and reports.
	ID string

	// Outcomes holds one entry per successfully evaluated file, in
	// discovery (sorted-path) order.
	Outcomes []models.FileOutcome

	// Skipped lists files that could not be read or parsed.
	Skipped []string
}

// Run discovers prediction files under predictionsDir and evaluates each one
// sequentially. Unreadable or unparsable files are skipped with a diagnostic;
// the rest of the run continues. Only an unusable directory fails the run.
func (e *Evaluator) Run(predictionsDir string) (*Run, error) {
	files, err := discovery.Discover(predictionsDir)
	if err != nil {
		return nil, err
	}

	run := &Run{ID: uuid.NewString()}
	slog.Debug("starting evaluation run", "run", run.ID, "files", len(files))

	for _, path := range files {
		outcome, err := e.EvaluateFile(path)
		if err != nil {
			slog.Warn("skipping prediction file", "path", path, "error", err)
			run.Skipped = append(run.Skipped, path)
			continue
		}
		run.Outcomes = append(run.Outcomes, outcome)
	}

	return run, nil
}
