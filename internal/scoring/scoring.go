// Package scoring compares extracted group sets and produces puzzle scores.
// All functions are pure; malformed content scores zero rather than erroring
// so one badly formatted response cannot abort an evaluation run.
package scoring

import (
	"strings"

	"github.com/puzzlebench/connbench/internal/models"
)

// SameElements reports whether two groups contain the same words,
// case-insensitively and regardless of order. The comparison is over sets:
// duplicate words collapse. Puzzle words are unique within a group, so the
// collapse only matters for malformed extractions.
func SameElements(a, b models.Group) bool {
	if len(a) != len(b) {
		return false
	}

	setA := foldedSet(a)
	setB := foldedSet(b)
	if len(setA) != len(setB) {
		return false
	}
	for w := range setA {
		if _, ok := setB[w]; !ok {
			return false
		}
	}
	return true
}

func foldedSet(g models.Group) map[string]struct{} {
	set := make(map[string]struct{}, len(g))
	for _, w := range g {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}

// ScorePuzzle matches predicted groups against ground-truth groups. Each
// ground-truth group of exactly models.GroupSize words is worth a quarter of
// the total; groups of any other length are skipped and cannot be scored. The
// first predicted group of valid length that SameElements accepts earns the
// quarter.
//
// A predicted group is not consumed by a match and may satisfy more than one
// ground-truth group. Ground-truth groups are disjoint by puzzle
// construction, so reuse only occurs on malformed extractions; the behavior
// is kept for compatibility with previously recorded scores.
func ScorePuzzle(predicted, groundTruth models.GroupSet) models.ScoreResult {
	result := models.ScoreResult{TotalGroups: models.TotalGroups}
	if len(predicted) == 0 || len(groundTruth) == 0 {
		return result
	}

	for _, gt := range groundTruth {
		if len(gt) != models.GroupSize {
			continue
		}
		for _, pred := range predicted {
			if len(pred) != models.GroupSize {
				continue
			}
			if SameElements(pred, gt) {
				result.Score += 0.25
				result.CorrectGroups++
				break
			}
		}
	}
	return result
}
