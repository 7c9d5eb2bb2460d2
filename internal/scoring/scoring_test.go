package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/puzzlebench/connbench/internal/models"
)

func TestSameElements(t *testing.T) {
	t.Run("identical groups", func(t *testing.T) {
		a := models.Group{"apple", "banana", "cherry", "date"}
		require.True(t, SameElements(a, a))
	})

	t.Run("order does not matter", func(t *testing.T) {
		a := models.Group{"apple", "banana", "cherry", "date"}
		b := models.Group{"date", "cherry", "banana", "apple"}
		require.True(t, SameElements(a, b))
	})

	t.Run("case does not matter", func(t *testing.T) {
		a := models.Group{"APPLE", "Banana", "cherry", "DATE"}
		b := models.Group{"apple", "banana", "CHERRY", "date"}
		require.True(t, SameElements(a, b))
	})

	t.Run("different words", func(t *testing.T) {
		a := models.Group{"apple", "banana", "cherry", "date"}
		b := models.Group{"apple", "banana", "cherry", "fig"}
		require.False(t, SameElements(a, b))
	})

	t.Run("different lengths", func(t *testing.T) {
		a := models.Group{"apple", "banana", "cherry", "date"}
		b := models.Group{"apple", "banana", "cherry"}
		require.False(t, SameElements(a, b))
		require.False(t, SameElements(b, a))
	})

	t.Run("empty groups are equal", func(t *testing.T) {
		require.True(t, SameElements(nil, models.Group{}))
	})

	t.Run("duplicates collapse to sets", func(t *testing.T) {
		// Same length, same distinct words, different multiplicities: equal
		// as sets.
		a := models.Group{"apple", "apple", "banana", "cherry"}
		b := models.Group{"apple", "banana", "banana", "cherry"}
		require.True(t, SameElements(a, b))
	})

	t.Run("duplicates with different distinct words", func(t *testing.T) {
		a := models.Group{"apple", "apple", "banana", "cherry"}
		b := models.Group{"apple", "banana", "cherry", "date"}
		require.False(t, SameElements(a, b))
	})
}

func puzzleGroups() models.GroupSet {
	return models.GroupSet{
		{"apple", "banana", "cherry", "date"},
		{"red", "blue", "green", "yellow"},
		{"gold", "silver", "copper", "iron"},
		{"nile", "amazon", "danube", "volga"},
	}
}

func TestScorePuzzle_PerfectMatch(t *testing.T) {
	result := ScorePuzzle(puzzleGroups(), puzzleGroups())

	require.Equal(t, 1.0, result.Score)
	require.Equal(t, 4, result.CorrectGroups)
	require.Equal(t, 4, result.TotalGroups)
	require.True(t, result.Perfect())
}

func TestScorePuzzle_ThreeOfFour(t *testing.T) {
	predicted := puzzleGroups()
	predicted[1] = models.Group{"red", "blue", "green", "purple"}

	result := ScorePuzzle(predicted, puzzleGroups())

	require.Equal(t, 0.75, result.Score)
	require.Equal(t, 3, result.CorrectGroups)
	require.False(t, result.Perfect())
}

func TestScorePuzzle_EmptyInputs(t *testing.T) {
	require.Equal(t, 0.0, ScorePuzzle(nil, puzzleGroups()).Score)
	require.Equal(t, 0.0, ScorePuzzle(puzzleGroups(), nil).Score)
	require.Equal(t, 0.0, ScorePuzzle(nil, nil).Score)
}

func TestScorePuzzle_ScoreIsQuarterPerGroup(t *testing.T) {
	groundTruth := puzzleGroups()

	for correct := 0; correct <= 4; correct++ {
		predicted := make(models.GroupSet, 4)
		for i := range predicted {
			if i < correct {
				predicted[i] = groundTruth[i]
			} else {
				predicted[i] = models.Group{"w1", "w2", "w3", "w4"}
			}
		}

		result := ScorePuzzle(predicted, groundTruth)
		require.Equal(t, 0.25*float64(correct), result.Score)
		require.Equal(t, correct, result.CorrectGroups)
	}
}

func TestScorePuzzle_SkipsWrongLengthGroups(t *testing.T) {
	t.Run("short predicted group never matches", func(t *testing.T) {
		predicted := models.GroupSet{{"apple", "banana", "cherry"}}
		groundTruth := models.GroupSet{{"apple", "banana", "cherry", "date"}}

		result := ScorePuzzle(predicted, groundTruth)
		require.Equal(t, 0.0, result.Score)
	})

	t.Run("short ground-truth group is skipped silently", func(t *testing.T) {
		// The score ceiling drops with no flag surfaced: only the three
		// valid ground-truth groups can be earned.
		groundTruth := puzzleGroups()
		groundTruth[0] = groundTruth[0][:3]

		result := ScorePuzzle(puzzleGroups(), groundTruth)
		require.Equal(t, 0.75, result.Score)
		require.Equal(t, 3, result.CorrectGroups)
		require.Equal(t, 4, result.TotalGroups)
	})
}

func TestScorePuzzle_PredictedGroupMayBeReused(t *testing.T) {
	// Ground-truth groups are disjoint by construction, so reuse only occurs
	// on malformed extractions. The behavior is intentional and preserved.
	group := models.Group{"apple", "banana", "cherry", "date"}
	predicted := models.GroupSet{group}
	groundTruth := models.GroupSet{group, group}

	result := ScorePuzzle(predicted, groundTruth)
	require.Equal(t, 0.5, result.Score)
	require.Equal(t, 2, result.CorrectGroups)
}
