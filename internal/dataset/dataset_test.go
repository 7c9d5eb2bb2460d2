package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `[
  {"puzzle_id": "p1", "prediction": "[a, b, c, d]", "ground_truth": "[a, b, c, d]"},
  {"prediction": "", "ground_truth": "[e, f, g, h]"}
]`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o644))

	records, err := Load(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "p1", records[0].PuzzleID)
	require.Equal(t, "[a, b, c, d]", records[0].Prediction)
	require.Equal(t, "unknown", records[1].ID())
}

func TestLoad_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json.gz")

	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(sampleJSON))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	records, err := Load(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "p1", records[0].PuzzleID)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := Load(path)
		require.ErrorContains(t, err, "parse")
	})

	t.Run("corrupt gzip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json.gz")
		require.NoError(t, os.WriteFile(path, []byte("not gzip data"), 0o644))

		_, err := Load(path)
		require.ErrorContains(t, err, "gzip")
	})
}

func TestModelName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "data/predictions/exp1_baseline.json", want: "exp1_baseline"},
		{path: "deepseek_reasoner_validation.json.gz", want: "deepseek_reasoner_validation"},
		{path: "/abs/path/gpt4.json", want: "gpt4"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, ModelName(tt.path))
	}
}
