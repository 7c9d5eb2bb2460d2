package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inspectTestRecords = `[
  {"puzzle_id": "p1",
   "prediction": "**A**: a1, a2, a3, a4\n**B**: b1, b2, b3, b4\n**C**: c1, c2, c3, c4\n**D**: d1, d2, d3, wrong",
   "ground_truth": "**A**: a1, a2, a3, a4\n**B**: b1, b2, b3, b4\n**C**: c1, c2, c3, c4\n**D**: d1, d2, d3, d4"},
  {"puzzle_id": "p2", "prediction": "", "ground_truth": "[x1, x2, x3, x4]"}
]`

func TestInspectCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(inspectTestRecords), 0o644))

	var buf bytes.Buffer
	cmd := newInspectCommand()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{path})
	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "puzzle p1  (score 0.75, 3/4 groups)")
	assert.Contains(t, output, "a1, a2, a3, a4")
	assert.Contains(t, output, "unmatched: ground-truth group 4")
	assert.Contains(t, output, "puzzle p2  (score 0.00, 0/4 groups)")
}

func TestInspectCommand_PuzzleFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(inspectTestRecords), 0o644))

	t.Run("existing puzzle", func(t *testing.T) {
		var buf bytes.Buffer
		cmd := newInspectCommand()
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{path, "--puzzle", "p2"})
		require.NoError(t, cmd.Execute())

		assert.Contains(t, buf.String(), "puzzle p2")
		assert.NotContains(t, buf.String(), "puzzle p1")
	})

	t.Run("unknown puzzle", func(t *testing.T) {
		cmd := newInspectCommand()
		cmd.SetOut(new(bytes.Buffer))
		cmd.SetErr(new(bytes.Buffer))
		cmd.SetArgs([]string{path, "--puzzle", "p99"})
		require.ErrorContains(t, cmd.Execute(), "p99")
	})
}
