package projectconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	require.Equal(t, DefaultPredictionsDir, cfg.Paths.Predictions)
	require.Equal(t, DefaultDetailFile, cfg.Paths.Detail)
	require.Equal(t, DefaultSummaryFile, cfg.Paths.Summary)
	require.Equal(t, DefaultConfidenceLevel, cfg.Statistics.ConfidenceLevel)
	require.Nil(t, cfg.Extract)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	content := `paths:
  predictions: runs/preds
extract:
  eos_markers: ["<|end|>"]
  max_groups: 6
statistics:
  confidence_level: 0.9
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	require.Equal(t, "runs/preds", cfg.Paths.Predictions)
	// Unset paths keep their defaults.
	require.Equal(t, DefaultDetailFile, cfg.Paths.Detail)
	require.Equal(t, 0.9, cfg.Statistics.ConfidenceLevel)
	require.Equal(t, 6, cfg.Extract["max_groups"])
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("paths: ["), 0o644))

	_, err := Load(dir)
	require.ErrorContains(t, err, "parsing")
}

func TestLoad_OutOfRangeConfidenceLevel(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("statistics:\n  confidence_level: 2.0\n"), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, DefaultConfidenceLevel, cfg.Statistics.ConfidenceLevel)
}
