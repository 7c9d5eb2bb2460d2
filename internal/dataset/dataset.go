// Package dataset loads prediction files from disk.
package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/puzzlebench/connbench/internal/models"
)

// ReadAll returns the raw contents of a prediction file. Files ending in .gz
// are transparently decompressed.
func ReadAll(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("predictions: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("predictions: gzip %s: %w", path, err)
		}
		defer gz.Close() //nolint:errcheck
		r = gz
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("predictions: read %s: %w", path, err)
	}
	return data, nil
}

// Load reads a prediction file: a JSON array of puzzle records.
func Load(path string) ([]models.PredictionRecord, error) {
	data, err := ReadAll(path)
	if err != nil {
		return nil, err
	}

	var records []models.PredictionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("predictions: parse %s: %w", path, err)
	}
	return records, nil
}

// ModelName derives the model identifier from a prediction file path: the
// base name minus the .json or .json.gz extension.
func ModelName(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, ".gz")
	name = strings.TrimSuffix(name, ".json")
	return name
}
