// Package projectconfig provides the Config struct and loader for
// .connbench.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default values for project configuration. These are the single source of
// truth — New() references them and no other code should duplicate them.
const (
	DefaultPredictionsDir = "data/predictions"
	DefaultDetailFile     = "data/evaluation_results.csv"
	DefaultSummaryFile    = "data/evaluation_summary.csv"

	DefaultConfidenceLevel = 0.95

	ConfigFileName = ".connbench.yaml"
)

// PathsConfig holds input and output locations.
type PathsConfig struct {
	Predictions string `yaml:"predictions,omitempty"`
	Detail      string `yaml:"detail,omitempty"`
	Summary     string `yaml:"summary,omitempty"`
}

// StatisticsConfig holds summary statistics settings.
type StatisticsConfig struct {
	ConfidenceLevel float64 `yaml:"confidence_level,omitempty"`
}

// Config is the root of .connbench.yaml. Extract holds extractor options as a
// free-form map so new cleaning knobs do not require config schema changes;
// the extract package decodes it into typed options.
type Config struct {
	Paths      PathsConfig      `yaml:"paths,omitempty"`
	Extract    map[string]any   `yaml:"extract,omitempty"`
	Statistics StatisticsConfig `yaml:"statistics,omitempty"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Paths: PathsConfig{
			Predictions: DefaultPredictionsDir,
			Detail:      DefaultDetailFile,
			Summary:     DefaultSummaryFile,
		},
		Statistics: StatisticsConfig{
			ConfidenceLevel: DefaultConfidenceLevel,
		},
	}
}

// Load reads .connbench.yaml from dir. A missing file is not an error: the
// defaults are returned unchanged.
func Load(dir string) (*Config, error) {
	cfg := New()

	path := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults fills fields an explicit config file left empty.
func (c *Config) applyDefaults() {
	if c.Paths.Predictions == "" {
		c.Paths.Predictions = DefaultPredictionsDir
	}
	if c.Paths.Detail == "" {
		c.Paths.Detail = DefaultDetailFile
	}
	if c.Paths.Summary == "" {
		c.Paths.Summary = DefaultSummaryFile
	}
	if c.Statistics.ConfidenceLevel <= 0 || c.Statistics.ConfidenceLevel >= 1 {
		c.Statistics.ConfidenceLevel = DefaultConfidenceLevel
	}
}
