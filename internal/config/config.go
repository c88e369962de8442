// =============================================================================
// BOM Check - Configuration Module
// =============================================================================
//
// This module loads and validates the application configuration from a YAML
// file. A missing file is not an error: every setting has a default, so the
// tool runs out of the box against ./input with the bundled dictionary.
//
// CONFIGURATION FILE (config.yaml):
//   input_dir: ./input
//   output_dir: ./output
//   archive_dir: ./input_archive
//   lookup_file: ./component_types.yaml
//   log_level: info
//   matching:
//     jaccard_threshold: 0.8
//     levenshtein_threshold: 0.8
//     ignore_mask: ["(SMD)"]
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// InputDir is the directory scanned for BOM workbooks.
	// Default: "./input"
	InputDir string `yaml:"input_dir"`

	// OutputDir is the directory where reports and corrected workbooks are
	// written.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// ArchiveDir is the directory where processed workbooks are moved.
	// Default: "./input_archive"
	ArchiveDir string `yaml:"archive_dir"`

	// LookupFile is the YAML dictionary of canonical component types and
	// their known aliases.
	// Default: "./component_types.yaml"
	LookupFile string `yaml:"lookup_file"`

	// LogLevel controls logging verbosity.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// Matching tunes the component type normalizer.
	Matching Matching `yaml:"matching"`
}

// Matching holds the fuzzy matching settings for component type
// normalization. A candidate alias is accepted only when both algorithms
// score it at or above their thresholds.
type Matching struct {
	// JaccardThreshold is the minimum Jaccard similarity score.
	// Range (0, 1]. Default: 0.8
	JaccardThreshold float64 `yaml:"jaccard_threshold"`

	// LevenshteinThreshold is the minimum Levenshtein ratio score.
	// Range (0, 1]. Default: 0.8
	LevenshteinThreshold float64 `yaml:"levenshtein_threshold"`

	// IgnoreMask lists substrings stripped from a component type value
	// before matching, such as package markers the dictionary does not
	// carry.
	IgnoreMask []string `yaml:"ignore_mask"`
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration from a YAML file, applies defaults and
// validates the result. When the file does not exist the defaults are
// returned as-is.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// fall through to defaults
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.InputDir == "" {
		cfg.InputDir = "./input"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.ArchiveDir == "" {
		cfg.ArchiveDir = "./input_archive"
	}
	if cfg.LookupFile == "" {
		cfg.LookupFile = "./component_types.yaml"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Matching.JaccardThreshold == 0 {
		cfg.Matching.JaccardThreshold = 0.8
	}
	if cfg.Matching.LevenshteinThreshold == 0 {
		cfg.Matching.LevenshteinThreshold = 0.8
	}
}

// validate checks the configuration for values the pipeline cannot run with.
func validate(cfg *Config) error {
	if cfg.Matching.JaccardThreshold <= 0 || cfg.Matching.JaccardThreshold > 1 {
		return fmt.Errorf("matching.jaccard_threshold must be in (0, 1], got %v",
			cfg.Matching.JaccardThreshold)
	}
	if cfg.Matching.LevenshteinThreshold <= 0 || cfg.Matching.LevenshteinThreshold > 1 {
		return fmt.Errorf("matching.levenshtein_threshold must be in (0, 1], got %v",
			cfg.Matching.LevenshteinThreshold)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error; got %q",
			cfg.LogLevel)
	}

	return nil
}
