// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cretiq/skillmatch/internal/batch"
	"github.com/cretiq/skillmatch/internal/scoring"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	SkillsPath string `json:"skills_path,omitempty"` // Path to the user skills JSON file
	RolesDir   string `json:"roles_dir,omitempty"`   // Directory of <roleId>.json role documents
	UserID     string `json:"user_id,omitempty"`     // User UUID attached to batch results

	// Matching behavior
	FuzzyMatchThreshold float64 `json:"fuzzy_match_threshold,omitempty"` // Minimum similarity for a fuzzy match (0.0-1.0)
	HighLevelBonus      float64 `json:"high_level_bonus,omitempty"`      // Multiplier applied to advanced/expert skills
	MinScore            int     `json:"minimum_score_threshold,omitempty"` // Drop role scores below this value (0-100)
	Workers             int     `json:"workers,omitempty"`               // Concurrent role evaluations

	// Behavior
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.RolesDir != "" && c.DatabaseURL != "" {
		return fmt.Errorf("config error: 'roles_dir' and 'database_url' are mutually exclusive")
	}

	// Validate numeric ranges
	if c.FuzzyMatchThreshold < 0 || c.FuzzyMatchThreshold > 1 {
		return fmt.Errorf("config error: 'fuzzy_match_threshold' must be between 0.0 and 1.0")
	}
	if c.HighLevelBonus < 0 {
		return fmt.Errorf("config error: 'high_level_bonus' must be non-negative")
	}
	if c.MinScore < 0 || c.MinScore > 100 {
		return fmt.Errorf("config error: 'minimum_score_threshold' must be between 0 and 100")
	}
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.SkillsPath != "" {
		if _, err := os.Stat(c.SkillsPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: skills file not found: %s", c.SkillsPath)
		}
	}

	if c.RolesDir != "" {
		if _, err := os.Stat(c.RolesDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: roles directory not found: %s", c.RolesDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.SkillsPath == "" {
		result.SkillsPath = defaults.SkillsPath
	}
	if result.RolesDir == "" {
		result.RolesDir = defaults.RolesDir
	}
	if result.UserID == "" {
		result.UserID = defaults.UserID
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.MinScore == 0 {
		result.MinScore = defaults.MinScore
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}

	// Float fields
	if result.FuzzyMatchThreshold == 0 {
		if defaults.FuzzyMatchThreshold > 0 {
			result.FuzzyMatchThreshold = defaults.FuzzyMatchThreshold
		} else {
			result.FuzzyMatchThreshold = scoring.DefaultFuzzyMatchThreshold
		}
	}
	if result.HighLevelBonus == 0 {
		if defaults.HighLevelBonus > 0 {
			result.HighLevelBonus = defaults.HighLevelBonus
		} else {
			result.HighLevelBonus = scoring.DefaultHighLevelBonus
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// BatchConfig converts the loaded configuration into the batch runner's
// configuration, filling unset values with package defaults.
func (c *Config) BatchConfig() batch.Config {
	cfg := batch.DefaultConfig()
	if c.FuzzyMatchThreshold > 0 {
		cfg.Scoring.FuzzyMatchThreshold = c.FuzzyMatchThreshold
	}
	if c.HighLevelBonus > 0 {
		cfg.Scoring.HighLevelBonus = c.HighLevelBonus
	}
	if c.Workers > 0 {
		cfg.Workers = c.Workers
	}
	return cfg
}
