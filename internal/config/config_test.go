package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cretiq/skillmatch/internal/scoring"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"user_id": "550e8400-e29b-41d4-a716-446655440000",
		"roles_dir": "./roles",
		"fuzzy_match_threshold": 0.85,
		"minimum_score_threshold": 40,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", cfg.UserID)
	assert.Equal(t, "./roles", cfg.RolesDir)
	assert.Equal(t, 0.85, cfg.FuzzyMatchThreshold)
	assert.Equal(t, 40, cfg.MinScore)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_MutuallyExclusive(t *testing.T) {
	cfg := &Config{
		RolesDir:    t.TempDir(),
		DatabaseURL: "postgres://localhost/skillmatch",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_OutOfRangeValues(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"threshold above one", Config{FuzzyMatchThreshold: 1.5}, "fuzzy_match_threshold"},
		{"negative threshold", Config{FuzzyMatchThreshold: -0.1}, "fuzzy_match_threshold"},
		{"negative bonus", Config{HighLevelBonus: -1}, "high_level_bonus"},
		{"score above hundred", Config{MinScore: 101}, "minimum_score_threshold"},
		{"negative workers", Config{Workers: -2}, "workers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_MissingPaths(t *testing.T) {
	cfg := &Config{SkillsPath: "/nonexistent/skills.json"}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "skills file not found")

	cfg = &Config{RolesDir: "/nonexistent/roles"}
	err = cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "roles directory not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		UserID:              "test-user",
		FuzzyMatchThreshold: 0.8,
		MinScore:            40,
		Workers:             8,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		SkillsPath:          "skills.json",
		RolesDir:            "./roles",
		MinScore:            40,
		Workers:             8,
		FuzzyMatchThreshold: 0.9,
	}

	partial := Config{
		UserID:   "custom-user-id",
		RolesDir: "./other-roles",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "custom-user-id", merged.UserID)
	assert.Equal(t, "./other-roles", merged.RolesDir)

	// Default values should fill in empty fields
	assert.Equal(t, "skills.json", merged.SkillsPath)
	assert.Equal(t, 40, merged.MinScore)
	assert.Equal(t, 8, merged.Workers)
	assert.Equal(t, 0.9, merged.FuzzyMatchThreshold)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{UserID: "test-user"}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "test-user", merged.UserID)
	assert.Equal(t, scoring.DefaultFuzzyMatchThreshold, merged.FuzzyMatchThreshold)
	assert.Equal(t, scoring.DefaultHighLevelBonus, merged.HighLevelBonus)
}

func TestBatchConfig(t *testing.T) {
	cfg := Config{FuzzyMatchThreshold: 0.9, HighLevelBonus: 1.5, Workers: 2}

	bc := cfg.BatchConfig()

	assert.Equal(t, 0.9, bc.Scoring.FuzzyMatchThreshold)
	assert.Equal(t, 1.5, bc.Scoring.HighLevelBonus)
	assert.Equal(t, 2, bc.Workers)
}

func TestBatchConfig_Defaults(t *testing.T) {
	cfg := Config{}
	bc := cfg.BatchConfig()

	assert.Equal(t, scoring.DefaultFuzzyMatchThreshold, bc.Scoring.FuzzyMatchThreshold)
	assert.Equal(t, scoring.DefaultHighLevelBonus, bc.Scoring.HighLevelBonus)
}
