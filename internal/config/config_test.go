package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillmatch/internal/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))
	return tmpFile
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfig(t, `{
		"pass_threshold": 60,
		"recommend_limit": 5,
		"strategy": "test-enhanced",
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 60, cfg.PassThreshold)
	assert.Equal(t, 5, cfg.RecommendLimit)
	assert.Equal(t, "test-enhanced", cfg.Strategy)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{ invalid json }`)

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "failed to parse config JSON")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.ErrorContains(t, err, "config path is empty")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestConfig_Defaults(t *testing.T) {
	cfg := &Config{}

	assert.Equal(t, types.PassThreshold, cfg.PassThresholdOrDefault())
	assert.Equal(t, DefaultRecommendLimit, cfg.RecommendLimitOrDefault())

	cfg.PassThreshold = 80
	cfg.RecommendLimit = 3
	assert.Equal(t, 80, cfg.PassThresholdOrDefault())
	assert.Equal(t, 3, cfg.RecommendLimitOrDefault())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"empty config is valid", Config{}, ""},
		{"threshold too high", Config{PassThreshold: 150}, "pass_threshold"},
		{"negative limit", Config{RecommendLimit: -1}, "recommend_limit"},
		{"unknown strategy", Config{Strategy: "hybrid"}, "strategy"},
		{"two backends", Config{DatabaseURL: "postgres://x", MongoURL: "mongodb://y"}, "mutually exclusive"},
		{"missing jobs file", Config{Jobs: "/nonexistent/jobs.json"}, "jobs file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ValidateExistingPath(t *testing.T) {
	path := writeConfig(t, `{}`)
	cfg := Config{Jobs: path}
	assert.NoError(t, cfg.Validate())
}
