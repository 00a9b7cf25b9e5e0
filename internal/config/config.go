// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/skillmatch/internal/types"
)

// Default recommendation list length when neither config nor flag sets one
const DefaultRecommendLimit = 10

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	TestSkillMap string `json:"test_skill_map,omitempty"` // Path to test-to-skill table JSON
	Jobs         string `json:"jobs,omitempty"`           // Path to job catalog JSON
	Profile      string `json:"profile,omitempty"`        // Path to candidate profile JSON

	// Grading
	PassThreshold int `json:"pass_threshold,omitempty"` // Minimum passing score (default 70)

	// Ranking
	RecommendLimit int    `json:"recommend_limit,omitempty"` // Maximum recommendations returned
	Strategy       string `json:"strategy,omitempty"`        // "base" or "test-enhanced"

	// Backends
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for the attempt log
	MongoURL    string `json:"mongo_url,omitempty"`    // MongoDB connection URL for the attempt log

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed output
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

// PassThresholdOrDefault returns the configured passing score or the default
func (c *Config) PassThresholdOrDefault() int {
	if c.PassThreshold > 0 {
		return c.PassThreshold
	}
	return types.PassThreshold
}

// RecommendLimitOrDefault returns the configured list length or the default
func (c *Config) RecommendLimitOrDefault() int {
	if c.RecommendLimit > 0 {
		return c.RecommendLimit
	}
	return DefaultRecommendLimit
}

// Validate checks that the configuration has valid values
func (c *Config) Validate() error {
	if c.PassThreshold < 0 || c.PassThreshold > 100 {
		return fmt.Errorf("config error: 'pass_threshold' must be between 0 and 100")
	}
	if c.RecommendLimit < 0 {
		return fmt.Errorf("config error: 'recommend_limit' must be non-negative")
	}
	if c.Strategy != "" && c.Strategy != "base" && c.Strategy != "test-enhanced" {
		return fmt.Errorf("config error: 'strategy' must be \"base\" or \"test-enhanced\"")
	}
	if c.DatabaseURL != "" && c.MongoURL != "" {
		return fmt.Errorf("config error: 'database_url' and 'mongo_url' are mutually exclusive")
	}

	// Validate file paths exist (if specified)
	for name, path := range map[string]string{
		"test_skill_map": c.TestSkillMap,
		"jobs":           c.Jobs,
		"profile":        c.Profile,
	} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", name, path)
		}
	}

	return nil
}
