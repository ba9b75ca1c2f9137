// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	CV     string `json:"cv,omitempty"`      // Path to resume text file
	Job    string `json:"job,omitempty"`     // Path to job posting text file
	JobURL string `json:"job_url,omitempty"` // URL to fetch the job posting from

	// Behavior
	APIKey       string `json:"api_key,omitempty"`       // Gemini API key
	Language     string `json:"language,omitempty"`      // Question language: es, en, pt, fr
	MaxQuestions int    `json:"max_questions,omitempty"` // Maximum follow-up questions
	UseAI        bool   `json:"use_ai,omitempty"`        // Use the AI strategies when available
	Verbose      bool   `json:"verbose,omitempty"`       // Print detailed debug information
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

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if c.MaxQuestions < 0 {
		return fmt.Errorf("config error: 'max_questions' must be non-negative")
	}

	switch c.Language {
	case "", "es", "en", "pt", "fr":
	default:
		return fmt.Errorf("config error: unsupported language %q", c.Language)
	}

	if c.CV != "" {
		if _, err := os.Stat(c.CV); os.IsNotExist(err) {
			return fmt.Errorf("config error: cv file not found: %s", c.CV)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.CV == "" {
		result.CV = defaults.CV
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Language == "" {
		result.Language = defaults.Language
	}
	if result.MaxQuestions == 0 {
		result.MaxQuestions = defaults.MaxQuestions
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
