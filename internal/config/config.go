// Package config provides configuration loading and validation for the
// ingestion CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the CLI configuration loadable from a JSON file. All fields
// are optional; missing values fall back to defaults or CLI flags.
type Config struct {
	// Input sources, mutually exclusive.
	File       string `json:"file,omitempty"`        // Path to a local resume PDF
	FileURL    string `json:"file_url,omitempty"`    // URL of a resume PDF to download
	ProfileURL string `json:"profile_url,omitempty"` // URL of a public profile page

	// Candidate identity hints.
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`

	// Behavior.
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	UseBrowser  bool   `json:"use_browser,omitempty"`  // Headless browser fallback for profile pages
	Verbose     bool   `json:"verbose,omitempty"`      // Detailed progress output
	LocalOnly   bool   `json:"local_only,omitempty"`   // Skip the remote structuring call
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL, empty disables persistence
	Output      string `json:"output,omitempty"`       // Path for the structured resume JSON
}

// LoadConfig loads configuration from a JSON file.
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

// Validate checks the configuration for inconsistent values. Required
// fields are enforced later, after merging with CLI flags.
func (c *Config) Validate() error {
	sources := 0
	if c.File != "" {
		sources++
	}
	if c.FileURL != "" {
		sources++
	}
	if c.ProfileURL != "" {
		sources++
	}
	if sources > 1 {
		return fmt.Errorf("config error: 'file', 'file_url' and 'profile_url' are mutually exclusive")
	}

	if c.File != "" {
		if _, err := os.Stat(c.File); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.File)
		}
	}

	return nil
}

// MergeWithDefaults returns a copy with empty fields filled from
// defaults. Boolean fields are not merged: unset and false are
// indistinguishable, so CLI flags win for those.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.File == "" {
		result.File = defaults.File
	}
	if result.FileURL == "" {
		result.FileURL = defaults.FileURL
	}
	if result.ProfileURL == "" {
		result.ProfileURL = defaults.ProfileURL
	}
	if result.Name == "" {
		result.Name = defaults.Name
	}
	if result.Email == "" {
		result.Email = defaults.Email
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}

	return result
}
