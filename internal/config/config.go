// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Inputs
	ListingURL string `json:"listing_url,omitempty"` // URL of a live product page to analyze
	CogsFile   string `json:"cogs_file,omitempty"`   // Path to a JSON file mapping ASIN to unit cost

	// Behavior
	APIKey     string `json:"api_key,omitempty"`     // Gemini API key
	Model      string `json:"model,omitempty"`       // Gemini model tier override (lite, standard, advanced)
	UseBrowser bool   `json:"use_browser,omitempty"` // Use headless browser for JS-rendered product pages
	Verbose    bool   `json:"verbose,omitempty"`     // Print detailed debug information

	// Server
	Port           int `json:"port,omitempty"`            // HTTP server port
	RequestTimeout int `json:"request_timeout,omitempty"` // Per-request timeout in seconds
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
// Required fields are handled by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("config error: 'request_timeout' must be non-negative")
	}

	if c.Model != "" {
		switch c.Model {
		case "lite", "standard", "advanced":
		default:
			return fmt.Errorf("config error: 'model' must be one of lite, standard, advanced")
		}
	}

	if c.CogsFile != "" {
		if _, err := os.Stat(c.CogsFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: cogs file not found: %s", c.CogsFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ListingURL == "" {
		result.ListingURL = defaults.ListingURL
	}
	if result.CogsFile == "" {
		result.CogsFile = defaults.CogsFile
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}

	if result.Port == 0 {
		if defaults.Port > 0 {
			result.Port = defaults.Port
		} else {
			result.Port = 8080
		}
	}
	if result.RequestTimeout == 0 {
		if defaults.RequestTimeout > 0 {
			result.RequestTimeout = defaults.RequestTimeout
		} else {
			result.RequestTimeout = 60
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
