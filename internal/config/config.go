// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Environment variable names recognized by FromEnv.
const (
	EnvAPIKey    = "GEMINI_API_KEY"
	EnvModel     = "CV_ASSISTANT_MODEL"
	EnvPort      = "PORT"
	EnvOutputDir = "OUTPUT_DIR"
)

// Config represents the application configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	APIKey    string `json:"api_key,omitempty"`    // Gemini API key
	Model     string `json:"model,omitempty"`      // Model identifier override
	Port      int    `json:"port,omitempty"`       // HTTP server port
	OutputDir string `json:"output_dir,omitempty"` // Directory for generated PDFs
	Verbose   bool   `json:"verbose,omitempty"`    // Print detailed debug information
}

// DefaultConfig returns the built-in defaults applied when neither a config
// file nor flags provide a value.
func DefaultConfig() Config {
	return Config{
		Port:      8080,
		OutputDir: "output",
	}
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

// FromEnv overlays environment variables onto the config. Environment values
// win over file values so deployments can override a checked-in config.
func (c *Config) FromEnv() {
	if v := os.Getenv(EnvAPIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(EnvModel); v != "" {
		c.Model = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.OutputDir = v
	}
}

// Validate checks that the configuration has valid values.
// Note: the API key is not required here; commands that talk to the model
// gateway check for it after merging flags.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
