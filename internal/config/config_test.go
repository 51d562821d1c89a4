package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `{
		"api_key": "test-key",
		"model": "gemini-2.5-pro",
		"port": 9090,
		"output_dir": "/tmp/cvs",
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "/tmp/cvs", cfg.OutputDir)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"Empty path", ""},
		{"Missing file", "/nonexistent/config.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(tt.path)
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	path := writeConfigFile(t, `{not json`)

	_, err := LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestFromEnvOverridesFileValues(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvModel, "gemini-2.5-flash")
	t.Setenv(EnvPort, "7070")
	t.Setenv(EnvOutputDir, "/tmp/env-out")

	cfg := Config{APIKey: "file-key", Port: 9090}
	cfg.FromEnv()

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "/tmp/env-out", cfg.OutputDir)
}

func TestFromEnvIgnoresInvalidPort(t *testing.T) {
	t.Setenv(EnvPort, "not-a-port")

	cfg := Config{Port: 9090}
	cfg.FromEnv()

	assert.Equal(t, 9090, cfg.Port)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"Defaults are valid", DefaultConfig(), false},
		{"Zero port is valid", Config{}, false},
		{"Negative port", Config{Port: -1}, true},
		{"Port too large", Config{Port: 70000}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{APIKey: "my-key"}

	merged := cfg.MergeWithDefaults(DefaultConfig())

	assert.Equal(t, "my-key", merged.APIKey)
	assert.Equal(t, 8080, merged.Port)
	assert.Equal(t, "output", merged.OutputDir)
}
