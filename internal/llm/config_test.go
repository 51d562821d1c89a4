package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, int32(1024), cfg.MaxOutputTokens)
	assert.InDelta(t, 0.6, float64(cfg.Temperature), 0.001)
	assert.Equal(t, int32(40), cfg.TopK)
	assert.InDelta(t, 0.95, float64(cfg.TopP), 0.001)
}

func TestConfigWithModel(t *testing.T) {
	cfg := DefaultConfig()
	custom := cfg.WithModel("gemini-2.5-pro")

	assert.Equal(t, "gemini-2.5-pro", custom.Model)
	// Original is untouched and generation parameters carry over
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, cfg.MaxOutputTokens, custom.MaxOutputTokens)
}

func TestNewGeminiClientRequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClient(t.Context(), DefaultConfig(), "")
	assert.Error(t, err)
}
