// Package llm provides the gateway abstraction over the hosted text-completion model.
// Generation parameters are fixed at construction and never varied per call.
package llm

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// DefaultModel is the model used when no override is configured.
const DefaultModel = "gemini-2.5-flash"

// Config holds the fixed model configuration for the gateway.
// These values shape text quality only; they are not part of the
// Complete contract and callers cannot vary them per request.
type Config struct {
	Provider        Provider
	Model           string
	MaxOutputTokens int32
	Temperature     float32
	TopK            int32
	TopP            float32
}

// DefaultConfig returns the default gateway configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider:        ProviderGemini,
		Model:           DefaultModel,
		MaxOutputTokens: 1024,
		Temperature:     0.6,
		TopK:            40,
		TopP:            0.95,
	}
}

// WithModel returns a copy of the config with a different model name.
func (c *Config) WithModel(model string) *Config {
	newConfig := *c
	newConfig.Model = model
	return &newConfig
}
