package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/cv-assistant/internal/config"
	"github.com/jonathan/cv-assistant/internal/llm"
)

// resolveConfig builds the effective configuration: file values first, then
// environment overrides, then built-in defaults for whatever is still unset.
func resolveConfig() (config.Config, error) {
	cfg := config.Config{}

	if rootConfigPath != "" {
		loaded, err := config.LoadConfig(rootConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}

	cfg.FromEnv()
	cfg = cfg.MergeWithDefaults(config.DefaultConfig())
	if rootVerbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

// newGatewayClient creates the LLM client from the resolved config.
func newGatewayClient(ctx context.Context, cfg config.Config) (llm.Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or the config file)")
	}

	llmConfig := llm.DefaultConfig()
	if cfg.Model != "" {
		llmConfig = llmConfig.WithModel(cfg.Model)
	}

	return llm.NewClient(ctx, llmConfig, cfg.APIKey)
}

// readInputFile reads a required input file for a command.
func readInputFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}

// writeResult writes a command result to the output file, or stdout when no
// path is given.
func writeResult(outputPath, result string) error {
	if outputPath == "" {
		fmt.Println(result)
		return nil
	}
	if err := os.WriteFile(outputPath, []byte(result), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
