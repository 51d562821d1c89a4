package main

import (
	"fmt"

	"github.com/jonathan/cv-assistant/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort      int
	serveModel     string
	serveOutputDir string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for the prompt actions and the conversational CV builder.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveModel, "model", "", "Model identifier (overrides config)")
	serveCmd.Flags().StringVar(&serveOutputDir, "output-dir", "", "Directory for generated PDFs (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveModel != "" {
		cfg.Model = serveModel
	}
	if serveOutputDir != "" {
		cfg.OutputDir = serveOutputDir
	}

	if cfg.APIKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or the config file)")
	}

	srv, err := server.New(server.Config{
		Port:      cfg.Port,
		APIKey:    cfg.APIKey,
		Model:     cfg.Model,
		OutputDir: cfg.OutputDir,
		Verbose:   cfg.Verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
