package main

import (
	"fmt"

	"github.com/jonathan/cv-assistant/internal/actions"
	"github.com/jonathan/cv-assistant/internal/render"
	"github.com/spf13/cobra"
)

var (
	improveInputFile  string
	improveOutputFile string
	improvePDF        bool
	improveOutputDir  string
)

var improveCmd = &cobra.Command{
	Use:   "improve",
	Short: "Improve a CV",
	Long:  "Rewrites a CV with professional wording and consistent Markdown formatting, optionally rendering the result to PDF.",
	RunE:  runImprove,
}

func init() {
	improveCmd.Flags().StringVarP(&improveInputFile, "in", "i", "", "Path to CV text file (required)")
	improveCmd.Flags().StringVarP(&improveOutputFile, "out", "o", "", "Path to output file (default: stdout)")
	improveCmd.Flags().BoolVar(&improvePDF, "pdf", false, "Also render the improved CV to PDF")
	improveCmd.Flags().StringVar(&improveOutputDir, "output-dir", "", "Directory for the generated PDF (overrides config)")

	if err := improveCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(improveCmd)
}

func runImprove(cmd *cobra.Command, _ []string) error {
	text, err := readInputFile(improveInputFile)
	if err != nil {
		return err
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	client, err := newGatewayClient(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	result := actions.NewLibrary(client).ImproveCV(cmd.Context(), text)
	if actions.IsErrorReply(result) {
		return fmt.Errorf("%s", result)
	}

	if err := writeResult(improveOutputFile, result); err != nil {
		return err
	}

	if improvePDF {
		outputDir := cfg.OutputDir
		if improveOutputDir != "" {
			outputDir = improveOutputDir
		}
		renderer := render.NewRenderer(outputDir)
		renderer.Verbose = cfg.Verbose

		pdfPath, err := renderer.RenderPDF(cmd.Context(), result)
		if err != nil {
			return fmt.Errorf("failed to render PDF: %w", err)
		}
		fmt.Printf("PDF written to %s\n", pdfPath)
	}

	return nil
}
