package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/cv-assistant/internal/agent"
	"github.com/jonathan/cv-assistant/internal/assembler"
	"github.com/jonathan/cv-assistant/internal/render"
	"github.com/spf13/cobra"
)

var (
	agentJobFile   string
	agentOutputDir string
)

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Build a CV through a guided conversation",
	Long:  "Runs an interactive conversation that collects personal information, work experience, education, and skills, then assembles a CV tailored to the job posting and renders it to PDF.",
	RunE:  runAgent,
}

func init() {
	agentCmd.Flags().StringVar(&agentJobFile, "job", "", "Path to job posting text file (required)")
	agentCmd.Flags().StringVar(&agentOutputDir, "output-dir", "", "Directory for the generated PDF (overrides config)")

	if err := agentCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(agentCmd)
}

func runAgent(cmd *cobra.Command, _ []string) error {
	jobText, err := readInputFile(agentJobFile)
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

	a := agent.New(client)

	// First turn analyzes the posting before any user input.
	msg, session, done := a.Turn(cmd.Context(), jobText, "", nil)
	if session == nil {
		return fmt.Errorf("%s", msg)
	}
	fmt.Printf("\nAssistant: %s\n", msg)

	scanner := bufio.NewScanner(os.Stdin)
	for !done {
		fmt.Print("\nYou: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			return fmt.Errorf("conversation aborted")
		}
		reply := strings.TrimSpace(scanner.Text())
		if reply == "" {
			continue
		}

		var updated *agent.Session
		msg, updated, done = a.Turn(cmd.Context(), jobText, reply, session)
		if updated == nil {
			return fmt.Errorf("%s", msg)
		}
		session = updated
		fmt.Printf("\nAssistant: %s\n", msg)
	}

	cvText, err := assembler.Assemble(cmd.Context(), client, session)
	if err != nil {
		return fmt.Errorf("failed to assemble CV: %w", err)
	}

	outputDir := cfg.OutputDir
	if agentOutputDir != "" {
		outputDir = agentOutputDir
	}
	renderer := render.NewRenderer(outputDir)
	renderer.Verbose = cfg.Verbose

	pdfPath, err := renderer.RenderPDF(cmd.Context(), cvText)
	if err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}

	fmt.Printf("\nPDF written to %s\n", pdfPath)
	return nil
}
