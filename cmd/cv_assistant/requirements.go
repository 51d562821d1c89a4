package main

import (
	"fmt"

	"github.com/jonathan/cv-assistant/internal/actions"
	"github.com/spf13/cobra"
)

var (
	requirementsInputFile  string
	requirementsOutputFile string
)

var requirementsCmd = &cobra.Command{
	Use:   "requirements",
	Short: "Extract key requirements from a job description",
	Long:  "Lists the key requirements of a job description as concise bullet points.",
	RunE:  runRequirements,
}

func init() {
	requirementsCmd.Flags().StringVarP(&requirementsInputFile, "in", "i", "", "Path to job description text file (required)")
	requirementsCmd.Flags().StringVarP(&requirementsOutputFile, "out", "o", "", "Path to output file (default: stdout)")

	if err := requirementsCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(requirementsCmd)
}

func runRequirements(cmd *cobra.Command, _ []string) error {
	jobText, err := readInputFile(requirementsInputFile)
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

	result := actions.NewLibrary(client).ExtractKeyRequirements(cmd.Context(), jobText)
	if actions.IsErrorReply(result) {
		return fmt.Errorf("%s", result)
	}

	return writeResult(requirementsOutputFile, result)
}
