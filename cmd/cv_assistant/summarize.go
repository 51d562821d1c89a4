package main

import (
	"fmt"

	"github.com/jonathan/cv-assistant/internal/actions"
	"github.com/spf13/cobra"
)

var (
	summarizeInputFile  string
	summarizeOutputFile string
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Summarize a document",
	Long:  "Produces a summary at roughly a third of the original length, preserving the key points.",
	RunE:  runSummarize,
}

func init() {
	summarizeCmd.Flags().StringVarP(&summarizeInputFile, "in", "i", "", "Path to input text file (required)")
	summarizeCmd.Flags().StringVarP(&summarizeOutputFile, "out", "o", "", "Path to output file (default: stdout)")

	if err := summarizeCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, _ []string) error {
	text, err := readInputFile(summarizeInputFile)
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

	result := actions.NewLibrary(client).Summarize(cmd.Context(), text)
	if actions.IsErrorReply(result) {
		return fmt.Errorf("%s", result)
	}

	return writeResult(summarizeOutputFile, result)
}
