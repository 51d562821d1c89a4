package main

import (
	"fmt"

	"github.com/jonathan/cv-assistant/internal/actions"
	"github.com/spf13/cobra"
)

var (
	coverLetterCVFile     string
	coverLetterJobFile    string
	coverLetterOutputFile string
)

var coverLetterCmd = &cobra.Command{
	Use:   "cover-letter",
	Short: "Generate a cover letter",
	Long:  "Writes a concise, enthusiastic cover letter tailored to a job description, signed with the candidate name found in the CV.",
	RunE:  runCoverLetter,
}

func init() {
	coverLetterCmd.Flags().StringVar(&coverLetterCVFile, "cv", "", "Path to CV text file (required)")
	coverLetterCmd.Flags().StringVar(&coverLetterJobFile, "job", "", "Path to job description text file (required)")
	coverLetterCmd.Flags().StringVarP(&coverLetterOutputFile, "out", "o", "", "Path to output file (default: stdout)")

	if err := coverLetterCmd.MarkFlagRequired("cv"); err != nil {
		panic(fmt.Sprintf("failed to mark cv flag as required: %v", err))
	}
	if err := coverLetterCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(coverLetterCmd)
}

func runCoverLetter(cmd *cobra.Command, _ []string) error {
	cvText, err := readInputFile(coverLetterCVFile)
	if err != nil {
		return err
	}
	jobText, err := readInputFile(coverLetterJobFile)
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

	result := actions.NewLibrary(client).CoverLetter(cmd.Context(), cvText, jobText)
	if actions.IsErrorReply(result) {
		return fmt.Errorf("%s", result)
	}

	return writeResult(coverLetterOutputFile, result)
}
