// Package actions provides the one-shot text transformations offered to the
// user: summarizing postings, improving CV sections, extracting requirements,
// and generating cover letters. Each action embeds its input into a fixed
// instruction template, calls the model gateway, and lightly post-processes
// the reply. Gateway failures are returned as user-visible "Error ..." strings
// rather than Go errors, so every call site yields something displayable.
package actions

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/cv-assistant/internal/llm"
	"github.com/jonathan/cv-assistant/internal/prompts"
)

// Library bundles the prompt-template actions around a shared gateway client.
type Library struct {
	client llm.Client
}

// NewLibrary creates a Library using the given gateway client.
func NewLibrary(client llm.Client) *Library {
	return &Library{client: client}
}

// Summarize produces a concise summary of the given text.
func (l *Library) Summarize(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		return "Error: Input text is required."
	}

	prompt := prompts.Format(prompts.MustGet("actions.json", "summarize"), map[string]string{
		"Text": text,
	})

	reply, err := l.client.Complete(ctx, prompt)
	if err != nil {
		return fmt.Sprintf("Error processing text: %v", err)
	}
	return strings.TrimSpace(reply)
}

// ImproveCV rewrites a CV section to be more impactful, preserving the
// original language. The reply keeps Markdown emphasis markers for rendering.
func (l *Library) ImproveCV(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		return "Error: Input text is required."
	}

	prompt := prompts.Format(prompts.MustGet("actions.json", "improve-cv"), map[string]string{
		"Text": text,
	})

	reply, err := l.client.Complete(ctx, prompt)
	if err != nil {
		return fmt.Sprintf("Error processing text: %v", err)
	}
	return strings.TrimSpace(reply)
}

// ExtractKeyRequirements lists the key skills, qualifications and
// requirements from a job posting in a structured category format.
func (l *Library) ExtractKeyRequirements(ctx context.Context, jobText string) string {
	if strings.TrimSpace(jobText) == "" {
		return "Error: Job posting text is required."
	}

	prompt := prompts.Format(prompts.MustGet("actions.json", "extract-requirements"), map[string]string{
		"Text": jobText,
	})

	reply, err := l.client.Complete(ctx, prompt)
	if err != nil {
		return fmt.Sprintf("Error while extracting key requirements: %v", err)
	}
	return reply
}

// CoverLetter generates the body of a formal cover letter from a CV and a
// job posting. The candidate name is derived from the CV text up front so the
// prompt can instruct the model to sign with it, and the reply is cleaned of
// headers and placeholder lines.
func (l *Library) CoverLetter(ctx context.Context, cvText, jobText string) string {
	if strings.TrimSpace(cvText) == "" || strings.TrimSpace(jobText) == "" {
		return "Error: Both your CV and the job description are required."
	}

	candidateName := CandidateName(cvText)

	prompt := prompts.Format(prompts.MustGet("actions.json", "cover-letter"), map[string]string{
		"CVText":        cvText,
		"JobText":       jobText,
		"CandidateName": candidateName,
	})

	reply, err := l.client.Complete(ctx, prompt)
	if err != nil {
		return fmt.Sprintf("Error generating cover letter: %v", err)
	}

	return CleanCoverLetter(reply, candidateName)
}

// IsErrorReply reports whether an action result is an error string rather
// than model output. Callers that need to branch on failure check this.
func IsErrorReply(reply string) bool {
	return strings.HasPrefix(reply, "Error")
}
