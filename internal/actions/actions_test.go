package actions

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// MockLLMClient implements llm.Client for testing
type MockLLMClient struct {
	CompleteFunc func(ctx context.Context, prompt string) (string, error)
}

func (m *MockLLMClient) Complete(ctx context.Context, prompt string) (string, error) {
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, prompt)
	}
	return "", nil
}

func (m *MockLLMClient) Model() string { return "mock-model" }

func (m *MockLLMClient) Close() error { return nil }

func TestSummarize(t *testing.T) {
	var capturedPrompt string
	lib := NewLibrary(&MockLLMClient{
		CompleteFunc: func(_ context.Context, prompt string) (string, error) {
			capturedPrompt = prompt
			return "  A short summary.  ", nil
		},
	})

	result := lib.Summarize(context.Background(), "A very long job posting about Go.")

	assert.Equal(t, "A short summary.", result)
	assert.Contains(t, capturedPrompt, "A very long job posting about Go.")
	assert.Contains(t, capturedPrompt, "CONCISE SUMMARY")
}

func TestSummarizeEmptyInput(t *testing.T) {
	lib := NewLibrary(&MockLLMClient{})
	result := lib.Summarize(context.Background(), "   ")
	assert.True(t, IsErrorReply(result))
}

func TestSummarizeUpstreamFailure(t *testing.T) {
	lib := NewLibrary(&MockLLMClient{
		CompleteFunc: func(_ context.Context, _ string) (string, error) {
			return "", errors.New("quota exceeded")
		},
	})

	result := lib.Summarize(context.Background(), "some text")

	assert.True(t, IsErrorReply(result))
	assert.Contains(t, result, "quota exceeded")
}

func TestExtractKeyRequirements(t *testing.T) {
	lib := NewLibrary(&MockLLMClient{
		CompleteFunc: func(_ context.Context, prompt string) (string, error) {
			assert.Contains(t, prompt, "Technical skills")
			return "- Technical skills: Go, SQL", nil
		},
	})

	result := lib.ExtractKeyRequirements(context.Background(), "We need a Go developer.")
	assert.Equal(t, "- Technical skills: Go, SQL", result)
}

func TestCoverLetterRequiresBothInputs(t *testing.T) {
	lib := NewLibrary(&MockLLMClient{})

	assert.Equal(t, "Error: Both your CV and the job description are required.",
		lib.CoverLetter(context.Background(), "", "job text"))
	assert.Equal(t, "Error: Both your CV and the job description are required.",
		lib.CoverLetter(context.Background(), "cv text", "  "))
}

func TestCoverLetterCleansReplyAndSignsWithName(t *testing.T) {
	var capturedPrompt string
	lib := NewLibrary(&MockLLMClient{
		CompleteFunc: func(_ context.Context, prompt string) (string, error) {
			capturedPrompt = prompt
			return "[Note from model]\nDear Hiring Team,\nI fit well.\nSincerely,\n[Your Name]", nil
		},
	})

	cv := "Jane Smith\nEmail: jane.smith@co.com\nPhone: 555-1234"
	result := lib.CoverLetter(context.Background(), cv, "Go developer wanted")

	assert.Contains(t, capturedPrompt, "Jane Smith")
	assert.True(t, strings.HasPrefix(result, "Dear Hiring Team,"))
	assert.NotContains(t, result, "[Note from model]")
	assert.NotContains(t, result, "[Your Name]")
}

func TestImproveCVKeepsMarkdown(t *testing.T) {
	lib := NewLibrary(&MockLLMClient{
		CompleteFunc: func(_ context.Context, _ string) (string, error) {
			return "**EXPERIENCE**\n- Led a team of 4 [Quantify achievement/impact]", nil
		},
	})

	result := lib.ImproveCV(context.Background(), "worked at a company")
	assert.Contains(t, result, "**EXPERIENCE**")
}
