package assembler

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/cv-assistant/internal/agent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func completedSession() *agent.Session {
	return &agent.Session{
		Phase:      agent.PhaseFinalized,
		JobPosting: agent.JobPosting{Title: "Go Developer"},
		Personal: agent.PersonalInfo{
			Name:  "Jane Smith",
			Email: "jane@example.com",
			Phone: "555-1234",
		},
		ExperienceEntries: []string{"3 years at Initech", "2 years at Globex"},
		EducationEntries:  []string{"BSc Computer Science, 2015"},
		SkillsEntries:     []string{"Go, SQL, teamwork"},
	}
}

func TestAssemble(t *testing.T) {
	var capturedPrompt string
	client := &MockLLMClient{
		CompleteFunc: func(_ context.Context, prompt string) (string, error) {
			capturedPrompt = prompt
			return "**PERSONAL INFORMATION**\n• Jane Smith", nil
		},
	}

	cvText, err := Assemble(context.Background(), client, completedSession())

	require.NoError(t, err)
	assert.Contains(t, cvText, "PERSONAL INFORMATION")
	// All collected data groups are embedded in the single prompt.
	assert.Contains(t, capturedPrompt, "Jane Smith")
	assert.Contains(t, capturedPrompt, "jane@example.com")
	assert.Contains(t, capturedPrompt, "3 years at Initech\n2 years at Globex")
	assert.Contains(t, capturedPrompt, "BSc Computer Science, 2015")
	assert.Contains(t, capturedPrompt, "Go, SQL, teamwork")
}

func TestAssembleReturnsReplyUnmodified(t *testing.T) {
	raw := "  **CV**  \nwith *markers* untouched\n"
	client := &MockLLMClient{
		CompleteFunc: func(_ context.Context, _ string) (string, error) {
			return raw, nil
		},
	}

	cvText, err := Assemble(context.Background(), client, completedSession())

	require.NoError(t, err)
	assert.Equal(t, raw, cvText)
}

func TestAssembleNilSession(t *testing.T) {
	_, err := Assemble(context.Background(), &MockLLMClient{}, nil)

	var incompleteErr *IncompleteDataError
	require.ErrorAs(t, err, &incompleteErr)
}

func TestAssembleIncompleteSession(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*agent.Session)
	}{
		{"Missing experience", func(s *agent.Session) { s.ExperienceEntries = nil }},
		{"Missing education", func(s *agent.Session) { s.EducationEntries = nil }},
		{"Missing skills", func(s *agent.Session) { s.SkillsEntries = nil }},
		{
			"Mid-conversation session",
			func(s *agent.Session) {
				s.Phase = agent.PhaseCollectingEducation
				s.EducationEntries = nil
				s.SkillsEntries = nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := completedSession()
			tt.mutate(session)

			_, err := Assemble(context.Background(), &MockLLMClient{}, session)

			var incompleteErr *IncompleteDataError
			assert.ErrorAs(t, err, &incompleteErr)
		})
	}
}

func TestAssembleUpstreamFailure(t *testing.T) {
	client := &MockLLMClient{
		CompleteFunc: func(_ context.Context, _ string) (string, error) {
			return "", errors.New("quota exceeded")
		},
	}

	_, err := Assemble(context.Background(), client, completedSession())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}
