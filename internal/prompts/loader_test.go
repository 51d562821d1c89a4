package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	ClearCache()

	prompt, err := Get("actions.json", "summarize")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.Text}}")
	assert.Contains(t, prompt, "CONCISE SUMMARY")
}

func TestGetMissingKey(t *testing.T) {
	_, err := Get("actions.json", "does-not-exist")
	assert.Error(t, err)
}

func TestGetMissingFile(t *testing.T) {
	_, err := Get("nope.json", "summarize")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	template := "Hello {{.Name}}, applying for {{.Title}}"
	result := Format(template, map[string]string{
		"Name":  "Jane",
		"Title": "Engineer",
	})
	assert.Equal(t, "Hello Jane, applying for Engineer", result)
}

func TestAllPromptFilesParse(t *testing.T) {
	ClearCache()

	for _, filename := range []string{"actions.json", "agent.json", "assembler.json"} {
		keys, err := List(filename)
		require.NoError(t, err, filename)
		assert.NotEmpty(t, keys, filename)
	}
}

func TestAgentPromptsHavePlaceholders(t *testing.T) {
	tests := []struct {
		key         string
		placeholder string
	}{
		{"analyze-posting", "{{.JobText}}"},
		{"extract-name", "{{.Text}}"},
		{"extract-email", "{{.Text}}"},
		{"extract-phone", "{{.Text}}"},
		{"analyze-experience", "{{.JobTitle}}"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			prompt := MustGet("agent.json", tt.key)
			assert.Contains(t, prompt, tt.placeholder)
		})
	}
}
