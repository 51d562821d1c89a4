package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
	}{
		{
			name:     "Bold section titles become strong tags",
			input:    "**PERSONAL INFORMATION**\nJane Smith",
			contains: []string{"<strong>PERSONAL INFORMATION</strong>"},
		},
		{
			name:     "Bullet list",
			input:    "- Go\n- SQL",
			contains: []string{"<ul>", "<li>Go</li>", "<li>SQL</li>"},
		},
		{
			name:     "Single newlines become line breaks",
			input:    "line one\nline two",
			contains: []string{"<br>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := ToHTML(tt.input)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, html, want)
			}
		})
	}
}

func TestBuildDocument(t *testing.T) {
	doc, err := BuildDocument("**Jane Smith**\n\n**WORK EXPERIENCE**\n- 3 years at Initech")
	require.NoError(t, err)

	assert.Contains(t, doc, "<!DOCTYPE html>")
	assert.Contains(t, doc, `<div class="cv-header"><h1 class="name">Jane Smith</h1></div>`)
	assert.Contains(t, doc, "3 years at Initech")
}

func TestBuildDocumentEscapesHeader(t *testing.T) {
	doc, err := BuildDocument("<script>alert(1)</script>\ncontent")
	require.NoError(t, err)

	// The header is plain text and must not survive as live markup.
	assert.NotContains(t, doc, `<h1 class="name"><script>`)
}

func TestHeaderLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Plain first line", "Jane Smith\nmore", "Jane Smith"},
		{"Bold markers stripped", "**Jane Smith**\nmore", "Jane Smith"},
		{"Heading markers stripped", "# Jane Smith", "Jane Smith"},
		{"Leading blank lines skipped", "\n\nJane Smith", "Jane Smith"},
		{"Empty input falls back", "", "Generated CV"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, headerLine(tt.input))
		})
	}
}

func TestNewRendererDefaults(t *testing.T) {
	r := NewRenderer("/tmp/out")
	assert.Equal(t, "/tmp/out", r.OutputDir)
	assert.Equal(t, DefaultTimeout, r.Timeout)
}
