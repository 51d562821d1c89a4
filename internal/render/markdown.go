// Package render converts assembled Markdown CVs into styled HTML and PDF
// files. It is the presentation boundary: callers hand it text and get back
// a filesystem path or a failure.
package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

//go:embed template.html
var documentTemplate string

// markdown converts CV text to HTML. Hard wraps mirror how the CV text uses
// single newlines between bullet items.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// ToHTML converts Markdown-formatted CV text to an HTML fragment.
func ToHTML(markdownText string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(markdownText), &buf); err != nil {
		return "", fmt.Errorf("markdown conversion failed: %w", err)
	}
	return buf.String(), nil
}

// BuildDocument wraps converted CV content into the full styled HTML page,
// with the candidate header taken from the first line of the source text.
func BuildDocument(markdownText string) (string, error) {
	contentHTML, err := ToHTML(markdownText)
	if err != nil {
		return "", err
	}

	tmpl, err := template.New("document").Parse(documentTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse document template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, map[string]any{
		"Header":  headerLine(markdownText),
		"Content": template.HTML(contentHTML), //nolint:gosec // content is our own converted markdown
	})
	if err != nil {
		return "", fmt.Errorf("failed to execute document template: %w", err)
	}

	return buf.String(), nil
}

// headerLine returns the first non-empty line of the text, stripped of
// Markdown emphasis markers, for use as the document header.
func headerLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.ReplaceAll(line, "*", ""))
		line = strings.TrimSpace(strings.TrimLeft(line, "#"))
		if line != "" {
			return line
		}
	}
	return "Generated CV"
}
