// Package assembler builds the final CV document from a completed
// conversation session by issuing one formatting prompt to the model gateway.
package assembler

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/cv-assistant/internal/agent"
	"github.com/jonathan/cv-assistant/internal/llm"
	"github.com/jonathan/cv-assistant/internal/prompts"
)

// entrySeparator joins the raw text blocks collected for one section.
const entrySeparator = "\n"

// IncompleteDataError indicates the assembler was invoked before all data
// groups were populated. Given the state machine's transition rules this is
// a caller contract violation, not a runtime condition.
type IncompleteDataError struct {
	Missing string
}

func (e *IncompleteDataError) Error() string {
	return fmt.Sprintf("incomplete session data: missing %s", e.Missing)
}

// Assemble builds one prompt from all collected session data and returns the
// gateway's Markdown-formatted CV unmodified; downstream rendering tolerates
// the raw emphasis markers.
func Assemble(ctx context.Context, client llm.Client, session *agent.Session) (string, error) {
	if session == nil {
		return "", &IncompleteDataError{Missing: "session"}
	}
	if err := checkComplete(session); err != nil {
		return "", err
	}

	prompt := prompts.Format(prompts.MustGet("assembler.json", "build-cv"), map[string]string{
		"Name":       session.Personal.Name,
		"Email":      session.Personal.Email,
		"Phone":      session.Personal.Phone,
		"Experience": strings.Join(session.ExperienceEntries, entrySeparator),
		"Education":  strings.Join(session.EducationEntries, entrySeparator),
		"Skills":     strings.Join(session.SkillsEntries, entrySeparator),
	})

	cvText, err := client.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate CV: %w", err)
	}

	return cvText, nil
}

// checkComplete verifies every data group is populated. A finalized session
// always passes; partially collected sessions name the first missing group.
func checkComplete(session *agent.Session) error {
	switch {
	case session.Phase != agent.PhaseFinalized && !session.Complete():
		return &IncompleteDataError{Missing: "one or more data groups"}
	case len(session.ExperienceEntries) == 0:
		return &IncompleteDataError{Missing: "experience entries"}
	case len(session.EducationEntries) == 0:
		return &IncompleteDataError{Missing: "education entries"}
	case len(session.SkillsEntries) == 0:
		return &IncompleteDataError{Missing: "skills entries"}
	}
	return nil
}
