package agent

import (
	"fmt"
	"regexp"
	"strings"
)

// FallbackTitle is used when no job title can be matched in the model's
// posting analysis.
const FallbackTitle = "target role"

// titlePattern matches the title field in a JSON-shaped analysis reply.
// The reply is free text that usually resembles JSON, so fields are fished
// out by regex instead of full JSON parsing.
var titlePattern = regexp.MustCompile(`"title":\s*"([^"]+)"`)

// parseJobTitle extracts the job title from a posting-analysis reply,
// falling back to FallbackTitle when the pattern is absent.
func parseJobTitle(reply string) string {
	if match := titlePattern.FindStringSubmatch(reply); match != nil {
		return match[1]
	}
	return FallbackTitle
}

// experienceAnalysis holds the completeness verdict for one experience entry.
// Defaults favor forward progress: an unparseable reply never stalls the
// conversation on endless clarification.
type experienceAnalysis struct {
	IsComplete       bool
	IsRelevant       bool
	NeedsMoreDetails bool
}

// defaultExperienceAnalysis is substituted whenever the analysis reply cannot
// be obtained or parsed.
func defaultExperienceAnalysis() experienceAnalysis {
	return experienceAnalysis{
		IsComplete:       true,
		IsRelevant:       true,
		NeedsMoreDetails: false,
	}
}

// parseExperienceAnalysis extracts the three boolean verdicts from a
// JSON-shaped analysis reply, substituting the documented default for any
// field whose pattern is absent.
func parseExperienceAnalysis(reply string) experienceAnalysis {
	defaults := defaultExperienceAnalysis()
	return experienceAnalysis{
		IsComplete:       parseBoolField(reply, "is_complete", defaults.IsComplete),
		IsRelevant:       parseBoolField(reply, "is_relevant", defaults.IsRelevant),
		NeedsMoreDetails: parseBoolField(reply, "needs_more_details", defaults.NeedsMoreDetails),
	}
}

// parseBoolField fishes a single boolean field out of a JSON-shaped reply.
func parseBoolField(reply, field string, fallback bool) bool {
	pattern := regexp.MustCompile(fmt.Sprintf(`(?i)"%s":\s*(true|false)`, regexp.QuoteMeta(field)))
	if match := pattern.FindStringSubmatch(reply); match != nil {
		return strings.EqualFold(match[1], "true")
	}
	return fallback
}
