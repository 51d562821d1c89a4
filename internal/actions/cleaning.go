package actions

import "strings"

// greetingMarkers mark the first line of the letter body. Anything the model
// emitted before a formal greeting (headers, notes, addresses) is discarded.
var greetingMarkers = []string{"dear", "to the attention"}

// namePlaceholder is the literal token models emit despite being told not to.
const namePlaceholder = "[Your Name]"

// CleanCoverLetter trims a raw model reply down to the letter body.
// Lines before the first formal greeting are dropped, as are bracketed
// placeholder lines like "[Greeting]". If candidateName was independently
// determined, any literal "[Your Name]" token is substituted with it.
func CleanCoverLetter(reply, candidateName string) string {
	var finalLines []string
	inBody := false

	for _, line := range strings.Split(strings.TrimSpace(reply), "\n") {
		stripped := strings.TrimSpace(line)
		if startsWithGreeting(stripped) {
			inBody = true
		}
		if !inBody {
			continue
		}
		if strings.HasPrefix(stripped, "[") && strings.HasSuffix(stripped, "]") {
			continue
		}
		// Skip leading blank lines until the body has content
		if stripped != "" || len(finalLines) > 0 {
			finalLines = append(finalLines, line)
		}
	}

	cleaned := strings.TrimSpace(strings.Join(finalLines, "\n"))

	if candidateName != FallbackName {
		cleaned = strings.ReplaceAll(cleaned, namePlaceholder, candidateName)
	}

	return cleaned
}

func startsWithGreeting(line string) bool {
	lower := strings.ToLower(line)
	for _, marker := range greetingMarkers {
		if strings.HasPrefix(lower, marker) {
			return true
		}
	}
	return false
}
