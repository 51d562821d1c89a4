package actions

import (
	"regexp"
	"strings"
)

// FallbackName is used when no candidate name can be derived from the CV text.
const FallbackName = "The Candidate"

// emailLocalPattern matches the local part of an "Email: local@domain" line.
var emailLocalPattern = regexp.MustCompile(`(?i)Email:\s*([\w.-]+)@`)

// roleKeywords disqualify an email local part from being used as a name.
var roleKeywords = []string{"info", "contact", "admin", "cv", "resume"}

// CandidateName derives the candidate's name from raw CV text.
// The first line containing no '|', '@' or ':' and fewer than 5 words wins.
// Failing that, the local part of an "Email:" line is title-cased, unless it
// looks like a role account. Returns FallbackName when both heuristics fail.
func CandidateName(cvText string) string {
	for _, line := range strings.Split(cvText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.ContainsAny(line, "|@:") {
			continue
		}
		if len(strings.Fields(line)) < 5 {
			return line
		}
	}

	if match := emailLocalPattern.FindStringSubmatch(cvText); match != nil {
		name := strings.NewReplacer(".", " ", "-", " ").Replace(match[1])
		name = titleCase(name)
		if len(strings.Fields(name)) <= 3 && !containsRoleKeyword(name) {
			return name
		}
	}

	return FallbackName
}

// titleCase capitalizes the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}

func containsRoleKeyword(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range roleKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
