package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidateName(t *testing.T) {
	tests := []struct {
		name     string
		cvText   string
		expected string
	}{
		{
			name:     "First short line wins over email",
			cvText:   "Jane Smith\nEmail: jane.smith@co.com\nPhone: 555-1234",
			expected: "Jane Smith",
		},
		{
			name:     "Email local part when no qualifying line",
			cvText:   "Senior Engineer | 10 years | Backend: Go, Python\nEmail: jane.smith@co.com",
			expected: "Jane Smith",
		},
		{
			name:     "Role account email rejected",
			cvText:   "Senior Engineer | 10 years | Backend: Go, Python\nEmail: info@co.com",
			expected: FallbackName,
		},
		{
			name:     "Hyphenated email local part",
			cvText:   "Contact: see below\nEmail: mary-anne.jones@example.org",
			expected: "Mary Anne Jones",
		},
		{
			name:     "Long first line skipped",
			cvText:   "Experienced software engineer with a decade of work\nBob Lee\nEmail: b@x.com",
			expected: "Bob Lee",
		},
		{
			name:     "Empty input",
			cvText:   "",
			expected: FallbackName,
		},
		{
			name:     "Too many email words rejected",
			cvText:   "A | B\nEmail: one.two.three.four@x.com",
			expected: FallbackName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CandidateName(tt.cvText))
		})
	}
}
