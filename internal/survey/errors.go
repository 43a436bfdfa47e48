package survey

import (
	"fmt"
	"strings"
)

// ValidationError reports why an answer set cannot be classified
type ValidationError struct {
	Missing []string // question ids without an answer, in questionnaire order
	Invalid []string // question ids answered with a value outside the two options
	Unknown []string // ids that are not part of the questionnaire
}

func (e *ValidationError) empty() bool {
	return len(e.Missing) == 0 && len(e.Invalid) == 0 && len(e.Unknown) == 0
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, 3)
	if len(e.Missing) > 0 {
		parts = append(parts, "missing answers: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid answers: "+strings.Join(e.Invalid, ", "))
	}
	if len(e.Unknown) > 0 {
		parts = append(parts, "unknown questions: "+strings.Join(e.Unknown, ", "))
	}
	return fmt.Sprintf("incomplete answer set: %s", strings.Join(parts, "; "))
}

// PatternError represents a malformed choice pattern
type PatternError struct {
	Pattern string
	Message string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid choice pattern %q: %s", e.Pattern, e.Message)
}
