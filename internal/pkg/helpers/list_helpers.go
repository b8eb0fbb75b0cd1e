package helpers

import "strings"

// ParseCommaList splits a comma-separated string into an ordered slice of
// trimmed, non-empty tokens. An empty input yields an empty slice, never nil,
// so the field serialises as [] rather than null.
func ParseCommaList(s string) []string {
	tokens := []string{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}
