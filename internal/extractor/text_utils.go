package extractor

import "strings"

// collapseWhitespace joins whitespace runs (including non-breaking spaces)
// into single spaces and trims the ends.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// orPlaceholder returns s, or placeholder when s is empty
func orPlaceholder(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}
