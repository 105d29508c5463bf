package domain

import (
	"strings"
)

// NormalizeWord prepares a word for lexicon lookup:
//   - trims leading/trailing whitespace
//   - converts to lowercase
func NormalizeWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// CollapseSpace replaces every run of whitespace (including NBSP and
// newlines) with a single space and trims the ends.
func CollapseSpace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// FirstWord returns the first whitespace-delimited token of label.
// ok is false when label has no tokens.
func FirstWord(label string) (word string, ok bool) {
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return "", false
	}
	return fields[0], true
}

// IsPhrase reports whether text has more than one word, i.e. contains an
// interior space once collapsed.
func IsPhrase(text string) bool {
	return strings.Contains(strings.TrimSpace(text), " ")
}
