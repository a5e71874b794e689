package domain

import (
	"strings"
)

// NormalizeWord prepares a spreadsheet cell for storage in a record:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//
// Inner whitespace, diacritics, hyphens, and apostrophes are preserved.
func NormalizeWord(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	return strings.ToLower(text)
}
