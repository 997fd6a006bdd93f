package domain

import (
	"strings"
)

// CleanWord prepares a generated word for pooling:
//   - trims leading/trailing whitespace
//   - compresses runs of whitespace into a single space
//
// Case, hyphens, and apostrophes are preserved so the word is shown to
// players exactly as generated.
func CleanWord(word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(word))
	prevSpace := false
	for _, r := range word {
		if r == ' ' || r == '\t' {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
