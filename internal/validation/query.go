package validation

import (
	"strings"
	"unicode"
)

// MaxSearchTermRunes bounds the q parameter sent to the search endpoint.
const MaxSearchTermRunes = 256

// SanitizeSearchTerm turns raw search bar input into a single-line query:
// control characters become spaces, runs of spaces collapse, and the result
// is trimmed and cut to MaxSearchTermRunes. A blank result means "no search".
func SanitizeSearchTerm(input string) string {
	var b strings.Builder
	b.Grow(len(input))

	space := true
	n := 0
	for _, r := range input {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			r = ' '
		}
		if r == ' ' {
			if space {
				continue
			}
			space = true
		} else {
			space = false
		}

		if n == MaxSearchTermRunes {
			break
		}
		b.WriteRune(r)
		n++
	}

	return strings.TrimSpace(b.String())
}
