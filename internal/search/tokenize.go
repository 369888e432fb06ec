package search

import (
	"strings"
	"unicode"
)

// tokenize breaks text into lower-cased letter/number runs.
func tokenize(text string) []string {
	var terms []string
	current := strings.Builder{}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			current.WriteRune(unicode.ToLower(r))
		} else if current.Len() > 0 {
			terms = append(terms, current.String())
			current.Reset()
		}
	}

	if current.Len() > 0 {
		terms = append(terms, current.String())
	}

	return terms
}

// matchedRunes returns the rune positions in text covered by any token,
// compared case-insensitively, in ascending order.
func matchedRunes(text string, tokens []string) []int {
	runes := []rune(text)
	lower := make([]rune, len(runes))
	for i, r := range runes {
		lower[i] = unicode.ToLower(r)
	}

	hit := make([]bool, len(runes))
	for _, tok := range tokens {
		t := []rune(tok)
		if len(t) == 0 || len(t) > len(lower) {
			continue
		}
		for i := 0; i+len(t) <= len(lower); i++ {
			if equalRunes(lower[i:i+len(t)], t) {
				for j := i; j < i+len(t); j++ {
					hit[j] = true
				}
			}
		}
	}

	var out []int
	for i, h := range hit {
		if h {
			out = append(out, i)
		}
	}
	return out
}

func equalRunes(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
