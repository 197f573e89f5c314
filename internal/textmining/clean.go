package textmining

import (
	"regexp"
	"strings"
)

// nonLetters matches everything that is not a lowercase latin letter,
// a French accented letter or whitespace.
var nonLetters = regexp.MustCompile(`[^a-zàâçéèêëîïôûùüÿñæœ\s]+`)

// Clean lowercases the text and strips digits, punctuation and any other
// non-letter characters, leaving whitespace-separated words suitable for
// counting.
func Clean(text string) string {
	return nonLetters.ReplaceAllString(strings.ToLower(text), "")
}
