package textmining

import (
	"sort"
	"strings"
	"unicode/utf8"

	"macrolens/pkg/contracts/domain"
)

// CountWords tallies the cleaned text into ranked word frequencies,
// dropping stop words and single-letter fragments. Results are ordered by
// descending count, ties broken alphabetically, truncated to maxWords.
func CountWords(cleaned string, maxWords int) []domain.WordCount {
	counts := make(map[string]int)
	for _, word := range strings.Fields(cleaned) {
		if utf8.RuneCountInString(word) < 2 || IsStopword(word) {
			continue
		}
		counts[word]++
	}

	ranked := make([]domain.WordCount, 0, len(counts))
	for word, count := range counts {
		ranked = append(ranked, domain.WordCount{Word: word, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})

	if maxWords > 0 && len(ranked) > maxWords {
		ranked = ranked[:maxWords]
	}
	return ranked
}
