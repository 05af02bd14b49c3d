package internal

import "strings"

// Score computes the lexical overlap between a query and a text: the fraction
// of the query's unique words that also appear in the text. Both strings are
// lower-cased and whitespace-tokenized; duplicate words count once. The
// denominator is deliberately the query's word count only, so a long text
// matching a few query words still scores on query coverage.
func Score(query, text string) float64 {
	queryWords := wordSet(query)
	if len(queryWords) == 0 {
		return 0
	}
	textWords := wordSet(text)

	common := 0
	for word := range queryWords {
		if textWords[word] {
			common++
		}
	}
	return float64(common) / float64(len(queryWords))
}

func wordSet(s string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(s)) {
		words[w] = true
	}
	return words
}
