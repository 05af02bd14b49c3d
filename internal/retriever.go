package internal

import "sort"

// retrievalThreshold is the minimum score a hit must exceed to be returned.
const retrievalThreshold = 0.1

// Retrieve scores every description against the query and returns up to k
// hits with score above the threshold, highest first. Ties keep their
// original relative order. When nothing clears the threshold but data exists,
// the very first record is returned with a synthetic threshold score, so
// callers always have context to answer from. An empty store yields no hits.
func Retrieve(transactions []Transaction, descriptions []string, query string, k int) []RetrievalHit {
	if len(transactions) == 0 {
		return nil
	}

	scores := make([]float64, len(descriptions))
	indices := make([]int, len(descriptions))
	for i, d := range descriptions {
		scores[i] = Score(query, d)
		indices[i] = i
	}

	// Many scores tie (most at zero), so the sort must be stable to keep
	// insertion order among equals.
	sort.SliceStable(indices, func(a, b int) bool {
		return scores[indices[a]] > scores[indices[b]]
	})

	if k > len(indices) {
		k = len(indices)
	}

	var hits []RetrievalHit
	for _, idx := range indices[:k] {
		if scores[idx] > retrievalThreshold {
			hits = append(hits, RetrievalHit{
				Text:        descriptions[idx],
				Transaction: transactions[idx],
				Score:       scores[idx],
			})
		}
	}

	if len(hits) == 0 {
		return []RetrievalHit{{
			Text:        descriptions[0],
			Transaction: transactions[0],
			Score:       retrievalThreshold,
		}}
	}
	return hits
}
