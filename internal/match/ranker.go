package match

import (
	"sort"

	"umascan/internal/corpus"
	"umascan/internal/textutil"
)

// Candidate is one ranked event-name key with its similarity score.
type Candidate struct {
	Key   string `json:"key"`
	Score int    `json:"score"`
}

// Rank scores the corrected query against every event-name key in the index
// and returns the candidates at or above the threshold, best first, capped
// at limit. Ties keep the index's key insertion order, so results are
// deterministic for a given index build.
//
// Raising the threshold can only shrink the result set.
func Rank(query string, idx *corpus.Index, threshold, limit int) []Candidate {
	if query == "" || idx.KeyCount() == 0 || limit <= 0 {
		return nil
	}

	var candidates []Candidate
	for _, key := range idx.Keys() {
		score := textutil.TokenSetRatio(query, key)
		if score < threshold {
			continue
		}
		candidates = append(candidates, Candidate{Key: key, Score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}
