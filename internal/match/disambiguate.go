package match

import (
	"umascan/internal/corpus"
	"umascan/internal/session"
)

// Disambiguate picks one variant from a set sharing the same display name.
//
// With an owner filter, the choice narrows to variants sourced from that
// owner; if none qualify the full set stays in play rather than dropping the
// match. Within the working set the variant whose owners have been confirmed
// most often this session wins, ties going to the first variant in corpus
// order. The tracker is read, never mutated; incrementing it after a
// confirmed match is the caller's job.
func Disambiguate(variants []*corpus.Variant, ownerFilter string, freq *session.FrequencyTracker) *corpus.Variant {
	switch len(variants) {
	case 0:
		return nil
	case 1:
		return variants[0]
	}

	working := variants
	if ownerFilter != "" {
		var filtered []*corpus.Variant
		for _, v := range variants {
			if v.HasSource(ownerFilter) {
				filtered = append(filtered, v)
			}
		}
		if len(filtered) > 0 {
			working = filtered
		}
	}

	best := working[0]
	bestScore := frequencyScore(best, freq)
	for _, v := range working[1:] {
		if score := frequencyScore(v, freq); score > bestScore {
			best = v
			bestScore = score
		}
	}
	return best
}

// frequencyScore is the highest session confirmation count among the
// variant's owners; 0 when the variant has no owners or none were observed.
func frequencyScore(v *corpus.Variant, freq *session.FrequencyTracker) int {
	score := 0
	for _, src := range v.Sources {
		if count := freq.Count(src.Name); count > score {
			score = count
		}
	}
	return score
}
