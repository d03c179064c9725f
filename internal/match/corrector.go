package match

import (
	"umascan/internal/corpus"
	"umascan/internal/textutil"
)

// CorrectToken repairs a single OCR token against the corpus vocabulary.
// In-vocabulary tokens pass through untouched (the common path). Otherwise
// the nearest vocabulary token by edit similarity wins, provided it clears
// the threshold; below the threshold the original token is kept.
//
// The vocabulary iterates in sorted order and only a strictly better score
// replaces the running best, so ties resolve to the lexicographically first
// candidate and the result is deterministic.
func CorrectToken(token string, vocab *corpus.Vocabulary, threshold int) string {
	if token == "" || vocab.Contains(token) {
		return token
	}
	best := token
	bestScore := -1
	for _, candidate := range vocab.Tokens() {
		if score := textutil.Ratio(token, candidate); score > bestScore {
			bestScore = score
			best = candidate
		}
	}
	if bestScore >= threshold {
		return best
	}
	return token
}

// correctTokens repairs each token once, keeping correction cost linear in
// query length rather than query length times corpus size.
func correctTokens(tokens []string, vocab *corpus.Vocabulary, threshold int) []string {
	if len(tokens) == 0 {
		return nil
	}
	corrected := make([]string, len(tokens))
	for i, token := range tokens {
		corrected[i] = CorrectToken(token, vocab, threshold)
	}
	return corrected
}
