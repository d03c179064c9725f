package textutil

import (
	"math"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Ratio computes a symmetric edit-similarity score between two strings on a
// 0-100 scale. 100 means the strings are identical; 0 means no character
// survives between them. Two empty strings are identical.
func Ratio(a, b string) int {
	if a == b {
		return 100
	}
	longest := len([]rune(a))
	if lb := len([]rune(b)); lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 100
	}
	distance := levenshtein.ComputeDistance(a, b)
	return int(math.Round(100 * (1 - float64(distance)/float64(longest))))
}

// TokenSetRatio scores two phrases by comparing their shared and unique word
// sets, making the result insensitive to token order and to one side carrying
// extra or missing words. Both inputs are expected to be normalized.
//
// The score is the best Ratio among the direct comparison and the standard
// intersection-augmented combinations: (intersection vs intersection+restA),
// (intersection vs intersection+restB), and (intersection+restA vs
// intersection+restB).
func TokenSetRatio(a, b string) int {
	tokensA := Tokenize(a)
	tokensB := Tokenize(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		if len(tokensA) == 0 && len(tokensB) == 0 {
			return 100
		}
		return 0
	}

	setA := uniqueTokens(tokensA)
	setB := uniqueTokens(tokensB)

	var shared, restA, restB []string
	for token := range setA {
		if _, ok := setB[token]; ok {
			shared = append(shared, token)
		} else {
			restA = append(restA, token)
		}
	}
	for token := range setB {
		if _, ok := setA[token]; !ok {
			restB = append(restB, token)
		}
	}
	sort.Strings(shared)
	sort.Strings(restA)
	sort.Strings(restB)

	base := strings.Join(shared, " ")
	combinedA := joinNonEmpty(base, strings.Join(restA, " "))
	combinedB := joinNonEmpty(base, strings.Join(restB, " "))

	best := Ratio(a, b)
	for _, pair := range [][2]string{{base, combinedA}, {base, combinedB}, {combinedA, combinedB}} {
		if score := Ratio(pair[0], pair[1]); score > best {
			best = score
		}
	}
	return best
}

func uniqueTokens(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}

func joinNonEmpty(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " " + b
	}
}
