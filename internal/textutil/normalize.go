package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// markerReplacer removes decorative glyphs the game UI attaches to event
// titles (chain-event arrows, musical notes, heart/star flourishes). The
// parenthesized arrow is listed first so it is removed as a unit.
var markerReplacer = strings.NewReplacer(
	"(❯)", "",
	"❯", "",
	"♪", "",
	"♫", "",
	"♥", "",
	"♡", "",
	"☆", "",
	"★", "",
	"→", "",
	"⇒", "",
	"…", "",
)

// diacriticStripper decomposes characters and drops combining marks, so
// "Café" compares equal to "Cafe".
var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize converts raw text into the canonical comparison form: lowercase,
// decorative markers removed, diacritics stripped, punctuation dropped while
// spaces survive, consecutive whitespace collapsed, ends trimmed.
//
// Normalize is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	lowered := strings.ToLower(text)
	lowered = markerReplacer.Replace(lowered)
	if stripped, _, err := transform.String(diacriticStripper, lowered); err == nil {
		lowered = stripped
	}

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenize splits an already-normalized string on whitespace. Empty input
// yields a nil slice.
func Tokenize(s string) []string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil
	}
	return fields
}
