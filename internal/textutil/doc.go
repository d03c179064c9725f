// Package textutil provides text processing utilities for event name
// normalization, tokenization, and string similarity.
//
// The primary use cases are:
//   - Canonicalizing OCR text and event display names into a comparison form
//   - Computing 0-100 edit-similarity ratios between strings
//   - Computing order-insensitive token-set similarity between phrases
//
// Normalization lowercases text, removes decorative UI markers and
// diacritics, strips punctuation while preserving spaces, and collapses
// whitespace. The resulting form is used purely as a lookup key and is never
// shown to users.
package textutil
