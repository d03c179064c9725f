// Package match turns noisy OCR text fragments into a single canonical game
// event.
//
// A query flows through a fixed pipeline: the fragments are joined and
// normalized, the alias table is consulted for known problem phrases,
// out-of-vocabulary tokens are repaired against the corpus vocabulary,
// candidate event names are ranked by token-set similarity, and when the
// best key carries several variants (same title, different owners) one is
// picked using an optional owner filter and observed session frequency.
//
// Every step is a pure function over the immutable corpus snapshot; the only
// state the Engine owns is the snapshot pointer, which Reload replaces
// atomically so concurrent matches never observe a half-built index.
// Failing to match is a first-class result, not an error.
package match
