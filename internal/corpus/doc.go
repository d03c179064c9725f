// Package corpus loads game event definitions and their owner associations
// into an immutable, queryable index.
//
// A corpus document carries three owner sections (characters, support cards,
// scenarios), each owner holding nested event-id groupings, plus one events
// section listing the event definitions themselves. Loading flattens the
// owner groupings, inverts them into an event-id to owners map, validates
// each event entry, and appends one variant per entry under its normalized
// display-name key. Several variants may share a key; they differ in owners
// and effects.
//
// Index/vocabulary pairs are built together and never mutated after a build.
// Reloading produces a fresh Snapshot that callers publish atomically.
package corpus
