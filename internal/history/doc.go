// Package history persists match outcomes to SQLite so past scans can be
// reviewed, searched, and summarized after the fact.
package history
