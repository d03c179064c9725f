package main

import (
	"testing"
)

func TestMatchCommandTypoQuery(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, env, "match", "Lovely", "Tralning", "Weather")
	if err != nil {
		t.Fatalf("match: %v\n%s", err, out)
	}
	requireContains(t, out, "Lovely Training Weather")
	requireContains(t, out, "Silence Suzuka")
	requireContains(t, out, "Go all out")
	requireContains(t, out, "Speed +10")
}

func TestMatchCommandNoHit(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, env, "match", "zzzz", "qqqq")
	if err != nil {
		t.Fatalf("match: %v\n%s", err, out)
	}
	requireContains(t, out, "No match")
}

func TestMatchCommandNoFragments(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, err := runCLI(t, env, "match"); err == nil {
		t.Fatal("match with no fragments should fail")
	}
}

func TestMatchCommandOwnerFilter(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, env, "match", "--owner", "c2", "--json", "New", "Year's", "Resolution")
	if err != nil {
		t.Fatalf("match: %v\n%s", err, out)
	}
	requireContains(t, out, `"id": "e11"`)
}

func TestMatchCommandJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, env, "match", "--json", "Training", "Camp")
	if err != nil {
		t.Fatalf("match: %v\n%s", err, out)
	}
	requireContains(t, out, `"matched": true`)
	requireContains(t, out, `"score": 100`)
	requireContains(t, out, "Fine Motion")
}

func TestMatchCommandRecordsHistory(t *testing.T) {
	env := setupCLITestEnv(t)

	if out, err := runCLI(t, env, "match", "Training", "Camp"); err != nil {
		t.Fatalf("match: %v\n%s", err, out)
	}

	out, err := runCLI(t, env, "history", "list")
	if err != nil {
		t.Fatalf("history list: %v\n%s", err, out)
	}
	requireContains(t, out, "Training Camp")
	requireContains(t, out, "Fine Motion")
}

func TestMatchCommandNoHistoryFlag(t *testing.T) {
	env := setupCLITestEnv(t)

	if out, err := runCLI(t, env, "match", "--no-history", "Training", "Camp"); err != nil {
		t.Fatalf("match: %v\n%s", err, out)
	}

	out, err := runCLI(t, env, "history", "list")
	if err != nil {
		t.Fatalf("history list: %v\n%s", err, out)
	}
	requireContains(t, out, "No recorded matches")
}
