package main

import (
	"strings"
	"testing"
)

func seedHistory(t *testing.T, env *cliTestEnv) {
	t.Helper()
	for _, fragments := range [][]string{
		{"Lovely", "Training", "Weather"},
		{"Training", "Camp"},
	} {
		args := append([]string{"match"}, fragments...)
		if out, err := runCLI(t, env, args...); err != nil {
			t.Fatalf("seed match %v: %v\n%s", fragments, err, out)
		}
	}
}

func TestHistoryListAndSearch(t *testing.T) {
	env := setupCLITestEnv(t)
	seedHistory(t, env)

	out, err := runCLI(t, env, "history", "list")
	if err != nil {
		t.Fatalf("history list: %v\n%s", err, out)
	}
	requireContains(t, out, "Lovely Training Weather")
	requireContains(t, out, "Training Camp")

	out, err = runCLI(t, env, "history", "list", "--search", "camp")
	if err != nil {
		t.Fatalf("history search: %v\n%s", err, out)
	}
	requireContains(t, out, "Training Camp")
	if strings.Contains(out, "Lovely Training Weather") {
		t.Errorf("search leaked unrelated entry:\n%s", out)
	}
}

func TestHistoryStats(t *testing.T) {
	env := setupCLITestEnv(t)
	seedHistory(t, env)

	out, err := runCLI(t, env, "history", "stats")
	if err != nil {
		t.Fatalf("history stats: %v\n%s", err, out)
	}
	requireContains(t, out, "Total matches: 2")
	requireContains(t, out, "Silence Suzuka: 1")
	requireContains(t, out, "Fine Motion: 1")
}

func TestHistoryClearRequiresForce(t *testing.T) {
	env := setupCLITestEnv(t)
	seedHistory(t, env)

	if _, err := runCLI(t, env, "history", "clear"); err == nil {
		t.Fatal("history clear without --force should fail")
	}

	out, err := runCLI(t, env, "history", "clear", "--force")
	if err != nil {
		t.Fatalf("history clear: %v\n%s", err, out)
	}
	requireContains(t, out, "Removed 2 entries")

	out, err = runCLI(t, env, "history", "list")
	if err != nil {
		t.Fatalf("history list: %v\n%s", err, out)
	}
	requireContains(t, out, "No recorded matches")
}
