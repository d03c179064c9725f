package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testCorpus = `{
  "characters": [
    {"id": "c1", "name": "Silence Suzuka", "eventGroups": [
      {"name": "training", "eventIds": ["e1", "e10"]}
    ]},
    {"id": "c2", "name": "Special Week", "eventGroups": [
      {"name": "training", "eventIds": ["e11"]}
    ]}
  ],
  "supportCards": [
    {"id": "s1", "name": "Fine Motion", "eventGroups": [
      {"name": "support", "eventIds": ["e2"]}
    ]}
  ],
  "scenarios": [],
  "events": [
    {"id": "e1", "event": "(❯) Lovely Training Weather ♪", "type": "trainee", "choices": [
      {"choice": "Go all out", "effect": "Speed +10\nEnergy -10"},
      {"choice": "Take it easy", "effect": "Energy +5"}
    ]},
    {"id": "e2", "event": "Training Camp", "type": "support", "choices": [
      {"choice": "Join in", "effect": "Stamina +10"}
    ]},
    {"id": "e10", "event": "New Year's Resolution", "type": "trainee", "choices": []},
    {"id": "e11", "event": "New Year's Resolution", "type": "trainee", "choices": []}
  ]
}`

type cliTestEnv struct {
	baseDir    string
	configPath string
	corpusPath string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	corpusPath := filepath.Join(base, "events.json")
	if err := os.WriteFile(corpusPath, []byte(testCorpus), 0o644); err != nil {
		t.Fatalf("write corpus: %v", err)
	}

	configPath := filepath.Join(base, "config.toml")
	content := fmt.Sprintf(`[corpus]
path = %q

[history]
enabled = true
path = %q

[logging]
level = "error"
format = "console"
dir = ""
`, corpusPath, filepath.Join(base, "history.db"))
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return &cliTestEnv{baseDir: base, configPath: configPath, corpusPath: corpusPath}
}

func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, error) {
	t.Helper()

	full := append([]string{"--config", env.configPath}, args...)
	cmd := newRootCommand()
	cmd.SetArgs(full)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func requireContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output missing %q:\n%s", want, output)
	}
}

func TestRootShowsHelp(t *testing.T) {
	env := setupCLITestEnv(t)
	out, err := runCLI(t, env)
	if err != nil {
		t.Fatalf("root command: %v", err)
	}
	requireContains(t, out, "umascan")
	requireContains(t, out, "match")
}
