package match

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"log/slog"

	"umascan/internal/corpus"
)

// fixtureCorpus covers the shapes the pipeline cares about: a marker-decorated
// chain event, a shared display name with two owners, and short names that
// exercise token correction.
const fixtureCorpus = `{
  "characters": [
    {
      "id": "c1",
      "name": "Silence Suzuka",
      "eventGroups": [{"name": "Training", "eventIds": ["e1", "e10"]}]
    },
    {
      "id": "c2",
      "name": "Special Week",
      "eventGroups": [{"name": "Training", "eventIds": ["e11"]}]
    }
  ],
  "supportCards": [
    {
      "id": "s1",
      "name": "Fine Motion",
      "eventGroups": [{"name": "Support", "eventIds": ["e2"]}]
    }
  ],
  "scenarios": [],
  "events": [
    {
      "id": "e1",
      "event": "(❯) Lovely Training Weather ♪",
      "type": "Chain Events",
      "choices": [{"choice": "Top Option", "effect": "Wisdom +5\nSkill points +20"}]
    },
    {"id": "e2", "event": "Training Camp", "type": "Support Event", "choices": []},
    {"id": "e10", "event": "New Year's Resolution", "type": "Trainee Event", "choices": []},
    {"id": "e11", "event": "New Year's Resolution", "type": "Trainee Event", "choices": []},
    {"id": "e3", "event": "Bat", "type": "Trainee Event", "choices": []},
    {"id": "e4", "event": "Hat", "type": "Trainee Event", "choices": []}
  ]
}`

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFixture(t *testing.T, document string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.json")
	if err := os.WriteFile(path, []byte(document), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func loadFixture(t *testing.T, document string) *corpus.Snapshot {
	t.Helper()
	snap, err := corpus.Load(context.Background(), writeFixture(t, document), discardLogger())
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	return snap
}
