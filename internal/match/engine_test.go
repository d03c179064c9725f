package match

import (
	"context"
	"sync"
	"testing"

	"umascan/internal/corpus"
	"umascan/internal/session"
	"umascan/internal/testsupport"
)

func newTestEngine(t *testing.T, opts ...testsupport.ConfigOption) *Engine {
	t.Helper()
	cfg := testsupport.NewConfig(t, opts...)
	engine := NewEngine(cfg, discardLogger())
	return engine
}

func TestEngineEndToEndTypoQuery(t *testing.T) {
	engine := newTestEngine(t, testsupport.WithCorpus(fixtureCorpus))
	if err := engine.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error: %v", err)
	}

	result, ok := engine.Match(Query{
		Fragments: []string{"Lovely", "Tralning", "Weather"},
		Tracker:   session.NewFrequencyTracker(),
	})
	if !ok {
		t.Fatal("Match() missed, want hit")
	}
	if result.Variant.ID != "e1" {
		t.Errorf("matched %q, want e1", result.Variant.ID)
	}
	if result.Corrected != "lovely training weather" {
		t.Errorf("corrected query = %q", result.Corrected)
	}
	if result.Score != 100 {
		t.Errorf("score = %d, want 100", result.Score)
	}
	if len(result.Variant.Sources) != 1 || result.Variant.Sources[0].Name != "Silence Suzuka" {
		t.Errorf("sources = %+v", result.Variant.Sources)
	}
	if result.Variant.Sources[0].Type != corpus.OwnerCharacter || result.Variant.Sources[0].ID != "c1" {
		t.Errorf("source identity = %+v", result.Variant.Sources[0])
	}
}

func TestEngineEmptyQueryNoMatch(t *testing.T) {
	engine := newTestEngine(t, testsupport.WithCorpus(fixtureCorpus))
	if err := engine.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error: %v", err)
	}

	if _, ok := engine.Match(Query{}); ok {
		t.Error("Match(no fragments) = hit, want miss")
	}
	if _, ok := engine.Match(Query{Fragments: []string{"", "  "}}); ok {
		t.Error("Match(blank fragments) = hit, want miss")
	}
}

func TestEngineGibberishNoMatch(t *testing.T) {
	engine := newTestEngine(t, testsupport.WithCorpus(fixtureCorpus))
	if err := engine.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error: %v", err)
	}

	if _, ok := engine.Match(Query{Fragments: []string{"qqqq", "wwww", "kkkk"}}); ok {
		t.Error("Match(gibberish) = hit, want miss")
	}
}

func TestEngineMissingCorpusDegrades(t *testing.T) {
	engine := newTestEngine(t) // corpus path never written
	if err := engine.Reload(context.Background()); err == nil {
		t.Fatal("Reload() with missing corpus should return a diagnostic error")
	}

	if got := engine.EventCount(); got != 0 {
		t.Errorf("EventCount() = %d, want 0", got)
	}
	if _, ok := engine.Match(Query{Fragments: []string{"Training", "Camp"}}); ok {
		t.Error("Match against empty snapshot = hit, want miss")
	}
}

func TestEngineOwnerFilter(t *testing.T) {
	engine := newTestEngine(t, testsupport.WithCorpus(fixtureCorpus))
	if err := engine.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error: %v", err)
	}

	freq := session.NewFrequencyTracker()
	freq.Increment("Silence Suzuka")
	freq.Increment("Silence Suzuka")

	result, ok := engine.Match(Query{
		Fragments:   []string{"New", "Year's", "Resolution"},
		OwnerFilter: "c2",
		Tracker:     freq,
	})
	if !ok {
		t.Fatal("Match() missed")
	}
	if result.Variant.ID != "e11" {
		t.Errorf("matched %q, want e11 (owner filter c2 overrides frequency)", result.Variant.ID)
	}
}

func TestEngineFrequencyDisambiguation(t *testing.T) {
	engine := newTestEngine(t, testsupport.WithCorpus(fixtureCorpus))
	if err := engine.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error: %v", err)
	}

	freq := session.NewFrequencyTracker()
	freq.Increment("Special Week")

	result, ok := engine.Match(Query{
		Fragments: []string{"New", "Year's", "Resolution"},
		Tracker:   freq,
	})
	if !ok {
		t.Fatal("Match() missed")
	}
	if result.Variant.ID != "e11" {
		t.Errorf("matched %q, want e11 (Special Week observed this session)", result.Variant.ID)
	}
}

func TestEngineDeterministic(t *testing.T) {
	engine := newTestEngine(t, testsupport.WithCorpus(fixtureCorpus))
	if err := engine.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error: %v", err)
	}

	query := Query{
		Fragments: []string{"New", "Year's", "Resolution"},
		Tracker:   session.NewFrequencyTracker(),
	}
	first, ok := engine.Match(query)
	if !ok {
		t.Fatal("Match() missed")
	}
	for i := 0; i < 10; i++ {
		again, ok := engine.Match(query)
		if !ok || again.Variant.ID != first.Variant.ID || again.Score != first.Score {
			t.Fatalf("run %d diverged: %+v vs %+v", i, again, first)
		}
	}
}

func TestEngineAliasRewrite(t *testing.T) {
	engine := newTestEngine(t,
		testsupport.WithCorpus(fixtureCorpus),
		testsupport.WithAliases(`{"aliases": [{"match": "I'm Not Afraid", "canonical": "Training Camp"}]}`),
	)
	if err := engine.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error: %v", err)
	}

	result, ok := engine.Match(Query{Fragments: []string{"I'm", "Not", "Afraid!"}})
	if !ok {
		t.Fatal("Match() missed, want alias hit")
	}
	if !result.Aliased {
		t.Error("result not flagged as aliased")
	}
	if result.Variant.ID != "e2" {
		t.Errorf("matched %q, want e2 via alias", result.Variant.ID)
	}
}

func TestEngineReloadConcurrentWithMatch(t *testing.T) {
	engine := newTestEngine(t, testsupport.WithCorpus(fixtureCorpus))
	if err := engine.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error: %v", err)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 25; i++ {
			if err := engine.Reload(context.Background()); err != nil {
				t.Errorf("Reload() error: %v", err)
				return
			}
		}
	}()

	for i := 0; i < 200; i++ {
		result, ok := engine.Match(Query{Fragments: []string{"Training", "Camp"}})
		if !ok {
			t.Fatal("Match() missed during reload; snapshot must stay complete")
		}
		if result.Variant.ID != "e2" || result.Score != 100 {
			t.Fatalf("inconsistent result during reload: %+v", result)
		}
	}
	wg.Wait()
}
