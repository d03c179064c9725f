// Package testsupport provides shared fixtures for package tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"umascan/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// History is disabled by default; tests that need it opt in.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Corpus.Path = filepath.Join(base, "events.json")
	cfgVal.Corpus.AliasPath = ""
	cfgVal.History.Enabled = false
	cfgVal.History.Path = filepath.Join(base, "history.db")
	cfgVal.Logging.Dir = ""

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithCorpus writes the provided corpus JSON to the config's corpus path.
func WithCorpus(document string) ConfigOption {
	return func(b *configBuilder) {
		if err := os.WriteFile(b.cfg.Corpus.Path, []byte(document), 0o644); err != nil {
			b.t.Fatalf("write corpus fixture: %v", err)
		}
	}
}

// WithAliases writes the provided alias JSON and points the config at it.
func WithAliases(document string) ConfigOption {
	return func(b *configBuilder) {
		path := filepath.Join(b.baseDir, "aliases.json")
		if err := os.WriteFile(path, []byte(document), 0o644); err != nil {
			b.t.Fatalf("write alias fixture: %v", err)
		}
		b.cfg.Corpus.AliasPath = path
	}
}

// WithHistory enables the history store on the test config.
func WithHistory() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.History.Enabled = true
	}
}

// WithThresholds overrides the matching thresholds on the test config.
func WithThresholds(match, correction int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Matching.MatchThreshold = match
		b.cfg.Matching.TokenCorrectionThreshold = correction
	}
}
