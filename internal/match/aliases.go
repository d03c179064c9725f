package match

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"sync"
	"time"

	"log/slog"

	"umascan/internal/logging"
	"umascan/internal/textutil"
)

// AliasTable loads user-authored query aliases: phrases OCR reliably
// produces for an event whose corpus name the similarity scoring alone will
// not reach. Matching compares normalized forms, so an alias written as the
// on-screen text also covers its punctuation and marker variants.
type AliasTable struct {
	path   string
	logger *slog.Logger
	mu     sync.RWMutex
	loaded time.Time
	rules  []aliasRule
}

// Alias maps an observed phrase to the canonical event name to query for.
type Alias struct {
	Match     string `json:"match"`
	Canonical string `json:"canonical"`
}

type aliasRule struct {
	match     string
	canonical string
}

// NewAliasTable constructs a table backed by the provided JSON file. An
// empty path disables aliasing and yields a nil table, which is safe to use.
func NewAliasTable(path string, logger *slog.Logger) *AliasTable {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &AliasTable{path: trimmed, logger: logger}
}

// Apply rewrites a normalized query when it contains a known alias phrase,
// returning the normalized canonical name. The first matching rule in file
// order wins.
func (t *AliasTable) Apply(normalizedQuery string) (string, bool) {
	if t == nil || normalizedQuery == "" {
		return normalizedQuery, false
	}
	if err := t.ensureLoaded(); err != nil {
		t.logger.Warn("alias table unavailable",
			logging.String("path", t.path),
			logging.Error(err))
		return normalizedQuery, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, rule := range t.rules {
		if strings.Contains(normalizedQuery, rule.match) {
			return rule.canonical, true
		}
	}
	return normalizedQuery, false
}

// ensureLoaded reads the alias file when its mtime changes, so edits apply
// without restarting.
func (t *AliasTable) ensureLoaded() error {
	info, err := os.Stat(t.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	t.mu.RLock()
	alreadyLoaded := !t.loaded.IsZero() && t.loaded.Equal(info.ModTime())
	t.mu.RUnlock()
	if alreadyLoaded {
		return nil
	}

	data, err := os.ReadFile(t.path)
	if err != nil {
		return err
	}

	rules, err := parseAliases(data)
	if err != nil {
		return err
	}

	t.mu.Lock()
	t.rules = rules
	t.loaded = info.ModTime()
	t.mu.Unlock()
	t.logger.Info("loaded query aliases",
		logging.String("path", t.path),
		logging.Int("count", len(rules)))
	return nil
}

func parseAliases(data []byte) ([]aliasRule, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}
	var entries []Alias
	// Accept either a bare array or an object with an aliases field.
	if data[0] == '{' {
		var wrapper struct {
			Aliases []Alias `json:"aliases"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return nil, err
		}
		entries = wrapper.Aliases
	} else {
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, err
		}
	}

	rules := make([]aliasRule, 0, len(entries))
	for _, entry := range entries {
		match := textutil.Normalize(entry.Match)
		canonical := textutil.Normalize(entry.Canonical)
		if match == "" || canonical == "" {
			continue
		}
		rules = append(rules, aliasRule{match: match, canonical: canonical})
	}
	return rules, nil
}
