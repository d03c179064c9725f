package match

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"log/slog"

	"umascan/internal/config"
	"umascan/internal/corpus"
	"umascan/internal/logging"
	"umascan/internal/session"
	"umascan/internal/textutil"
)

// Query is one match request: the OCR fragments from a captured screen
// region, an optional owner filter, and the caller's session tracker.
type Query struct {
	Fragments   []string
	OwnerFilter string
	Tracker     *session.FrequencyTracker
}

// Result describes a successful match.
type Result struct {
	Variant    *corpus.Variant `json:"variant"`
	Score      int             `json:"score"`
	Key        string          `json:"key"`
	Corrected  string          `json:"corrected_query"`
	Aliased    bool            `json:"aliased"`
	Candidates []Candidate     `json:"candidates"`
}

// Engine runs the match pipeline over an atomically swapped corpus snapshot.
// Match never performs I/O; Reload is the only operation that touches disk.
type Engine struct {
	cfg      config.Matching
	path     string
	logger   *slog.Logger
	aliases  *AliasTable
	snapshot atomic.Pointer[corpus.Snapshot]
}

// NewEngine constructs an engine serving the degraded empty snapshot until
// the first Reload.
func NewEngine(cfg *config.Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logging.NewComponentLogger(logger, "matcher")
	e := &Engine{
		cfg:     cfg.Matching,
		path:    cfg.Corpus.Path,
		logger:  logger,
		aliases: NewAliasTable(cfg.Corpus.AliasPath, logger),
	}
	e.snapshot.Store(corpus.Empty())
	return e
}

// Reload builds a fresh index/vocabulary pair off to the side and publishes
// it with a single pointer swap; queries in flight keep reading the previous
// snapshot. On load failure the engine degrades to an empty snapshot (every
// query misses) and the error is returned as a diagnostic, never a crash.
func (e *Engine) Reload(ctx context.Context) error {
	started := time.Now()
	snap, err := corpus.Load(ctx, e.path, e.logger)
	if err != nil {
		e.logger.Warn("corpus unavailable, matching degraded to empty index",
			logging.String("path", e.path),
			logging.Error(err))
		e.snapshot.Store(corpus.Empty())
		return err
	}
	e.snapshot.Store(snap)
	e.logger.Info("corpus loaded",
		logging.String("path", e.path),
		logging.Int("events", snap.Index.EventCount()),
		logging.Int("names", snap.Index.KeyCount()),
		logging.Int("vocabulary", snap.Vocabulary.Len()),
		logging.Int("skipped", snap.Skipped),
		logging.Duration("elapsed", time.Since(started)))
	return nil
}

// Match runs the full pipeline. A miss returns ok=false; it is a valid
// outcome, not an error.
func (e *Engine) Match(q Query) (Result, bool) {
	snap := e.snapshot.Load()

	normalized := textutil.Normalize(strings.Join(q.Fragments, " "))
	if normalized == "" {
		return Result{}, false
	}

	query, aliased := e.aliases.Apply(normalized)
	if !aliased {
		tokens := correctTokens(textutil.Tokenize(query), snap.Vocabulary, e.cfg.TokenCorrectionThreshold)
		query = strings.Join(tokens, " ")
	}

	candidates := Rank(query, snap.Index, e.cfg.MatchThreshold, e.cfg.MaxCandidates)
	if len(candidates) == 0 {
		e.logger.Debug("no candidates above threshold",
			logging.String("query", query),
			logging.Int("threshold", e.cfg.MatchThreshold))
		return Result{}, false
	}

	best := candidates[0]
	variant := Disambiguate(snap.Index.Lookup(best.Key), q.OwnerFilter, q.Tracker)
	if variant == nil {
		return Result{}, false
	}

	e.logger.Debug("matched event",
		logging.String("query", query),
		logging.String("event_id", variant.ID),
		logging.Int("score", best.Score),
		logging.Int("candidates", len(candidates)))

	return Result{
		Variant:    variant,
		Score:      best.Score,
		Key:        best.Key,
		Corrected:  query,
		Aliased:    aliased,
		Candidates: candidates,
	}, true
}

// EventCount reports the number of variants in the current snapshot.
func (e *Engine) EventCount() int {
	return e.snapshot.Load().Index.EventCount()
}

// Snapshot returns the currently published corpus snapshot.
func (e *Engine) Snapshot() *corpus.Snapshot {
	return e.snapshot.Load()
}
