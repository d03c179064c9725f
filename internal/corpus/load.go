package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"log/slog"

	"github.com/gofrs/flock"

	"umascan/internal/logging"
	"umascan/internal/textutil"
)

// lockRetryDelay paces lock acquisition attempts while a scraper run holds
// the corpus write lock.
const lockRetryDelay = 100 * time.Millisecond

// LoadError describes a corpus source that could not be read or parsed.
// Callers treat it as a diagnostic and fall back to an empty snapshot rather
// than failing.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load corpus %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// document mirrors the on-disk corpus layout produced by the scraper.
type document struct {
	Characters   []ownerEntry `json:"characters"`
	SupportCards []ownerEntry `json:"supportCards"`
	Scenarios    []ownerEntry `json:"scenarios"`
	Events       []eventEntry `json:"events"`
}

type ownerEntry struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	EventGroups []eventGroup `json:"eventGroups"`
}

type eventGroup struct {
	Name     string   `json:"name"`
	EventIDs []string `json:"eventIds"`
}

type eventEntry struct {
	ID      string        `json:"id"`
	Name    string        `json:"event"`
	Type    string        `json:"type"`
	Choices []choiceEntry `json:"choices"`
}

type choiceEntry struct {
	Text   string `json:"choice"`
	Effect string `json:"effect"`
}

// Load reads and indexes a corpus document. Individual malformed entries are
// skipped with a warning; only an unreadable or unparsable document yields a
// LoadError. A sidecar flock guards against reading mid-rewrite when the
// scraper refreshes the file concurrently.
func Load(ctx context.Context, path string, logger *slog.Logger) (*Snapshot, error) {
	if logger == nil {
		logger = slog.Default()
	}

	lock := flock.New(path + ".lock")
	if locked, err := lock.TryRLockContext(ctx, lockRetryDelay); err == nil && locked {
		defer func() {
			_ = lock.Unlock()
		}()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	return buildSnapshot(&doc, logger), nil
}

func buildSnapshot(doc *document, logger *slog.Logger) *Snapshot {
	owners := resolveOwners(doc, logger)

	idx := newIndex()
	seen := make(map[string]struct{}, len(doc.Events))
	skipped := 0

	for pos, entry := range doc.Events {
		id := strings.TrimSpace(entry.ID)
		name := strings.TrimSpace(entry.Name)
		if id == "" || name == "" {
			logger.Warn("skipping event entry with missing fields",
				logging.Int("position", pos),
				logging.String("id", id),
				logging.String("name", name))
			skipped++
			continue
		}
		if _, dup := seen[id]; dup {
			logger.Warn("skipping event entry with duplicate id",
				logging.Int("position", pos),
				logging.String("id", id))
			skipped++
			continue
		}
		if !hasLatinLetter(name) {
			logger.Debug("skipping non-latin event entry",
				logging.String("id", id),
				logging.String("name", name))
			skipped++
			continue
		}
		seen[id] = struct{}{}

		idx.add(&Variant{
			Event: Event{
				ID:      id,
				Name:    name,
				Type:    strings.TrimSpace(entry.Type),
				Choices: buildChoices(entry.Choices),
			},
			Key:     textutil.Normalize(name),
			Sources: owners[id],
		})
	}

	return &Snapshot{
		Index:      idx,
		Vocabulary: BuildVocabulary(idx),
		LoadedAt:   time.Now().UTC(),
		Skipped:    skipped,
	}
}

// resolveOwners flattens each owner's nested event-id groupings and inverts
// them into an event-id to sources map. Sources keep section order:
// characters, then support cards, then scenarios.
func resolveOwners(doc *document, logger *slog.Logger) map[string][]Source {
	owners := make(map[string][]Source)
	collect := func(entries []ownerEntry, kind OwnerType) {
		for pos, owner := range entries {
			ownerID := strings.TrimSpace(owner.ID)
			ownerName := strings.TrimSpace(owner.Name)
			if ownerID == "" || ownerName == "" {
				logger.Warn("skipping owner entry with missing fields",
					logging.String("section", string(kind)),
					logging.Int("position", pos))
				continue
			}
			referenced := make(map[string]struct{})
			for _, group := range owner.EventGroups {
				for _, eventID := range group.EventIDs {
					eventID = strings.TrimSpace(eventID)
					if eventID == "" {
						continue
					}
					if _, ok := referenced[eventID]; ok {
						continue
					}
					referenced[eventID] = struct{}{}
					owners[eventID] = append(owners[eventID], Source{Type: kind, ID: ownerID, Name: ownerName})
				}
			}
		}
	}
	collect(doc.Characters, OwnerCharacter)
	collect(doc.SupportCards, OwnerSupportCard)
	collect(doc.Scenarios, OwnerScenario)
	return owners
}

// buildChoices converts raw choice entries, splitting each effect blob into
// its display lines.
func buildChoices(entries []choiceEntry) []Choice {
	if len(entries) == 0 {
		return nil
	}
	choices := make([]Choice, 0, len(entries))
	for _, entry := range entries {
		choice := Choice{Text: strings.TrimSpace(entry.Text)}
		for _, line := range strings.Split(entry.Effect, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			choice.Effects = append(choice.Effects, EffectSegment(line))
		}
		choices = append(choices, choice)
	}
	return choices
}

func hasLatinLetter(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}
