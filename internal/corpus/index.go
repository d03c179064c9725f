package corpus

import (
	"time"

	"umascan/internal/textutil"
)

// Index maps normalized event-name keys to their variants. Keys preserve
// first-insertion order so candidate tie-breaking stays deterministic.
// An Index is immutable after a build.
type Index struct {
	keys       []string
	byKey      map[string][]*Variant
	eventCount int
}

func newIndex() *Index {
	return &Index{byKey: make(map[string][]*Variant)}
}

func (i *Index) add(v *Variant) {
	if _, ok := i.byKey[v.Key]; !ok {
		i.keys = append(i.keys, v.Key)
	}
	i.byKey[v.Key] = append(i.byKey[v.Key], v)
	i.eventCount++
}

// Lookup returns the variants registered under the given normalized key, in
// document order.
func (i *Index) Lookup(key string) []*Variant {
	if i == nil {
		return nil
	}
	return i.byKey[key]
}

// Keys returns the normalized keys in first-insertion order. The returned
// slice must not be modified.
func (i *Index) Keys() []string {
	if i == nil {
		return nil
	}
	return i.keys
}

// EventCount returns the number of variants across all keys.
func (i *Index) EventCount() int {
	if i == nil {
		return 0
	}
	return i.eventCount
}

// KeyCount returns the number of distinct normalized keys.
func (i *Index) KeyCount() int {
	if i == nil {
		return 0
	}
	return len(i.keys)
}

// DuplicateKeys returns the keys that carry more than one variant, in
// first-insertion order. Useful for corpus diagnostics.
func (i *Index) DuplicateKeys() []string {
	if i == nil {
		return nil
	}
	var dupes []string
	for _, key := range i.keys {
		if len(i.byKey[key]) > 1 {
			dupes = append(dupes, key)
		}
	}
	return dupes
}

// Snapshot bundles an index with the vocabulary built from it. The pair is
// always constructed together and swapped atomically on reload, so readers
// never observe an index paired with a stale vocabulary.
type Snapshot struct {
	Index      *Index
	Vocabulary *Vocabulary
	LoadedAt   time.Time
	Skipped    int
}

// Empty returns a snapshot with no events. Queries against it never match,
// which is the degraded mode for a missing or corrupt corpus.
func Empty() *Snapshot {
	idx := newIndex()
	return &Snapshot{
		Index:      idx,
		Vocabulary: BuildVocabulary(idx),
		LoadedAt:   time.Now().UTC(),
	}
}

// BuildVocabulary collects the union of tokens across every key in the
// index. Pure function of the index; rebuilt whenever the index is rebuilt.
func BuildVocabulary(idx *Index) *Vocabulary {
	v := newVocabulary()
	for _, key := range idx.Keys() {
		for _, token := range textutil.Tokenize(key) {
			v.add(token)
		}
	}
	v.freeze()
	return v
}
