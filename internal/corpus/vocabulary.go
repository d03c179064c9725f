package corpus

import "sort"

// Vocabulary is the set of tokens appearing in the normalized event-name
// keys. Membership checks go through a map; iteration uses a sorted slice so
// nearest-neighbor scans are deterministic.
type Vocabulary struct {
	members map[string]struct{}
	sorted  []string
}

func newVocabulary() *Vocabulary {
	return &Vocabulary{members: make(map[string]struct{})}
}

func (v *Vocabulary) add(token string) {
	if token == "" {
		return
	}
	v.members[token] = struct{}{}
}

func (v *Vocabulary) freeze() {
	v.sorted = make([]string, 0, len(v.members))
	for token := range v.members {
		v.sorted = append(v.sorted, token)
	}
	sort.Strings(v.sorted)
}

// Contains reports whether the token appears in any event name.
func (v *Vocabulary) Contains(token string) bool {
	if v == nil {
		return false
	}
	_, ok := v.members[token]
	return ok
}

// Tokens returns all vocabulary tokens in sorted order. The returned slice
// must not be modified.
func (v *Vocabulary) Tokens() []string {
	if v == nil {
		return nil
	}
	return v.sorted
}

// Len returns the number of distinct tokens.
func (v *Vocabulary) Len() int {
	if v == nil {
		return 0
	}
	return len(v.members)
}
