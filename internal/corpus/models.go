package corpus

// OwnerType identifies the kind of in-game entity that can present an event.
type OwnerType string

const (
	OwnerCharacter   OwnerType = "character"
	OwnerSupportCard OwnerType = "support_card"
	OwnerScenario    OwnerType = "scenario"
)

// Source names one owner of an event variant.
type Source struct {
	Type OwnerType `json:"type"`
	ID   string    `json:"id"`
	Name string    `json:"name"`
}

// EffectSegment is a single line of a choice's effect text, e.g. "Speed +10".
type EffectSegment string

// Choice is one selectable option within an event.
type Choice struct {
	Text    string          `json:"text"`
	Effects []EffectSegment `json:"effects"`
}

// Event is one corpus entry. Immutable once loaded.
type Event struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Choices []Choice `json:"choices"`
}

// Variant is an Event together with its normalized lookup key and resolved
// owners. Identity is the event ID; several variants can share a key.
type Variant struct {
	Event
	Key     string   `json:"key"`
	Sources []Source `json:"sources"`
}

// SourceNames returns the display names of the variant's owners.
func (v *Variant) SourceNames() []string {
	if v == nil || len(v.Sources) == 0 {
		return nil
	}
	names := make([]string, 0, len(v.Sources))
	for _, src := range v.Sources {
		names = append(names, src.Name)
	}
	return names
}

// HasSource reports whether any of the variant's owners has the given ID.
func (v *Variant) HasSource(ownerID string) bool {
	if v == nil {
		return false
	}
	for _, src := range v.Sources {
		if src.ID == ownerID {
			return true
		}
	}
	return false
}
