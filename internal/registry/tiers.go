package registry

import (
	"brewing-items/internal/common"
	"brewing-items/internal/item"
	"brewing-items/internal/match"
)

// Tiers maps tier names to their display content. Lookup is case-sensitive.
// A Tiers value is built once per load pass and never modified afterwards.
type Tiers struct {
	entries map[string]item.ContentSpec
}

// NewTiers copies entries into a new table.
func NewTiers(entries map[string]item.ContentSpec) *Tiers {
	t := &Tiers{entries: make(map[string]item.ContentSpec, len(entries))}
	for k, v := range entries {
		t.entries[k] = v
	}

	return t
}

// EmptyTiers returns a table with no tiers.
func EmptyTiers() *Tiers {
	return NewTiers(nil)
}

// Lookup returns the content of the named tier.
func (t *Tiers) Lookup(name string) (item.ContentSpec, bool) {
	if t == nil {
		return item.ContentSpec{}, false
	}

	c, ok := t.entries[name]

	return c, ok
}

// Has reports whether name is a known tier.
func (t *Tiers) Has(name string) bool {
	_, ok := t.Lookup(name)

	return ok
}

// Names returns tier names sorted.
func (t *Tiers) Names() []string {
	if t == nil {
		return nil
	}

	return common.SortedKeys(t.entries)
}

// Suggest returns the closest tier names to raw.
func (t *Tiers) Suggest(raw string) []string {
	return match.Suggest(raw, t.Names(), SuggestionLimit)
}

// Len returns the number of tiers.
func (t *Tiers) Len() int {
	if t == nil {
		return 0
	}

	return len(t.entries)
}
