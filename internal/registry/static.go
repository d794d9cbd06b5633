package registry

import (
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"brewing-items/internal/match"
)

// SuggestionLimit is the maximum number of suggestions attached to an
// unresolvable name.
const SuggestionLimit = 3

// Static is a closed, read-only, case-insensitive table of canonical names.
type Static[K ~string] struct {
	kind  string
	names map[string]K
	list  []string
}

// NewStatic builds a table from canonical (upper-case) names.
// Duplicate names are ignored.
func NewStatic[K ~string](kind string, names ...K) *Static[K] {
	s := &Static[K]{
		kind:  kind,
		names: make(map[string]K, len(names)),
	}

	for _, n := range names {
		key := upper(string(n))
		if _, ok := s.names[key]; ok {
			continue
		}

		s.names[key] = n
		s.list = append(s.list, string(n))
	}

	sort.Strings(s.list)

	return s
}

// Kind returns the table name used in messages, e.g. "material".
func (s *Static[K]) Kind() string {
	return s.kind
}

// Lookup upper-cases raw and returns the canonical name.
func (s *Static[K]) Lookup(raw string) (K, bool) {
	k, ok := s.names[upper(raw)]

	return k, ok
}

// Names returns all canonical names sorted.
func (s *Static[K]) Names() []string {
	out := make([]string, len(s.list))
	copy(out, s.list)

	return out
}

// Suggest returns the closest known names to raw.
func (s *Static[K]) Suggest(raw string) []string {
	return match.Suggest(raw, s.list, SuggestionLimit)
}

// Len returns the number of names.
func (s *Static[K]) Len() int {
	return len(s.list)
}

// upper uses the root locale. A Caser keeps state, so one is built per call.
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}
