package registry

import "brewing-items/internal/item"

// Set is the registry context of one load pass.
type Set struct {
	Materials *Static[item.Material]
	Effects   *Static[item.EffectType]
	Providers *Static[item.Provider]
	Tiers     *Tiers
}

// Defaults returns the built-in static tables and no tiers.
func Defaults() *Set {
	return &Set{
		Materials: Materials(),
		Effects:   Effects(),
		Providers: Providers(),
		Tiers:     EmptyTiers(),
	}
}

// WithTiers returns a copy of s using tiers. s is left unchanged.
func (s *Set) WithTiers(tiers *Tiers) *Set {
	next := *s
	if tiers == nil {
		tiers = EmptyTiers()
	}

	next.Tiers = tiers

	return &next
}
