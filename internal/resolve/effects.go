package resolve

import (
	"fortio.org/safecast"

	"brewing-items/internal/item"
	"brewing-items/internal/tree"
)

// Effect element keys.
const (
	KeyPotionType    = "potion-type"
	KeyDuration      = "duration"
	KeyAmplifier     = "amplifier"
	KeyAmbient       = "ambient"
	KeyShowParticles = "show-particles"
	KeyShowIcon      = "show-icon"
)

var effectKeys = map[string]struct{}{
	KeyPotionType:    {},
	KeyDuration:      {},
	KeyAmplifier:     {},
	KeyAmbient:       {},
	KeyShowParticles: {},
	KeyShowIcon:      {},
}

// Effects resolves the optional effect list. Unlike lore the list is all or
// nothing: when any element fails the whole list is dropped and one extra
// EmptyAfterFiltering diagnostic is reported at the list path.
func (r *Resolver) Effects(file tree.SourceFile, section *tree.Node, at tree.Path) ([]item.EffectSpec, bool) {
	n, ok := section.Get(KeyEffect)
	if !ok {
		return nil, false
	}

	p := at.Key(KeyEffect)
	if !n.IsSequence() {
		r.malformed(file, p, n)
		return nil, false
	}

	raw := n.Items()
	if len(raw) == 0 {
		return nil, false
	}

	effects := make([]item.EffectSpec, 0, len(raw))

	for i, el := range raw {
		if e, ok := r.effect(file, el, p.Index(i)); ok {
			effects = append(effects, e)
		}
	}

	if len(effects) < len(raw) {
		r.sink.EmptyAfterFiltering(file.Path, location(p), len(raw)-len(effects), len(raw))
		return nil, false
	}

	return effects, true
}

// effect resolves one element of the effect list, stopping at its first
// problem so that a bad element yields exactly one diagnostic.
func (r *Resolver) effect(file tree.SourceFile, n *tree.Node, at tree.Path) (item.EffectSpec, bool) {
	if !n.IsMapping() {
		r.malformed(file, at, n)
		return item.EffectSpec{}, false
	}

	for _, k := range n.Keys() {
		if _, ok := effectKeys[k]; !ok {
			v, _ := n.Get(k)
			r.malformed(file, at.Key(k), v)

			return item.EffectSpec{}, false
		}
	}

	e := item.EffectSpec{
		Duration:  item.DefaultEffectDuration,
		Amplifier: item.DefaultEffectAmplifier,
	}

	typ, ok := lookupName(r, file, n, at.Key(KeyPotionType), KeyPotionType, r.set.Effects)
	if !ok {
		return item.EffectSpec{}, false
	}

	e.Type = typ

	if e.Duration, ok = r.effectLevel(file, n, at, KeyDuration, e.Duration); !ok {
		return item.EffectSpec{}, false
	}

	if e.Amplifier, ok = r.effectLevel(file, n, at, KeyAmplifier, e.Amplifier); !ok {
		return item.EffectSpec{}, false
	}

	flags := []struct {
		key string
		dst *bool
	}{
		{KeyAmbient, &e.Ambient},
		{KeyShowParticles, &e.ShowParticles},
		{KeyShowIcon, &e.ShowIcon},
	}

	for _, f := range flags {
		v, present, valid := r.boolean(file, n, at, f.key)
		if !valid {
			return item.EffectSpec{}, false
		}

		if present {
			*f.dst = v
		}
	}

	return e, true
}

// effectLevel reads a non-negative int32 sub-key, returning def when it is
// absent. ok is false when the value is present but invalid.
func (r *Resolver) effectLevel(file tree.SourceFile, n *tree.Node, at tree.Path, key string, def int32) (int32, bool) {
	v, ok := n.Get(key)
	if !ok {
		return def, true
	}

	i, ok := v.AsInt()
	if !ok || i < 0 {
		r.malformed(file, at.Key(key), v)
		return def, false
	}

	out, err := safecast.Conv[int32](i)
	if err != nil {
		r.malformed(file, at.Key(key), v)
		return def, false
	}

	return out, true
}
