package resolve

import (
	"fortio.org/safecast"

	"brewing-items/internal/common"
	"brewing-items/internal/item"
	"brewing-items/internal/registry"
	"brewing-items/internal/tree"
)

// Material resolves the required material key.
func (r *Resolver) Material(file tree.SourceFile, section *tree.Node, at tree.Path) (item.Material, bool) {
	return lookupName(r, file, section, at.Key(KeyMaterial), KeyMaterial, r.set.Materials)
}

// Provider resolves the optional provider key.
func (r *Resolver) Provider(file tree.SourceFile, section *tree.Node, at tree.Path) (item.Provider, bool) {
	n, ok := section.Get(KeyProvider)
	if !ok {
		return "", false
	}

	if !n.IsScalar() {
		r.malformed(file, at.Key(KeyProvider), n)
		return "", false
	}

	return lookupName(r, file, section, at.Key(KeyProvider), KeyProvider, r.set.Providers)
}

// Tier resolves the optional item-tier key against the pass's tiers. The
// lookup is exact.
func (r *Resolver) Tier(file tree.SourceFile, section *tree.Node, at tree.Path) (string, bool) {
	n, ok := section.Get(KeyTier)
	if !ok {
		return "", false
	}

	p := at.Key(KeyTier)

	name, ok := n.Text()
	if !ok {
		r.malformed(file, p, n)
		return "", false
	}

	if !r.set.Tiers.Has(name) {
		r.unresolvable(file, p, name, r.set.Tiers.Suggest(name))
		return "", false
	}

	return name, true
}

// Command resolves the optional command list. Scalar elements contribute
// their text; other elements are reported and skipped. An empty list is
// absent without a diagnostic.
func (r *Resolver) Command(file tree.SourceFile, section *tree.Node, at tree.Path) ([]string, bool) {
	n, ok := section.Get(KeyCommand)
	if !ok {
		return nil, false
	}

	p := at.Key(KeyCommand)
	if !n.IsSequence() {
		r.malformed(file, p, n)
		return nil, false
	}

	var commands []string

	for i, el := range n.Items() {
		text, ok := el.Text()
		if !ok {
			r.malformed(file, p.Index(i), el)
			continue
		}

		commands = append(commands, text)
	}

	commands = common.NilIfEmpty(commands)

	return commands, commands != nil
}

// CustomModelData resolves the optional custom-model-data key (default 0).
func (r *Resolver) CustomModelData(file tree.SourceFile, section *tree.Node, at tree.Path) (int, bool) {
	return r.integer(file, section, at, KeyCustomModelData)
}

// RequiredLevel resolves the optional required-level key (default 0).
func (r *Resolver) RequiredLevel(file tree.SourceFile, section *tree.Node, at tree.Path) (int, bool) {
	return r.integer(file, section, at, KeyRequiredLevel)
}

// RestoreFood resolves restore.food (default 0). section is the restore mapping.
func (r *Resolver) RestoreFood(file tree.SourceFile, section *tree.Node, at tree.Path) (int, bool) {
	return r.integer(file, section, at, KeyFood)
}

// RestoreHealth resolves restore.health (default 0).
func (r *Resolver) RestoreHealth(file tree.SourceFile, section *tree.Node, at tree.Path) (float64, bool) {
	return r.number(file, section, at, KeyHealth)
}

// RestoreSaturation resolves restore.saturation (default 0).
func (r *Resolver) RestoreSaturation(file tree.SourceFile, section *tree.Node, at tree.Path) (float64, bool) {
	return r.number(file, section, at, KeySaturation)
}

// restore returns the restore mapping of an item and its path. A restore
// value that is not a mapping is reported once and treated as empty.
func (r *Resolver) restore(file tree.SourceFile, section *tree.Node, at tree.Path) (*tree.Node, tree.Path) {
	p := at.Key(KeyRestore)

	n, ok := section.Get(KeyRestore)
	if !ok {
		return nil, p
	}

	if !n.IsMapping() {
		r.malformed(file, p, n)
		return nil, p
	}

	return n, p
}

// lookupName resolves a required key against a static table. Any scalar is
// taken by its text; a missing key or a collection is reported as missing.
func lookupName[K ~string](r *Resolver, file tree.SourceFile, section *tree.Node, p tree.Path, key string,
	table *registry.Static[K],
) (K, bool) {
	n, _ := section.Get(key)

	raw, ok := n.Text()
	if !ok {
		r.missing(file, p)
		return "", false
	}

	v, ok := table.Lookup(raw)
	if !ok {
		r.unresolvable(file, p, raw, table.Suggest(raw))
		return "", false
	}

	return v, true
}

// integer reads an optional int key. A present value that is not an integer
// is reported and the default zero is used.
func (r *Resolver) integer(file tree.SourceFile, section *tree.Node, at tree.Path, key string) (int, bool) {
	n, ok := section.Get(key)
	if !ok {
		return 0, false
	}

	i, ok := n.AsInt()
	if !ok {
		r.malformed(file, at.Key(key), n)
		return 0, false
	}

	v, err := safecast.Conv[int](i)
	if err != nil {
		r.malformed(file, at.Key(key), n)
		return 0, false
	}

	return v, true
}

// number reads an optional numeric key; integers are accepted.
func (r *Resolver) number(file tree.SourceFile, section *tree.Node, at tree.Path, key string) (float64, bool) {
	n, ok := section.Get(key)
	if !ok {
		return 0, false
	}

	f, ok := n.AsFloat()
	if !ok {
		r.malformed(file, at.Key(key), n)
		return 0, false
	}

	return f, true
}

// boolean reads an optional bool key. present is false when the key is
// absent; valid is false when it is present with another type.
func (r *Resolver) boolean(file tree.SourceFile, section *tree.Node, at tree.Path, key string) (v, present, valid bool) {
	n, ok := section.Get(key)
	if !ok {
		return false, false, true
	}

	b, ok := n.AsBool()
	if !ok {
		r.malformed(file, at.Key(key), n)
		return false, true, false
	}

	return b, true, true
}
