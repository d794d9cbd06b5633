package resolve

import (
	"brewing-items/internal/diagnostic"
	"brewing-items/internal/item"
	"brewing-items/internal/registry"
	"brewing-items/internal/tree"
)

// Item template keys.
const (
	KeyMaterial        = "material"
	KeyDisplay         = "display"
	KeyLore            = "lore"
	KeyEffect          = "effect"
	KeyRestore         = "restore"
	KeyFood            = "food"
	KeyHealth          = "health"
	KeySaturation      = "saturation"
	KeyTier            = "item-tier"
	KeyRequiredLevel   = "required-level"
	KeyCustomModelData = "custom-model-data"
	KeyCommand         = "command"
	KeyProvider        = "provider"

	KeyText  = "text"
	KeyColor = "color"
)

// rootPath names the file root in diagnostics.
const rootPath = "<root>"

// Resolver resolves item templates against the registries of one load pass
// and records failures in that pass's sink.
type Resolver struct {
	set  *registry.Set
	sink *diagnostic.Sink
}

// New returns a resolver over set reporting to sink.
func New(set *registry.Set, sink *diagnostic.Sink) *Resolver {
	if set == nil {
		set = registry.Defaults()
	}

	if sink == nil {
		sink = diagnostic.NewSink()
	}

	return &Resolver{set: set, sink: sink}
}

// Sink returns the sink the resolver reports to.
func (r *Resolver) Sink() *diagnostic.Sink {
	return r.sink
}

// Set returns the registries the resolver looks names up in.
func (r *Resolver) Set() *registry.Set {
	return r.set
}

// File resolves every item of a file in author order.
func (r *Resolver) File(file tree.SourceFile, root *tree.Node) []item.Descriptor {
	if !root.IsMapping() {
		r.malformed(file, tree.Path{}, root)
		return nil
	}

	keys := root.Keys()
	out := make([]item.Descriptor, 0, len(keys))

	for _, id := range keys {
		node, _ := root.Get(id)
		out = append(out, r.Item(file, id, node))
	}

	return out
}

// Item resolves one item template. Every field resolver runs, so all
// problems of an item are reported in one pass. The descriptor is always
// produced.
func (r *Resolver) Item(file tree.SourceFile, id string, node *tree.Node) item.Descriptor {
	at := tree.NewPath(id)
	if !node.IsMapping() {
		r.sink.Malformed(file.Path, at.String(), node.String())
	}

	material, _ := r.Material(file, node, at)
	display, hasDisplay := r.Display(file, node, at)
	lore, _ := r.Lore(file, node, at)
	effects, _ := r.Effects(file, node, at)
	modelData, _ := r.CustomModelData(file, node, at)
	tier, _ := r.Tier(file, node, at)
	command, _ := r.Command(file, node, at)
	level, _ := r.RequiredLevel(file, node, at)
	provider, _ := r.Provider(file, node, at)

	restore, restoreAt := r.restore(file, node, at)
	food, _ := r.RestoreFood(file, restore, restoreAt)
	health, _ := r.RestoreHealth(file, restore, restoreAt)
	saturation, _ := r.RestoreSaturation(file, restore, restoreAt)

	var displayPtr *item.ContentSpec
	if hasDisplay {
		displayPtr = &display
	}

	return item.Descriptor{
		ID:                id,
		Source:            file,
		Material:          material,
		Display:           displayPtr,
		Lore:              lore,
		CustomModelData:   modelData,
		Tier:              tier,
		RestoreFood:       food,
		RestoreHealth:     health,
		RestoreSaturation: saturation,
		Effects:           effects,
		Command:           command,
		RequiredLevel:     level,
		Provider:          provider,
	}
}

// Tiers resolves a tier file: every top-level key names a tier whose value
// is display content. Malformed entries are reported and dropped.
func (r *Resolver) Tiers(file tree.SourceFile, root *tree.Node) map[string]item.ContentSpec {
	if !root.IsMapping() {
		r.malformed(file, tree.Path{}, root)
		return nil
	}

	out := make(map[string]item.ContentSpec, root.Len())

	for _, name := range root.Keys() {
		at := tree.NewPath(name)

		node, ok := root.Get(name)
		if !ok || !node.IsMapping() {
			r.sink.Malformed(file.Path, at.String(), node.String())
			continue
		}

		if c, ok := r.Content(file, node, at); ok {
			out[name] = c
		}
	}

	return out
}

// location renders p for a diagnostic.
func location(p tree.Path) string {
	if p.IsRoot() {
		return rootPath
	}

	return p.String()
}

func (r *Resolver) malformed(file tree.SourceFile, p tree.Path, n *tree.Node) {
	r.sink.Malformed(file.Path, location(p), n.String())
}

func (r *Resolver) missing(file tree.SourceFile, p tree.Path) {
	r.sink.MissingField(file.Path, location(p))
}

func (r *Resolver) unresolvable(file tree.SourceFile, p tree.Path, value string, suggestions []string) {
	r.sink.Unresolvable(file.Path, location(p), value, suggestions)
}
