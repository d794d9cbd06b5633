package item

import (
	"fmt"

	"brewing-items/internal/tree"
)

// Material is a canonical material name, e.g. "HONEY_BOTTLE".
type Material string

// EffectType is a canonical status effect name, e.g. "SPEED".
type EffectType string

// Provider is a canonical item provider name, e.g. "MINECRAFT".
type Provider string

// Color is an RGB tint.
type Color struct {
	R, G, B uint8
}

// String returns the color as "#rrggbb".
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ContentSpec is one line of display or lore text with an optional tint.
// A ContentSpec always has text.
type ContentSpec struct {
	Text  string
	Color *Color
}

// Effect defaults applied when a sub-key is omitted.
const (
	DefaultEffectDuration  int32 = 20
	DefaultEffectAmplifier int32 = 0
)

// EffectSpec is one status effect granted by an item.
type EffectSpec struct {
	Type          EffectType
	Duration      int32
	Amplifier     int32
	Ambient       bool
	ShowParticles bool
	ShowIcon      bool
}

// Descriptor is the validated form of one item template. Zero values mean
// "absent" for names, nil means "absent" for optional content and lists.
// Descriptors are values; callers must not modify the slices they share.
type Descriptor struct {
	ID     string
	Source tree.SourceFile

	Material          Material
	Display           *ContentSpec
	Lore              []ContentSpec
	CustomModelData   int
	Tier              string
	RestoreFood       int
	RestoreHealth     float64
	RestoreSaturation float64
	Effects           []EffectSpec
	Command           []string
	RequiredLevel     int
	Provider          Provider
}

// HasMaterial reports whether the material resolved.
func (d Descriptor) HasMaterial() bool {
	return d.Material != ""
}

// HasTier reports whether the item belongs to a known tier.
func (d Descriptor) HasTier() bool {
	return d.Tier != ""
}
