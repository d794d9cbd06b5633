package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brewing-items/internal/diagnostic"
	"brewing-items/internal/item"
)

func TestEffectsDefaults(t *testing.T) {
	items, diags := resolveYAML(t, `
x:
  material: potion
  effect:
    - potion-type: speed
    - potion-type: NIGHT_VISION
      amplifier: 2
    - potion-type: Poison
      duration: 0
      show-icon: true
`)

	assert.Empty(t, diags)
	assert.Equal(t, []item.EffectSpec{
		{Type: "SPEED", Duration: 20, Amplifier: 0},
		{Type: "NIGHT_VISION", Duration: 20, Amplifier: 2},
		{Type: "POISON", Duration: 0, ShowIcon: true},
	}, items["x"].Effects)
}

func TestEffectsOneBadElementDiscardsList(t *testing.T) {
	tests := []struct {
		name    string
		element string
		path    string
		kind    diagnostic.Kind
	}{
		{name: "unknown effect", element: "{potion-type: sped}", path: "x.effect[1].potion-type", kind: diagnostic.UnresolvableReference},
		{name: "missing potion type", element: "{duration: 10}", path: "x.effect[1].potion-type", kind: diagnostic.MissingField},
		{name: "potion type not a scalar", element: "{potion-type: [speed]}", path: "x.effect[1].potion-type", kind: diagnostic.MissingField},
		{name: "numeric potion type", element: "{potion-type: 5}", path: "x.effect[1].potion-type", kind: diagnostic.UnresolvableReference},
		{name: "unknown key", element: "{potion-type: speed, level: 2}", path: "x.effect[1].level", kind: diagnostic.MalformedElement},
		{name: "negative duration", element: "{potion-type: speed, duration: -5}", path: "x.effect[1].duration", kind: diagnostic.MalformedElement},
		{name: "duration overflow", element: "{potion-type: speed, duration: 3000000000}", path: "x.effect[1].duration", kind: diagnostic.MalformedElement},
		{name: "amplifier not int", element: "{potion-type: speed, amplifier: high}", path: "x.effect[1].amplifier", kind: diagnostic.MalformedElement},
		{name: "ambient not bool", element: "{potion-type: speed, ambient: 1}", path: "x.effect[1].ambient", kind: diagnostic.MalformedElement},
		{name: "element not a mapping", element: "speed", path: "x.effect[1]", kind: diagnostic.MalformedElement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, diags := resolveYAML(t, `
x:
  material: potion
  effect:
    - potion-type: regeneration
    - `+tt.element+`
    - potion-type: speed
`)

			assert.Nil(t, items["x"].Effects)

			require.Len(t, diags, 2)
			assert.Equal(t, tt.kind, diags[0].Kind)
			assert.Equal(t, tt.path, diags[0].Path)

			assert.Equal(t, diagnostic.EmptyAfterFiltering, diags[1].Kind)
			assert.Equal(t, "x.effect", diags[1].Path)
			assert.Equal(t,
				"the key x.effect in items/test.yml has 1 incorrect entries out of 3, the whole list is ignored",
				diags[1].Message)
		})
	}
}

func TestEffectsUnknownSuggests(t *testing.T) {
	_, diags := resolveYAML(t, `
x:
  material: potion
  effect:
    - potion-type: fire_resistanse
`)

	require.Len(t, diags, 2)
	require.NotEmpty(t, diags[0].Suggestions)
	assert.Equal(t, "FIRE_RESISTANCE", diags[0].Suggestions[0])
}

func TestEffectsEmptyOrInvalidList(t *testing.T) {
	items, diags := resolveYAML(t, `
empty:
  material: potion
  effect: []
scalar:
  material: potion
  effect: speed
`)

	assert.Nil(t, items["empty"].Effects)
	assert.Nil(t, items["scalar"].Effects)

	require.Len(t, diags, 1)
	assert.Equal(t, diagnostic.MalformedElement, diags[0].Kind)
	assert.Equal(t, "scalar.effect", diags[0].Path)
}
