package tree

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAML(t *testing.T) {
	yaml := `
apple:
  material: apple
  custom-model-data: 12
  restore:
    health: 2.5
  hidden: false
  lore:
    - plain line
    - text: colored
      color: [255, 0, 10]
  empty:
`

	root, err := ParseYAML([]byte(yaml))
	require.NoError(t, err)
	require.True(t, root.IsMapping())
	assert.Equal(t, []string{"apple"}, root.Keys())

	apple, ok := root.Get("apple")
	require.True(t, ok)
	assert.Equal(t, []string{"material", "custom-model-data", "restore", "hidden", "lore", "empty"}, apple.Keys())

	n, _ := apple.Get("custom-model-data")
	k, _ := n.ScalarKind()
	assert.Equal(t, ScalarInt, k)

	n, _ = apple.Lookup("restore.health")
	f, ok := n.AsFloat()
	assert.True(t, ok)
	assert.InDelta(t, 2.5, f, 1e-9)

	n, _ = apple.Get("hidden")
	b, ok := n.AsBool()
	assert.True(t, ok)
	assert.False(t, b)

	n, _ = apple.Lookup("lore[1].color")
	assert.Equal(t, "[255, 0, 10]", n.String())

	_, ok = apple.Get("empty")
	assert.False(t, ok)
	assert.True(t, apple.Has("empty"))
}

func TestParseYAMLKeepsAuthorText(t *testing.T) {
	root, err := ParseYAML([]byte("a: 0x1F\nb: yes\nc: '12'\n"))
	require.NoError(t, err)

	n, _ := root.Get("a")
	i, ok := n.AsInt()
	assert.True(t, ok)
	assert.Equal(t, int64(31), i)

	text, _ := n.Text()
	assert.Equal(t, "0x1F", text)

	// YAML 1.2: "yes" is a plain string.
	n, _ = root.Get("b")
	_, ok = n.AsBool()
	assert.False(t, ok)

	n, _ = root.Get("c")
	s, ok := n.AsString()
	assert.True(t, ok)
	assert.Equal(t, "12", s)
}

func TestParseYAMLAnchorsAndMerge(t *testing.T) {
	yaml := `
base: &base
  material: potion
  required-level: 3
brew:
  <<: *base
  required-level: 5
copy: *base
`

	root, err := ParseYAML([]byte(yaml))
	require.NoError(t, err)

	brew, _ := root.Get("brew")
	assert.Equal(t, []string{"material", "required-level"}, brew.Keys())

	n, _ := brew.Get("required-level")
	lvl, _ := n.AsInt()
	assert.Equal(t, int64(5), lvl)

	n, ok := root.Lookup("copy.material")
	require.True(t, ok)

	s, _ := n.AsString()
	assert.Equal(t, "potion", s)
}

func TestParseYAMLAliasesAreShared(t *testing.T) {
	yaml := `
color: &c [1, 2, 3]
a: {color: *c}
b: {color: *c}
`

	root, err := ParseYAML([]byte(yaml))
	require.NoError(t, err)

	a, ok := root.Lookup("a.color")
	require.True(t, ok)

	b, ok := root.Lookup("b.color")
	require.True(t, ok)

	assert.Same(t, a, b)
	assert.Equal(t, "[1, 2, 3]", b.String())
}

func TestParseYAMLAliasExpansionLimit(t *testing.T) {
	var sb strings.Builder

	sb.WriteString("l0: &l0 [x, x, x, x, x, x, x, x, x, x]\n")

	for i := 1; i <= 9; i++ {
		fmt.Fprintf(&sb, "l%d: &l%d [", i, i)

		for j := range 10 {
			if j > 0 {
				sb.WriteString(", ")
			}

			fmt.Fprintf(&sb, "*l%d", i-1)
		}

		sb.WriteString("]\n")
	}

	_, err := ParseYAML([]byte(sb.String()))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrYAMLTooLarge)
}

func TestParseYAMLSelfAlias(t *testing.T) {
	_, err := ParseYAML([]byte("a: &a [1, *a]\n"))
	assert.Error(t, err)
}

func TestParseYAMLEmptyAndInvalid(t *testing.T) {
	root, err := ParseYAML(nil)
	require.NoError(t, err)
	assert.True(t, root.IsNull())

	_, err = ParseYAML([]byte("a: [1, 2"))
	assert.Error(t, err)

	_, err = ParseYAML([]byte("? [a, b]\n: c\n"))
	assert.Error(t, err)
}
