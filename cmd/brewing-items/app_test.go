package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brewing-items/internal/config"
	"brewing-items/internal/item"
)

func TestUseColor(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.True(t, useColor(config.ColorAlways, f))
	assert.False(t, useColor(config.ColorNever, f))
	assert.False(t, useColor(config.ColorAuto, f))
}

func TestNewAppBootstrapsDataDir(t *testing.T) {
	dir := t.TempDir()
	flagConfig = filepath.Join(dir, "brewing.toml")
	t.Cleanup(func() { flagConfig = "brewing.toml" })

	a, err := newApp(checkCmd)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "items"), a.cfg.ItemsPath())

	snap, err := a.loader.Reload()
	require.NoError(t, err)
	assert.Equal(t, []string{"herbal_tea", "honey_wine"}, snap.IDs())
	assert.FileExists(t, filepath.Join(dir, "brewing.toml"))
}

func TestNewAppFlagOverridesEnvironment(t *testing.T) {
	dir := t.TempDir()
	flagConfig = filepath.Join(dir, "brewing.toml")
	t.Setenv("BREWING_COLOR", "bogus")

	colorFlag := rootCmd.PersistentFlags().Lookup("color")
	t.Cleanup(func() {
		flagConfig = "brewing.toml"
		flagColor = ""
		colorFlag.Changed = false
	})

	_, err := newApp(checkCmd)
	require.ErrorIs(t, err, config.ErrInvalid)

	require.NoError(t, rootCmd.PersistentFlags().Set("color", config.ColorNever))

	a, err := newApp(checkCmd)
	require.NoError(t, err)
	assert.Equal(t, config.ColorNever, a.cfg.Color)
	assert.False(t, a.color)
}

func TestWriteItem(t *testing.T) {
	var buf bytes.Buffer

	writeItem(&buf, item.Descriptor{
		ID:       "honey_wine",
		Material: "POTION",
		Display:  &item.ContentSpec{Text: "Honey Wine", Color: &item.Color{R: 255, G: 170}},
		Lore:     []item.ContentSpec{{Text: "Sweet"}},
		Effects:  []item.EffectSpec{{Type: "SPEED", Duration: 20}},
		Command:  []string{"say hi", "heal"},
	}, false)

	out := buf.String()
	assert.Contains(t, out, "honey_wine from")
	assert.Contains(t, out, "Honey Wine #ffaa00")
	assert.Contains(t, out, "lore[0]:")
	assert.Contains(t, out, "SPEED duration=20 amplifier=0")
	assert.Contains(t, out, "say hi | heal")
	assert.Contains(t, out, "tier:                -")
}

func TestWriteItemList(t *testing.T) {
	var buf bytes.Buffer

	writeItemList(&buf, []item.Descriptor{
		{ID: "a", Material: "APPLE"},
		{ID: "long_name"},
	})

	assert.Equal(t, "a          APPLE  \nlong_name  -  \n", buf.String())
}
