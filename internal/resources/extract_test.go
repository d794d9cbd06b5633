package resources

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brewing-items/internal/diagnostic"
	"brewing-items/internal/registry"
	"brewing-items/internal/resolve"
	"brewing-items/internal/tree"
)

func TestEnsureExtractsIntoMissingDir(t *testing.T) {
	dir := t.TempDir()
	itemsDir := filepath.Join(dir, "items")
	configPath := filepath.Join(dir, "brewing.toml")

	require.NoError(t, NewExtractor(itemsDir, configPath).Ensure())

	assert.FileExists(t, filepath.Join(itemsDir, "tier.yml"))
	assert.FileExists(t, filepath.Join(itemsDir, "template.yml"))
	assert.FileExists(t, configPath)
}

func TestEnsureLeavesPopulatedDirAlone(t *testing.T) {
	dir := t.TempDir()
	itemsDir := filepath.Join(dir, "items")
	require.NoError(t, os.MkdirAll(itemsDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(itemsDir, "mine.yml"), []byte("a: {material: apple}\n"), 0o644))

	configPath := filepath.Join(dir, "brewing.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("jobs = 2\n"), 0o644))

	require.NoError(t, NewExtractor(itemsDir, configPath).Ensure())

	assert.NoFileExists(t, filepath.Join(itemsDir, "tier.yml"))
	assert.NoFileExists(t, filepath.Join(itemsDir, "template.yml"))

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, "jobs = 2\n", string(data))
}

func TestEnsureFillsEmptyDirWithoutConfig(t *testing.T) {
	itemsDir := t.TempDir()

	require.NoError(t, NewExtractor(itemsDir, "").Ensure())
	require.NoError(t, NewExtractor(itemsDir, "").Ensure())

	entries, err := os.ReadDir(itemsDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestEnsureFailsWhenItemsDirIsAFile(t *testing.T) {
	dir := t.TempDir()
	itemsDir := filepath.Join(dir, "items")
	require.NoError(t, os.WriteFile(itemsDir, nil, 0o644))

	assert.Error(t, NewExtractor(itemsDir, "").Ensure())
}

// The shipped defaults must resolve without a single diagnostic.
func TestDefaultsResolveCleanly(t *testing.T) {
	files := Defaults()
	sink := diagnostic.NewSink()

	tierData, err := fs.ReadFile(files, TierFile)
	require.NoError(t, err)
	tierRoot, err := tree.ParseYAML(tierData)
	require.NoError(t, err)

	tiers := resolve.New(registry.Defaults(), sink).Tiers(tree.NewSourceFile(TierFile), tierRoot)
	assert.Len(t, tiers, 5)

	set := registry.Defaults().WithTiers(registry.NewTiers(tiers))

	itemData, err := fs.ReadFile(files, TemplateFile)
	require.NoError(t, err)
	itemRoot, err := tree.ParseYAML(itemData)
	require.NoError(t, err)

	items := resolve.New(set, sink).File(tree.NewSourceFile(TemplateFile), itemRoot)
	require.Len(t, items, 2)
	assert.Len(t, items[0].Effects, 2)
	assert.Equal(t, "uncommon", items[0].Tier)

	assert.Empty(t, sink.Items())

	_, err = fs.ReadFile(files, ConfigFile)
	assert.NoError(t, err)
}
