package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "brewing.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, filepath.Join(".", "items"), cfg.ItemsPath())
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "items", cfg.ItemsDir)
	assert.Equal(t, filepath.Dir(path), cfg.DataDir)
	assert.Empty(t, cfg.Path)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
items-dir = "templates"
tier-stem = "tiers"
jobs = 3
format = "json"
color = "never"
max-diagnostics = 10
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "templates", cfg.ItemsDir)
	assert.Equal(t, "tiers", cfg.TierStem)
	assert.Equal(t, 3, cfg.Jobs)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.Equal(t, 10, cfg.MaxDiagnostics)
	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "templates"), cfg.ItemsPath())
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, `
jobs = 3
format = "json"
`)

	t.Setenv("BREWING_JOBS", "8")
	t.Setenv("BREWING_ITEMS_DIR", "/srv/items")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Jobs)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "/srv/items", cfg.ItemsPath())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
		target  error
	}{
		{name: "unknown key", content: "itemsdir = \"x\"\n", target: ErrUnknownKey},
		{name: "negative jobs", content: "jobs = -1\n", target: ErrInvalid},
		{name: "bad color", content: "color = \"sometimes\"\n", target: ErrInvalid},
		{name: "empty tier stem", content: "tier-stem = \" \"\n", target: ErrInvalid},
		{name: "bad env color", env: map[string]string{"BREWING_COLOR": "rainbow"}, target: ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load(writeConfig(t, tt.content))
			if err == nil {
				err = cfg.Validate()
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestLoadLeavesValidationToCaller(t *testing.T) {
	t.Setenv("BREWING_COLOR", "rainbow")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "rainbow", cfg.Color)
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)

	cfg.Color = ColorNever
	assert.NoError(t, cfg.Validate())
}

func TestLoadMalformedTOML(t *testing.T) {
	_, err := Load(writeConfig(t, "jobs = \n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse TOML")
}

func TestLoadMalformedEnv(t *testing.T) {
	t.Setenv("BREWING_JOBS", "many")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse environment")
}
