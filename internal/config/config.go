// Package config loads the application configuration: built-in defaults,
// then an optional TOML file, then BREWING_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment override, e.g. BREWING_JOBS.
const EnvPrefix = "BREWING_"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var (
	// ErrUnknownKey indicates a key in the config file that no setting uses.
	ErrUnknownKey = errors.New("unknown configuration key")
	// ErrInvalid indicates a setting with an unusable value.
	ErrInvalid = errors.New("invalid configuration")
)

// Config holds the application settings.
type Config struct {
	// DataDir is the base directory; relative ItemsDir values are resolved
	// against it. Defaults to the directory of the config file.
	DataDir string `toml:"data-dir" env:"DATA_DIR"`
	// ItemsDir holds item and tier files.
	ItemsDir string `toml:"items-dir" env:"ITEMS_DIR"`
	// TierStem selects tier files by their name without extension.
	TierStem string `toml:"tier-stem" env:"TIER_STEM"`
	// Jobs bounds parallel file resolution; 0 means GOMAXPROCS.
	Jobs int `toml:"jobs" env:"JOBS"`
	// Format selects the diagnostic renderer.
	Format string `toml:"format" env:"FORMAT"`
	// Color is one of auto, always, never.
	Color string `toml:"color" env:"COLOR"`
	// MaxDiagnostics truncates printed diagnostics; 0 prints all.
	MaxDiagnostics int `toml:"max-diagnostics" env:"MAX_DIAGNOSTICS"`

	// Path is the file the configuration was read from, if any.
	Path string `toml:"-"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DataDir:  ".",
		ItemsDir: "items",
		TierStem: "tier",
		Format:   "pretty",
		Color:    ColorAuto,
	}
}

// Load reads the configuration. A missing file at path is not an error and
// leaves the defaults in place; an empty path skips the file entirely.
// The result is not validated: callers apply their own overrides first and
// then call Validate.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		cfg.DataDir = filepath.Dir(path)

		if err := cfg.decodeFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}

func (c *Config) decodeFile(path string) error {
	meta, err := toml.DecodeFile(path, c)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	c.Path = path

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}

		return fmt.Errorf("%s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}

	return nil
}

// Validate checks settings that have a closed set of values.
func (c Config) Validate() error {
	if c.Jobs < 0 {
		return fmt.Errorf("%w: jobs must not be negative, got %d", ErrInvalid, c.Jobs)
	}

	if c.MaxDiagnostics < 0 {
		return fmt.Errorf("%w: max-diagnostics must not be negative, got %d", ErrInvalid, c.MaxDiagnostics)
	}

	if !slices.Contains([]string{ColorAuto, ColorAlways, ColorNever}, c.Color) {
		return fmt.Errorf("%w: color must be auto, always or never, got %q", ErrInvalid, c.Color)
	}

	if strings.TrimSpace(c.TierStem) == "" {
		return fmt.Errorf("%w: tier-stem must not be empty", ErrInvalid)
	}

	if strings.TrimSpace(c.ItemsDir) == "" {
		return fmt.Errorf("%w: items-dir must not be empty", ErrInvalid)
	}

	return nil
}

// ItemsPath returns ItemsDir resolved against DataDir.
func (c Config) ItemsPath() string {
	if filepath.IsAbs(c.ItemsDir) {
		return c.ItemsDir
	}

	return filepath.Join(c.DataDir, c.ItemsDir)
}
