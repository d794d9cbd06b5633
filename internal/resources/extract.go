package resources

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

//go:embed defaults
var defaults embed.FS

// Names of the embedded files, relative to the defaults root.
const (
	TierFile     = "items/tier.yml"
	TemplateFile = "items/template.yml"
	ConfigFile   = "brewing.toml"
)

// Defaults returns the embedded default files rooted at the data directory
// layout.
func Defaults() fs.FS {
	sub, err := fs.Sub(defaults, "defaults")
	if err != nil {
		panic(fmt.Sprintf("resources: embedded defaults missing: %v", err))
	}

	return sub
}

// Extractor writes the default files into a data directory.
type Extractor struct {
	files      fs.FS
	itemsDir   string
	configPath string
}

// NewExtractor returns an extractor filling itemsDir with the default item
// files and writing the default config to configPath. An empty configPath
// skips the config file.
func NewExtractor(itemsDir, configPath string) *Extractor {
	return &Extractor{files: Defaults(), itemsDir: itemsDir, configPath: configPath}
}

// Ensure writes the default item files when itemsDir is missing or empty and
// the default config when configPath does not exist. Existing files are
// never overwritten.
func (e *Extractor) Ensure() error {
	empty, err := isEmptyDir(e.itemsDir)
	if err != nil {
		return err
	}

	if empty {
		if err := os.MkdirAll(e.itemsDir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", e.itemsDir, err)
		}

		for _, name := range []string{TierFile, TemplateFile} {
			if err := e.extract(name, filepath.Join(e.itemsDir, path.Base(name))); err != nil {
				return err
			}
		}
	}

	if e.configPath == "" {
		return nil
	}

	if _, err := os.Stat(e.configPath); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat %s: %w", e.configPath, err)
	}

	if err := os.MkdirAll(filepath.Dir(e.configPath), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(e.configPath), err)
	}

	return e.extract(ConfigFile, e.configPath)
}

func (e *Extractor) extract(name, dst string) error {
	data, err := fs.ReadFile(e.files, name)
	if err != nil {
		return fmt.Errorf("failed to read embedded %s: %w", name, err)
	}

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}

	return nil
}

// isEmptyDir reports whether dir is missing or has no entries.
func isEmptyDir(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	return len(entries) == 0, nil
}
