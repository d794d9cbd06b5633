package tree

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// SourceFile identifies the file a tree came from.
type SourceFile struct {
	// Path is the display path used in diagnostics.
	Path string
	// Name is the base name inside its directory.
	Name string
}

// NewSourceFile returns the identity of a file with the given display path.
func NewSourceFile(p string) SourceFile {
	return SourceFile{Path: p, Name: filepath.Base(p)}
}

// Ext returns the lower-cased extension including the dot.
func (f SourceFile) Ext() string {
	return strings.ToLower(path.Ext(f.Name))
}

// Stem returns the base name without its extension.
func (f SourceFile) Stem() string {
	return strings.TrimSuffix(f.Name, path.Ext(f.Name))
}

// String returns the display path.
func (f SourceFile) String() string {
	return f.Path
}

// Provider parses raw file content into a tree.
type Provider interface {
	Parse(data []byte) (*Node, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(data []byte) (*Node, error)

// Parse calls f(data).
func (f ProviderFunc) Parse(data []byte) (*Node, error) {
	return f(data)
}

var providers = map[string]Provider{
	".yml":  ProviderFunc(ParseYAML),
	".yaml": ProviderFunc(ParseYAML),
	".toml": ProviderFunc(ParseTOML),
}

// ProviderFor returns the provider for a file extension such as ".yml".
func ProviderFor(ext string) (Provider, bool) {
	p, ok := providers[strings.ToLower(ext)]
	return p, ok
}

// DirSource lists and parses the supported files of one directory.
type DirSource struct {
	fsys  fs.FS
	dir   string
	label string
}

// NewDirSource returns a source for dir inside fsys. Diagnostics show files
// as label joined with their name.
func NewDirSource(fsys fs.FS, dir, label string) *DirSource {
	return &DirSource{fsys: fsys, dir: dir, label: label}
}

// OpenDir returns a source for a directory on disk.
func OpenDir(dir string) *DirSource {
	return NewDirSource(os.DirFS(dir), ".", dir)
}

// List returns the supported files of the directory sorted by name.
// Subdirectories, hidden files and unknown extensions are skipped.
func (s *DirSource) List() ([]SourceFile, error) {
	entries, err := fs.ReadDir(s.fsys, s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.label, err)
	}

	files := make([]SourceFile, 0, len(entries))

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		if _, ok := ProviderFor(path.Ext(name)); !ok {
			continue
		}

		files = append(files, SourceFile{Path: filepath.Join(s.label, name), Name: name})
	}

	return files, nil
}

// Parse reads and parses one listed file.
func (s *DirSource) Parse(f SourceFile) (*Node, error) {
	p, ok := ProviderFor(f.Ext())
	if !ok {
		return nil, fmt.Errorf("unsupported file type %q", f.Ext())
	}

	data, err := fs.ReadFile(s.fsys, path.Join(s.dir, f.Name))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", f.Path, err)
	}

	n, err := p.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Path, err)
	}

	return n, nil
}
