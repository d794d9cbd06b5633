package loader

import (
	"fmt"
	"io"
	"log"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize/english"
	"golang.org/x/sync/errgroup"

	"brewing-items/internal/diagnostic"
	"brewing-items/internal/item"
	"brewing-items/internal/registry"
	"brewing-items/internal/resolve"
	"brewing-items/internal/tree"
)

// DefaultTierStem selects tier.yml, tier.toml and so on as tier files.
const DefaultTierStem = "tier"

// Source lists and parses the files of the items directory.
type Source interface {
	List() ([]tree.SourceFile, error)
	Parse(f tree.SourceFile) (*tree.Node, error)
}

// Bootstrapper makes sure the default files exist before a pass reads them.
type Bootstrapper interface {
	Ensure() error
}

// BootstrapFunc adapts a function to Bootstrapper.
type BootstrapFunc func() error

// Ensure calls f().
func (f BootstrapFunc) Ensure() error {
	return f()
}

// Options configures a Loader. Only Source is required.
type Options struct {
	Source     Source
	Bootstrap  Bootstrapper
	Registries *registry.Set
	TierStem   string
	Jobs       int
	Logger     *log.Logger
	Now        func() time.Time
}

// Loader runs load passes and publishes their snapshots.
type Loader struct {
	opts Options

	mu      sync.Mutex
	state   atomic.Int32
	current atomic.Pointer[Snapshot]
}

// New returns an idle loader.
func New(opts Options) *Loader {
	if opts.Bootstrap == nil {
		opts.Bootstrap = BootstrapFunc(func() error { return nil })
	}

	if opts.Registries == nil {
		opts.Registries = registry.Defaults()
	}

	if opts.TierStem == "" {
		opts.TierStem = DefaultTierStem
	}

	if opts.Jobs <= 0 {
		opts.Jobs = runtime.GOMAXPROCS(0)
	}

	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}

	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Loader{opts: opts}
}

// State returns the current phase.
func (l *Loader) State() State {
	return State(l.state.Load())
}

// Current returns the last published snapshot, or nil before the first
// successful pass.
func (l *Loader) Current() *Snapshot {
	return l.current.Load()
}

func (l *Loader) setState(s State) {
	l.state.Store(int32(s))
}

// Reload runs one full pass and publishes its snapshot. Passes are
// serialized. When bootstrapping or listing fails the error is returned and
// the previous snapshot and state are kept.
func (l *Loader) Reload() (*Snapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	prev := l.State()

	l.setState(Bootstrapping)

	if err := l.opts.Bootstrap.Ensure(); err != nil {
		l.setState(prev)
		return nil, fmt.Errorf("failed to bootstrap: %w", err)
	}

	files, err := l.opts.Source.List()
	if err != nil {
		l.setState(prev)
		return nil, fmt.Errorf("failed to list item files: %w", err)
	}

	tierFiles, itemFiles := l.split(files)

	l.setState(LoadingTier)

	tiers, tierSinks := l.loadTiers(tierFiles)
	set := l.opts.Registries.WithTiers(tiers)

	l.setState(LoadingItems)

	items, itemSinks := l.loadItems(set, itemFiles)

	sink := diagnostic.NewSink()
	for _, s := range append(tierSinks, itemSinks...) {
		sink.Merge(s)
	}

	snap := newSnapshot(items, tiers, sink.Items(), len(files), l.opts.Now())
	l.current.Store(snap)
	l.setState(Ready)

	l.logPass(snap)

	return snap, nil
}

// split separates tier files from item files, keeping listing order.
func (l *Loader) split(files []tree.SourceFile) (tiers, items []tree.SourceFile) {
	for _, f := range files {
		if f.Stem() == l.opts.TierStem {
			tiers = append(tiers, f)
		} else {
			items = append(items, f)
		}
	}

	return tiers, items
}

func (l *Loader) loadTiers(files []tree.SourceFile) (*registry.Tiers, []*diagnostic.Sink) {
	results := forEachFile(l.opts.Source, files, l.opts.Jobs,
		func(f tree.SourceFile, root *tree.Node, sink *diagnostic.Sink) map[string]item.ContentSpec {
			return resolve.New(l.opts.Registries, sink).Tiers(f, root)
		})

	merged := make(map[string]item.ContentSpec)
	sinks := make([]*diagnostic.Sink, 0, len(results))

	for _, r := range results {
		for name, c := range r.value {
			merged[name] = c
		}

		sinks = append(sinks, r.sink)
	}

	return registry.NewTiers(merged), sinks
}

func (l *Loader) loadItems(set *registry.Set, files []tree.SourceFile) (map[string]item.Descriptor, []*diagnostic.Sink) {
	results := forEachFile(l.opts.Source, files, l.opts.Jobs,
		func(f tree.SourceFile, root *tree.Node, sink *diagnostic.Sink) []item.Descriptor {
			return resolve.New(set, sink).File(f, root)
		})

	items := make(map[string]item.Descriptor)
	sinks := make([]*diagnostic.Sink, 0, len(results))

	// Later files win on duplicate identifiers.
	for _, r := range results {
		for _, d := range r.value {
			items[d.ID] = d
		}

		sinks = append(sinks, r.sink)
	}

	return items, sinks
}

type fileResult[T any] struct {
	value T
	sink  *diagnostic.Sink
}

// forEachFile parses and resolves files in parallel. Each file gets its own
// sink and results keep the order of files. A file that cannot be parsed is
// reported as a FileError and contributes the zero value.
func forEachFile[T any](src Source, files []tree.SourceFile, jobs int,
	fn func(f tree.SourceFile, root *tree.Node, sink *diagnostic.Sink) T,
) []fileResult[T] {
	results := make([]fileResult[T], len(files))
	if len(files) == 0 {
		return results
	}

	var g errgroup.Group
	g.SetLimit(min(jobs, len(files)))

	for i, f := range files {
		g.Go(func() error {
			sink := diagnostic.NewSink()
			results[i].sink = sink

			root, err := src.Parse(f)
			if err != nil {
				sink.FileError(f.Path, err)
				return nil
			}

			results[i].value = fn(f, root, sink)

			return nil
		})
	}

	_ = g.Wait()

	return results
}

func (l *Loader) logPass(snap *Snapshot) {
	for _, d := range snap.diags {
		l.opts.Logger.Print(d.String())
	}

	l.opts.Logger.Printf("pass %s: loaded %s and %s from %s, %s",
		snap.ID(),
		english.Plural(snap.Len(), "item", ""),
		english.Plural(snap.Tiers().Len(), "tier", ""),
		english.Plural(snap.Files(), "file", ""),
		english.Plural(len(snap.diags), "diagnostic", ""))
}
