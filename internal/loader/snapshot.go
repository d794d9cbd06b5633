package loader

import (
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"

	"brewing-items/internal/common"
	"brewing-items/internal/diagnostic"
	"brewing-items/internal/item"
	"brewing-items/internal/registry"
)

// digestConfig renders descriptors deterministically for hashing.
var digestConfig = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Snapshot is the immutable result of one load pass.
type Snapshot struct {
	id       uuid.UUID
	items    map[string]item.Descriptor
	ids      []string
	tiers    *registry.Tiers
	diags    []diagnostic.Diagnostic
	files    int
	loadedAt time.Time
	digest   uint64
}

func newSnapshot(items map[string]item.Descriptor, tiers *registry.Tiers, diags []diagnostic.Diagnostic,
	files int, loadedAt time.Time,
) *Snapshot {
	s := &Snapshot{
		id:       uuid.New(),
		items:    items,
		ids:      common.SortedKeys(items),
		tiers:    tiers,
		diags:    diags,
		files:    files,
		loadedAt: loadedAt,
	}

	h := xxhash.New()
	for _, id := range s.ids {
		digestConfig.Fdump(h, items[id])
	}

	s.digest = h.Sum64()

	return s
}

// ID identifies the pass that produced the snapshot.
func (s *Snapshot) ID() uuid.UUID {
	return s.id
}

// Get returns the descriptor with the given identifier.
func (s *Snapshot) Get(id string) (item.Descriptor, bool) {
	d, ok := s.items[id]
	return d, ok
}

// IDs returns all item identifiers sorted.
func (s *Snapshot) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)

	return out
}

// Descriptors returns all descriptors sorted by identifier.
func (s *Snapshot) Descriptors() []item.Descriptor {
	out := make([]item.Descriptor, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, s.items[id])
	}

	return out
}

// Len returns the number of descriptors.
func (s *Snapshot) Len() int {
	return len(s.ids)
}

// Tiers returns the tier registry the pass resolved against.
func (s *Snapshot) Tiers() *registry.Tiers {
	return s.tiers
}

// Diagnostics returns a copy of the pass diagnostics in file order.
func (s *Snapshot) Diagnostics() []diagnostic.Diagnostic {
	out := make([]diagnostic.Diagnostic, len(s.diags))
	copy(out, s.diags)

	return out
}

// HasErrors reports whether a file of the pass failed to load.
func (s *Snapshot) HasErrors() bool {
	for i := range s.diags {
		if s.diags[i].Severity == diagnostic.SeverityError {
			return true
		}
	}

	return false
}

// Files returns the number of files the pass listed.
func (s *Snapshot) Files() int {
	return s.files
}

// LoadedAt returns when the pass completed.
func (s *Snapshot) LoadedAt() time.Time {
	return s.loadedAt
}

// Digest returns a hash of the descriptors. Two passes over unchanged files
// have the same digest.
func (s *Snapshot) Digest() uint64 {
	return s.digest
}
