// Package loader runs load passes: it bootstraps the data directory, builds
// the tier registry, resolves every item file and publishes the result as an
// immutable Snapshot.
//
// A pass runs to completion or not at all. Readers holding a Snapshot keep
// seeing it unchanged while later passes publish new ones.
package loader
