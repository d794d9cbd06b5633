// Package tree provides the in-memory configuration tree that item and tier
// files are parsed into, and the providers that build it.
//
// # Node variants
//
// A Node is exactly one of:
//
//   - Null: an explicit empty value (treated as absent by every accessor)
//   - Scalar: string, integer, float or boolean, with the author's text kept
//   - Sequence: an ordered list of nodes
//   - Mapping: string keys to nodes, in author order
//
// Values are read with per-variant accessors (AsString, AsInt, AsFloat,
// AsBool, Text, Get, Items) that report whether the node has the requested
// shape; nothing is cast blindly.
//
// # Path Syntax
//
// Paths address nodes from the file root:
//   - Keys: "apple"
//   - Nested keys: "apple.display.text"
//   - Sequence elements: "apple.lore[2]"
//   - Nested element fields: "apple.effect[0].potion-type"
//
// # Providers
//
// Files are parsed by extension: ".yml"/".yaml" with gopkg.in/yaml.v3 and
// ".toml" with github.com/BurntSushi/toml. DirSource lists and parses the
// supported files of one directory of any fs.FS.
package tree
