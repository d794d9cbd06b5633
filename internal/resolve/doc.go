// Package resolve turns parsed item template trees into item.Descriptor
// values.
//
// Resolution is tolerant. A field that is missing, mistyped or names
// something unknown is reported to the pass's diagnostic.Sink and resolves
// to absent (or to its default); it never stops sibling fields, items or
// files from resolving.
//
// Field resolvers share one shape:
//
//	func (r *Resolver) Field(file tree.SourceFile, section *tree.Node, at tree.Path) (T, bool)
//
// section is the mapping holding the field and at is the path of that
// mapping from the file root. The boolean is false when the field is
// absent, either because the author omitted it or because it failed.
package resolve
