// Package flatten turns a nested view tree into a flat sequence of leaves.
//
// The engine drives traversal but owns no container knowledge: containers
// implement viewcore.MultiView and are discovered through conformance
// resolution, and each container's FlattenChildren decides how its children
// extend the positional identifier. Opaque views are expanded one body step
// at a time, and the expansion is only followed when it resolves to another
// multi-leaf structure; otherwise the opaque view is itself the leaf.
//
// Dispatch order per node: NativeRepresentable wins (the node is a leaf the
// host renders directly), then MultiView, then body expansion, then leaf.
//
// Traversal is depth-first and synchronous. Visitors stop it early by
// returning false from VisitLeaf, which unwinds without error.
package flatten
