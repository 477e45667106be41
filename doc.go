// Package viewcore provides runtime type introspection and view-tree
// flattening for declarative view hierarchies.
//
// The library discovers the concrete type behind an opaque view value and
// flattens composite view expressions (tuples, conditionals, iterations,
// sections, modifier wrappers) into an ordered sequence of leaf views with
// stable positional identifiers, without heap-allocated type-erasing boxes
// on the traversal path.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	viewcore/            Root package with View, MultiView, Visitor contracts
//	│                    and the traversal data model (Path, Traits, Context)
//	├── metadata/        Type metadata decoder: kind classification, tuple
//	│                    layouts, generic-argument vectors, field descriptors
//	├── conformance/     Capability resolution with an insert-once cache and
//	│                    the typed visitor dispatch bridge
//	├── flatten/         The recursive flattening engine
//	├── views/           Container kinds: group, tuple, optional, conditional,
//	│                    iteration, section, modified content
//	├── style/           Appearance/data split: configurations and styles
//	├── mainthread/      Designated executor for state-affine body evaluation
//	└── errors/          Structured error types
//
// # Quick Start
//
// Flatten a composite view and visit its leaves:
//
//	tree := views.NewSection(
//	    views.Text{Value: "Header"},
//	    views.TupleOf(views.Text{Value: "a"}, views.Text{Value: "b"}),
//	    views.Text{Value: "Footer"},
//	)
//
//	leaves, err := flatten.CollectLeaves(tree)
//	for _, leaf := range leaves {
//	    fmt.Println(leaf.Path, leaf.Type, leaf.Traits)
//	}
//
// # Positional Identity
//
// Every leaf's Path is built from alternating offset and type tokens in
// traversal order. Paths are stable: re-flattening semantically unchanged
// input yields equal paths for corresponding leaves, and no two distinct
// leaves in one traversal share a path. This is the property diffing
// machinery in a host framework consumes.
//
// # Capability Resolution
//
// Containers are discovered through the conformance resolver rather than
// hard-coded type switches: every node is asked whether its runtime type
// implements the MultiView capability, and if so the container's own
// flattening rule runs. Lookups (positive and negative) are cached
// process-wide per (type, protocol) pair.
//
// # Thread Safety
//
// Traversal is synchronous and single-threaded. The conformance and field
// caches are safe for concurrent use (insert-once maps). The one cross-thread
// point is evaluating a StatefulView body, which hops synchronously to the
// configured mainthread.Executor.
package viewcore
