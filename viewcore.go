package viewcore

import (
	"github.com/declview/viewcore/metadata"
)

// View is the base renderable capability. Composite views return their
// one-step expansion from Body; primitive leaves return nil.
type View interface {
	Body() View
}

// Modifier wraps a view in decoration or behavior. Modify returns the
// composed view; it must not mutate content.
type Modifier interface {
	Modify(content View) View
}

// MultiView is the multi-child capability. A container implementing it owns
// its flattening rule: it extends ctx per child (offset, identity, trait,
// modifier tokens) and recurses through tr. Returning stop=true short-circuits
// the remaining siblings at every level above.
type MultiView interface {
	View
	FlattenChildren(tr Traverser, ctx Context) (stop bool, err error)
}

// NativeRepresentable marks a view that renders via an embedded native
// widget. It is always a leaf, even when the type also implements MultiView;
// dispatch checks it first.
type NativeRepresentable interface {
	View
	MakeNativeView() any
}

// StatefulView marks a view whose Body is bound to the designated main
// executor. Evaluating it off that executor requires a synchronous hop.
type StatefulView interface {
	View
	StateAffinity()
}

// Traverser is implemented by the flattening engine. Descend appends the
// child's concrete type token to ctx's path and recurses into the child.
// A nil child contributes nothing.
type Traverser interface {
	Descend(ctx Context, child View) (stop bool, err error)
}

// Leaf is one terminal renderable unit reported by a traversal. View is the
// modifier-composed view, Type its concrete type identity.
type Leaf struct {
	View   View
	Type   metadata.TypeID
	Path   Path
	Traits Traits
}

// Visitor receives each leaf in traversal order. Returning false requests
// early termination; no leaf after that point is visited.
type Visitor interface {
	VisitLeaf(leaf Leaf) bool
}

// VisitorFunc adapts a function to the Visitor interface.
type VisitorFunc func(leaf Leaf) bool

func (f VisitorFunc) VisitLeaf(leaf Leaf) bool {
	return f(leaf)
}
