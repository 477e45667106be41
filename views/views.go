package views

import (
	"github.com/declview/viewcore"
)

// EmptyView contributes zero leaves.
type EmptyView struct{}

func (EmptyView) Body() viewcore.View { return nil }

func (EmptyView) FlattenChildren(tr viewcore.Traverser, ctx viewcore.Context) (bool, error) {
	return false, nil
}

// Text is a terminal renderable unit. The traversal never interprets Value;
// only the leaf's existence, position, and type identity matter.
type Text struct {
	Value string
}

func (Text) Body() viewcore.View { return nil }

// Image is a terminal renderable unit.
type Image struct {
	Name string
}

func (Image) Body() viewcore.View { return nil }

// Spacer is a terminal renderable unit.
type Spacer struct{}

func (Spacer) Body() viewcore.View { return nil }

// Group wraps content without contributing structure of its own: flattening
// recurses straight into the wrapped content.
type Group struct {
	Content viewcore.View
}

func (g Group) Body() viewcore.View { return nil }

func (g Group) FlattenChildren(tr viewcore.Traverser, ctx viewcore.Context) (bool, error) {
	return tr.Descend(ctx, g.Content)
}
