package views

import (
	"github.com/declview/viewcore"
	"github.com/declview/viewcore/metadata"
)

// Optional carries zero-or-one wrapped view. Empty contributes zero leaves:
// the visitor is never invoked for absence.
type Optional struct {
	Content viewcore.View
}

// Some wraps a present view.
func Some(v viewcore.View) Optional {
	return Optional{Content: v}
}

// None is the absent optional.
func None() Optional {
	return Optional{}
}

func init() {
	// The optional tag cannot be derived structurally.
	metadata.RegisterAs[Optional](metadata.KindOptional)
}

func (o Optional) Body() viewcore.View { return nil }

// IsSome reports presence.
func (o Optional) IsSome() bool {
	return o.Content != nil
}

func (o Optional) FlattenChildren(tr viewcore.Traverser, ctx viewcore.Context) (bool, error) {
	if o.Content == nil {
		return false, nil
	}
	return tr.Descend(ctx, o.Content)
}

// Conditional is the result of an if/else branch. Only the taken branch
// contributes leaves and identifier segments; the untaken branch contributes
// nothing at all.
type Conditional struct {
	True   viewcore.View
	False  viewcore.View
	IsTrue bool
}

// If builds a Conditional.
func If(cond bool, then, els viewcore.View) Conditional {
	return Conditional{IsTrue: cond, True: then, False: els}
}

func (c Conditional) Body() viewcore.View { return nil }

func (c Conditional) FlattenChildren(tr viewcore.Traverser, ctx viewcore.Context) (bool, error) {
	if c.IsTrue {
		return tr.Descend(ctx, c.True)
	}
	return tr.Descend(ctx, c.False)
}
