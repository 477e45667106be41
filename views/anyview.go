package views

import (
	"github.com/declview/viewcore"
	"github.com/declview/viewcore/metadata"
)

// AnyView is a type-erasing box that preserves the erased type's identity.
// Flattening treats it as transparent: the box adds its own type token and
// recurses into the erased content, so boxing never hides leaves.
type AnyView struct {
	content viewcore.View
	erased  metadata.TypeID
}

// Any boxes v. Boxing an AnyView returns it unchanged.
func Any(v viewcore.View) AnyView {
	if av, ok := v.(AnyView); ok {
		return av
	}
	return AnyView{content: v, erased: metadata.TypeOf(v)}
}

func (a AnyView) Body() viewcore.View { return a.content }

// Unwrap returns the erased content.
func (a AnyView) Unwrap() viewcore.View {
	return a.content
}

// Erased returns the identity of the erased content's type.
func (a AnyView) Erased() metadata.TypeID {
	return a.erased
}

func (a AnyView) FlattenChildren(tr viewcore.Traverser, ctx viewcore.Context) (bool, error) {
	return tr.Descend(ctx, a.content)
}
