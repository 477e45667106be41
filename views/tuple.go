package views

import (
	"reflect"

	"github.com/declview/viewcore"
	"github.com/declview/viewcore/errors"
	"github.com/declview/viewcore/metadata"
)

// TupleView is a variadic positional container. Each element gets an offset
// token for its declared position, so same-typed siblings flatten to
// distinct identifiers.
type TupleView struct {
	children []viewcore.View
}

// TupleOf builds a positional container from children in declared order.
func TupleOf(children ...viewcore.View) TupleView {
	return TupleView{children: children}
}

func (t TupleView) Body() viewcore.View { return nil }

func (t TupleView) FlattenChildren(tr viewcore.Traverser, ctx viewcore.Context) (bool, error) {
	for i, child := range t.children {
		stop, err := tr.Descend(ctx.WithOffset(i), child)
		if stop || err != nil {
			return stop, err
		}
	}
	return false, nil
}

// Pair is the arity-2 tuple type. Its element fields follow the positional
// layout the metadata decoder classifies as a tuple, and flattening walks
// the decoded layout rather than naming the fields.
type Pair[A, B viewcore.View] struct {
	V0 A
	V1 B
}

// PairOf builds a Pair.
func PairOf[A, B viewcore.View](a A, b B) Pair[A, B] {
	return Pair[A, B]{V0: a, V1: b}
}

func (p Pair[A, B]) Body() viewcore.View { return nil }

func (p Pair[A, B]) FlattenChildren(tr viewcore.Traverser, ctx viewcore.Context) (bool, error) {
	return flattenTupleElements(p, tr, ctx)
}

// Triple is the arity-3 tuple type.
type Triple[A, B, C viewcore.View] struct {
	V0 A
	V1 B
	V2 C
}

// TripleOf builds a Triple.
func TripleOf[A, B, C viewcore.View](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{V0: a, V1: b, V2: c}
}

func (t Triple[A, B, C]) Body() viewcore.View { return nil }

func (t Triple[A, B, C]) FlattenChildren(tr viewcore.Traverser, ctx viewcore.Context) (bool, error) {
	return flattenTupleElements(t, tr, ctx)
}

// flattenTupleElements decodes the tuple layout off the container's own
// metadata and descends per element in declared order. The decode is gated
// by classification inside DecodeTuple; a container reaching here without
// the tuple shape is a construction bug surfaced as a typed error.
func flattenTupleElements(v viewcore.View, tr viewcore.Traverser, ctx viewcore.Context) (bool, error) {
	layout, err := metadata.DecodeTuple(metadata.TypeOf(v))
	if err != nil {
		return false, err
	}

	rv := reflect.ValueOf(v)
	for i := 0; i < layout.Count; i++ {
		child, ok := rv.Field(i).Interface().(viewcore.View)
		if !ok {
			return false, errors.New(errors.PhaseFlatten, errors.KindUnsupported).
				Type(layout.Elements[i].Type.String()).
				Want("viewcore.View").
				Detail("tuple element %d is not renderable", i).
				Build()
		}
		stop, err := tr.Descend(ctx.WithOffset(i), child)
		if stop || err != nil {
			return stop, err
		}
	}
	return false, nil
}
