package views

import (
	"github.com/declview/viewcore"
)

// ForEach renders one view per element of a homogeneous sequence, in
// iteration order. When ID is set, each element's identifier segment is its
// stable identity key, so reordering or inserting elements keeps every
// surviving element's identifier intact; without ID the raw index is used
// and identifiers are positional only.
type ForEach[T any] struct {
	Data    []T
	ID      func(T) string
	Content func(T) viewcore.View
}

// ForEachKeyed builds an iteration keyed by a stable per-element identity.
func ForEachKeyed[T any](data []T, id func(T) string, content func(T) viewcore.View) ForEach[T] {
	return ForEach[T]{Data: data, ID: id, Content: content}
}

// ForEachIndexed builds an iteration keyed by position.
func ForEachIndexed[T any](data []T, content func(T) viewcore.View) ForEach[T] {
	return ForEach[T]{Data: data, Content: content}
}

func (f ForEach[T]) Body() viewcore.View { return nil }

func (f ForEach[T]) FlattenChildren(tr viewcore.Traverser, ctx viewcore.Context) (bool, error) {
	if f.Content == nil {
		return false, nil
	}
	for i, elem := range f.Data {
		var elemCtx viewcore.Context
		if f.ID != nil {
			elemCtx = ctx.WithID(f.ID(elem))
		} else {
			elemCtx = ctx.WithOffset(i)
		}
		stop, err := tr.Descend(elemCtx, f.Content(elem))
		if stop || err != nil {
			return stop, err
		}
	}
	return false, nil
}
