package metadata

import (
	"github.com/declview/viewcore/errors"
)

// TupleElement is one decoded tuple element: its type identity and byte
// offset within the tuple's storage.
type TupleElement struct {
	Type   TypeID
	Offset uintptr
}

// TupleLayout is the decoded shape of a tuple type. It is structurally
// immutable once the type exists and cheap to recompute, so it is not
// cached.
type TupleLayout struct {
	Elements []TupleElement
	Count    int
}

// DecodeTuple decodes element count and per-element type/offset for a tuple
// type. Decoding any other kind is a layout-assumption violation, so the
// classification gate here is mandatory and failing it is a typed error,
// never a raw read.
func DecodeTuple(t TypeID) (TupleLayout, error) {
	k, ok := Classify(t)
	if !ok {
		return TupleLayout{}, errors.UnknownKind(errors.PhaseDecode, t.String())
	}
	if k != KindTuple {
		return TupleLayout{}, errors.New(errors.PhaseDecode, errors.KindTypeMismatch).
			Type(t.String()).
			Want("tuple").
			Detail("classified as %s", k).
			Build()
	}

	rt := t.rt
	n := rt.NumField()
	elems := make([]TupleElement, n)
	for i := 0; i < n; i++ {
		f := rt.Field(i)
		elems[i] = TupleElement{
			Type:   TypeID{rt: f.Type},
			Offset: f.Offset,
		}
		DefaultRegistry().recordName(elems[i].Type)
	}

	return TupleLayout{Elements: elems, Count: n}, nil
}
