package conformance

import (
	"sync"

	"github.com/declview/viewcore/errors"
	"github.com/declview/viewcore/metadata"
)

// As reinterprets an erased value as capability P using a handle obtained
// from Resolve. The reinterpretation is only performed after checking that
// the handle was resolved for v's exact dynamic type and for P itself, so a
// handle that did not originate from the same resolve call as the value is a
// typed error rather than a misdispatch.
func As[P any](h *Handle, v any) (P, error) {
	var zero P

	if h == nil {
		return zero, errors.New(errors.PhaseDispatch, errors.KindInvalidInput).
			Detail("nil conformance handle").
			Build()
	}
	if got := metadata.TypeOf(v); got != h.typ {
		return zero, errors.MismatchedHandle(h.typ.String(), got.String())
	}
	if want := ProtocolFor[P](); want != h.proto {
		return zero, errors.New(errors.PhaseDispatch, errors.KindMismatchedHandle).
			Type(want.String()).
			Want(h.proto.String()).
			Detail("handle was resolved for a different protocol").
			Build()
	}

	p, ok := v.(P)
	if !ok {
		// Conformance held only through the reference form; the erased value
		// is the value form and cannot witness it.
		return zero, errors.New(errors.PhaseDispatch, errors.KindTypeMismatch).
			Type(h.typ.String()).
			Want(h.proto.String()).
			Detail("conformance requires the reference form").
			Build()
	}
	return p, nil
}

// Table is a double-dispatch registry: closures keyed by type identity, each
// capturing its concrete type statically at registration time. It is the
// dispatch path for callbacks that need the concrete type itself rather than
// a capability interface.
type Table[R any] struct {
	m sync.Map // metadata.TypeID -> func(any) R
}

// RegisterThunk records a typed thunk for T. The first registration wins.
func RegisterThunk[T any, R any](tb *Table[R], fn func(T) R) {
	t := metadata.TypeFor[T]()
	tb.m.LoadOrStore(t, func(v any) R { return fn(v.(T)) })
}

// Dispatch invokes the thunk registered for v's dynamic type.
func (tb *Table[R]) Dispatch(v any) (R, bool) {
	if f, ok := tb.m.Load(metadata.TypeOf(v)); ok {
		return f.(func(any) R)(v), true
	}
	var zero R
	return zero, false
}

// Registered reports whether a thunk exists for t.
func (tb *Table[R]) Registered(t metadata.TypeID) bool {
	_, ok := tb.m.Load(t)
	return ok
}
