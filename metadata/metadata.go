package metadata

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/declview/viewcore/metadata/internal/kinds"
)

// Kind is the closed tag set of runtime type kinds.
type Kind = kinds.Kind

const (
	KindStruct      = kinds.KindStruct
	KindClass       = kinds.KindClass
	KindEnum        = kinds.KindEnum
	KindOptional    = kinds.KindOptional
	KindTuple       = kinds.KindTuple
	KindFunction    = kinds.KindFunction
	KindExistential = kinds.KindExistential
	KindMetatype    = kinds.KindMetatype
	KindOpaque      = kinds.KindOpaque
)

// TypeID is an opaque handle uniquely identifying a runtime type. It is
// comparable and hashable by identity, never owns the type, and is valid for
// the life of the process. The zero TypeID identifies no type.
type TypeID struct {
	rt reflect.Type
}

// TypeOf returns the type identity of v's dynamic type. The identity's name
// is recorded in the default registry as a side effect, which is what lets
// generic-argument vectors resolve back to identities later. A nil v yields
// the zero TypeID.
func TypeOf(v any) TypeID {
	rt := reflect.TypeOf(v)
	if rt == nil {
		return TypeID{}
	}
	t := TypeID{rt: rt}
	DefaultRegistry().recordName(t)
	return t
}

// TypeFor returns the type identity for T.
func TypeFor[T any]() TypeID {
	t := TypeID{rt: reflect.TypeFor[T]()}
	DefaultRegistry().recordName(t)
	return t
}

// Valid reports whether the identity refers to a type.
func (t TypeID) Valid() bool {
	return t.rt != nil
}

// Reflect exposes the underlying descriptor.
func (t TypeID) Reflect() reflect.Type {
	return t.rt
}

// String returns the package-qualified spelling of the type.
func (t TypeID) String() string {
	if t.rt == nil {
		return "<invalid>"
	}
	return t.rt.String()
}

var metatype = reflect.TypeFor[reflect.Type]()

// Classify reads the type's kind tag. It returns ok=false for types outside
// the known tag set; callers must treat those as opaque and never decode
// them further. Explicit registry overrides (enum, optional) win over the
// structural rules.
func Classify(t TypeID) (Kind, bool) {
	return DefaultRegistry().Classify(t)
}

// Classify is the registry-scoped form of the package-level Classify.
func (r *Registry) Classify(t TypeID) (Kind, bool) {
	if !t.Valid() {
		return 0, false
	}
	if k, ok := r.kindOverride(t); ok {
		return k, true
	}

	rt := t.rt
	switch rt.Kind() {
	case reflect.Struct:
		if isTupleStruct(rt) {
			return KindTuple, true
		}
		return KindStruct, true
	case reflect.Pointer:
		if rt.Elem().Kind() == reflect.Struct {
			return KindClass, true
		}
		return 0, false
	case reflect.Interface:
		if rt.Implements(metatype) {
			return KindMetatype, true
		}
		return KindExistential, true
	case reflect.Func:
		return KindFunction, true
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return KindOpaque, true
	default:
		// Slices, maps, channels and the rest carry no tag we know.
		return 0, false
	}
}

// isTupleStruct reports whether rt has the positional element shape: one or
// more exported fields named V0..Vn in order.
func isTupleStruct(rt reflect.Type) bool {
	n := rt.NumField()
	if n == 0 {
		return false
	}
	for i := 0; i < n; i++ {
		f := rt.Field(i)
		if f.Name != "V"+strconv.Itoa(i) {
			return false
		}
	}
	return true
}

// fullName returns the import-path-qualified spelling, the form generic
// argument vectors use for named types. Empty for unnamed types.
func fullName(rt reflect.Type) string {
	if rt.PkgPath() == "" || rt.Name() == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString(rt.PkgPath())
	b.WriteByte('.')
	b.WriteString(rt.Name())
	return b.String()
}
