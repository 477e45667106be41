package metadata

import (
	"reflect"
	"sync"
	"unsafe"

	"github.com/declview/viewcore/errors"
)

// FieldDescriptor describes one stored property of a struct or class:
// name, declared type, and byte offset from the start of the instance
// storage. Layout is immutable for a given type, so descriptors cache
// process-wide per (type, field name).
type FieldDescriptor struct {
	Name   string
	Type   TypeID
	Offset uintptr
}

type fieldKey struct {
	rt   reflect.Type
	name string
}

// FieldCache is the insert-once process-wide cache for field descriptors.
// The decode walk recurses through embedded members, which is the expensive
// part worth caching. Entries are never evicted; the cache is bounded by the
// number of distinct (type, field) pairs the process touches.
type FieldCache struct {
	m sync.Map // fieldKey -> FieldDescriptor
}

// NewFieldCache returns an empty cache, for tests that need isolation from
// the process-wide instance.
func NewFieldCache() *FieldCache {
	return &FieldCache{}
}

var (
	defaultFieldCache     *FieldCache
	defaultFieldCacheOnce sync.Once
)

// DefaultFieldCache returns the process-wide field descriptor cache.
func DefaultFieldCache() *FieldCache {
	defaultFieldCacheOnce.Do(func() {
		defaultFieldCache = NewFieldCache()
	})
	return defaultFieldCache
}

// Field decodes the descriptor for the named stored property of t, which
// must classify as struct, class, or tuple. Class identities decode against
// the pointee's layout. A missing field is a typed not-found error.
func Field(t TypeID, name string) (FieldDescriptor, error) {
	return DefaultFieldCache().Field(t, name)
}

// Field is the cache-scoped form of the package-level Field.
func (c *FieldCache) Field(t TypeID, name string) (FieldDescriptor, error) {
	rt, err := layoutTypeOf(t)
	if err != nil {
		return FieldDescriptor{}, err
	}

	key := fieldKey{rt: rt, name: name}
	if v, ok := c.m.Load(key); ok {
		return v.(FieldDescriptor), nil
	}

	desc, ok := decodeField(rt, name, 0)
	if !ok {
		return FieldDescriptor{}, errors.New(errors.PhaseField, errors.KindNotFound).
			Type(t.String()).
			Detail("no stored property %q", name).
			Build()
	}

	actual, _ := c.m.LoadOrStore(key, desc)
	return actual.(FieldDescriptor), nil
}

// layoutTypeOf gates field decoding behind a positive classification and
// returns the type whose layout actually holds the fields.
func layoutTypeOf(t TypeID) (reflect.Type, error) {
	k, ok := Classify(t)
	if !ok {
		return nil, errors.UnknownKind(errors.PhaseField, t.String())
	}
	if !k.HasLayout() {
		return nil, errors.New(errors.PhaseField, errors.KindTypeMismatch).
			Type(t.String()).
			Want("struct, class, or tuple").
			Detail("classified as %s", k).
			Build()
	}
	if k == KindClass {
		return t.rt.Elem(), nil
	}
	return t.rt, nil
}

// decodeField walks rt's stored properties, descending into embedded
// members with their offsets accumulated, the way an inherited member
// region extends a class layout.
func decodeField(rt reflect.Type, name string, base uintptr) (FieldDescriptor, bool) {
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if f.Name == name {
			ft := TypeID{rt: f.Type}
			DefaultRegistry().recordName(ft)
			return FieldDescriptor{
				Name:   name,
				Type:   ft,
				Offset: base + f.Offset,
			}, true
		}
	}
	// Embedded members are searched only after every direct field misses.
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			if desc, ok := decodeField(f.Type, name, base+f.Offset); ok {
				return desc, true
			}
		}
	}
	return FieldDescriptor{}, false
}

// FieldValue reads the named stored property of v as type T. The read is an
// unchecked reinterpretation of the instance storage at the decoded offset,
// which is only safe because the declared type is compared against T first;
// a mismatch is a recoverable typed error, never a raw read.
func FieldValue[T any](v any, name string) (T, error) {
	var zero T

	base, layout, err := instanceStorage(v)
	if err != nil {
		return zero, err
	}

	desc, err := DefaultFieldCache().Field(layout, name)
	if err != nil {
		return zero, err
	}

	requested := reflect.TypeFor[T]()
	if requested != desc.Type.Reflect() {
		return zero, errors.TypeMismatch(errors.PhaseField, []string{name},
			requested.String(), desc.Type.String())
	}

	return *(*T)(unsafe.Add(base, desc.Offset)), nil
}

// SetFieldValue writes the named stored property of target, which must be a
// pointer so the write lands in the caller's instance rather than a copy.
func SetFieldValue[T any](target any, name string, value T) error {
	rt := reflect.TypeOf(target)
	if rt == nil || rt.Kind() != reflect.Pointer {
		return errors.New(errors.PhaseField, errors.KindInvalidInput).
			Detail("target must be a non-nil pointer").
			Build()
	}
	rv := reflect.ValueOf(target)
	if rv.IsNil() {
		return errors.New(errors.PhaseField, errors.KindInvalidInput).
			Detail("target must be a non-nil pointer").
			Build()
	}

	desc, err := DefaultFieldCache().Field(TypeID{rt: rt}, name)
	if err != nil {
		return err
	}

	requested := reflect.TypeFor[T]()
	if requested != desc.Type.Reflect() {
		return errors.TypeMismatch(errors.PhaseField, []string{name},
			requested.String(), desc.Type.String())
	}

	*(*T)(unsafe.Add(rv.UnsafePointer(), desc.Offset)) = value
	return nil
}

// instanceStorage returns the base address of v's instance storage plus the
// identity whose layout describes it. Value instances are copied into fresh
// addressable storage; class instances read through the reference.
func instanceStorage(v any) (unsafe.Pointer, TypeID, error) {
	rt := reflect.TypeOf(v)
	if rt == nil {
		return nil, TypeID{}, errors.New(errors.PhaseField, errors.KindInvalidInput).
			Detail("value is nil").
			Build()
	}

	if rt.Kind() == reflect.Pointer {
		rv := reflect.ValueOf(v)
		if rv.IsNil() {
			return nil, TypeID{}, errors.New(errors.PhaseField, errors.KindInvalidInput).
				Type(rt.String()).
				Detail("nil reference").
				Build()
		}
		return rv.UnsafePointer(), TypeID{rt: rt}, nil
	}

	tmp := reflect.New(rt)
	tmp.Elem().Set(reflect.ValueOf(v))
	return tmp.UnsafePointer(), TypeID{rt: rt}, nil
}
