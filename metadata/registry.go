package metadata

import (
	"sync"
)

// Registry is the explicit schema service the decoder resolves against:
// an insert-once mapping from spelled type names to identities, plus
// explicit kind overrides for types whose tag cannot be derived
// structurally (enums, optionals). The default instance lives for the
// process; tests construct fresh instances for isolation.
type Registry struct {
	names sync.Map // string -> TypeID, insert-once
	kinds sync.Map // TypeID -> Kind, insert-once
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the process-wide registry, initialized on first
// use and never torn down.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register records T's identity in the default registry and returns it.
func Register[T any]() TypeID {
	return TypeFor[T]()
}

// RegisterAs records T's identity with an explicit kind override in the
// default registry. Used for kinds the structural rules cannot derive:
// optional wrappers and enum-like sum types.
func RegisterAs[T any](k Kind) TypeID {
	t := TypeFor[T]()
	DefaultRegistry().SetKind(t, k)
	return t
}

// SetKind records an explicit kind override. The first write wins;
// conflicting re-registration is ignored, matching the insert-once cache
// policy everywhere else.
func (r *Registry) SetKind(t TypeID, k Kind) {
	if !t.Valid() {
		return
	}
	r.kinds.LoadOrStore(t, k)
}

func (r *Registry) kindOverride(t TypeID) (Kind, bool) {
	if v, ok := r.kinds.Load(t); ok {
		return v.(Kind), true
	}
	return 0, false
}

// LookupName resolves a spelled type name back to an identity. Both the
// package-qualified short form and the import-path-qualified form resolve.
func (r *Registry) LookupName(name string) (TypeID, bool) {
	if v, ok := r.names.Load(name); ok {
		return v.(TypeID), true
	}
	return TypeID{}, false
}

// Record indexes t under every spelling a generic-argument vector may use
// for it. TypeOf and TypeFor do this against the default registry; fresh
// registries populate themselves through this method.
func (r *Registry) Record(t TypeID) {
	r.recordName(t)
}

func (r *Registry) recordName(t TypeID) {
	if !t.Valid() {
		return
	}
	rt := t.rt
	r.names.LoadOrStore(rt.String(), t)
	if full := fullName(rt); full != "" {
		r.names.LoadOrStore(full, t)
	}
}
