package conformance

import (
	"reflect"
	"sync"

	"go.uber.org/zap"

	"github.com/declview/viewcore/metadata"
)

// ProtocolID identifies a capability interface. Comparable by identity,
// like metadata.TypeID.
type ProtocolID struct {
	rt reflect.Type
}

// ProtocolFor returns the identity of capability interface P. P must be an
// interface type; anything else is a programming error and panics.
func ProtocolFor[P any]() ProtocolID {
	rt := reflect.TypeFor[P]()
	if rt.Kind() != reflect.Interface {
		panic("conformance: ProtocolFor requires an interface type, got " + rt.String())
	}
	return ProtocolID{rt: rt}
}

// Valid reports whether the identity refers to a protocol.
func (p ProtocolID) Valid() bool {
	return p.rt != nil
}

func (p ProtocolID) String() string {
	if p.rt == nil {
		return "<invalid>"
	}
	return p.rt.String()
}

// Handle is a capability-checked witness that a specific type conforms to a
// specific protocol. Handles are only ever constructed by Resolve, so a
// handle and the value it is used with are guaranteed to describe the same
// type as long as they travel together.
type Handle struct {
	typ   metadata.TypeID
	proto ProtocolID
	// pointerWitness is set when only the reference form of the type
	// satisfies the protocol.
	pointerWitness bool
}

// Type returns the conforming type's identity.
func (h *Handle) Type() metadata.TypeID {
	return h.typ
}

// Protocol returns the protocol's identity.
func (h *Handle) Protocol() ProtocolID {
	return h.proto
}

// PointerWitness reports whether conformance holds only through a reference.
func (h *Handle) PointerWitness() bool {
	return h.pointerWitness
}

type pairKey struct {
	typ   metadata.TypeID
	proto ProtocolID
}

// entry caches both outcomes: a nil handle is a legitimate negative answer.
type entry struct {
	h *Handle
}

// Resolver answers whether a runtime type implements a capability. Lookups,
// positive and negative alike, cache process-wide per (type, protocol) pair
// in an insert-once map: entries are never mutated or evicted, so reads race
// safely and only insertion synchronizes. The traversal asks this on every
// node of every pass, which is why the cache exists at all.
type Resolver struct {
	cache sync.Map // pairKey -> entry
}

// NewResolver returns an empty resolver, for tests that need isolation from
// the process-wide instance.
func NewResolver() *Resolver {
	return &Resolver{}
}

var (
	defaultResolver     *Resolver
	defaultResolverOnce sync.Once
)

// Default returns the process-wide resolver, initialized on first use and
// never torn down. Its size is bounded by the number of distinct
// (type, protocol) pairs the process instantiates.
func Default() *Resolver {
	defaultResolverOnce.Do(func() {
		defaultResolver = NewResolver()
	})
	return defaultResolver
}

// Resolve locates a conformance of t to p. ok=false means no conformance
// exists; that is a branch condition for callers, not an error.
func (r *Resolver) Resolve(t metadata.TypeID, p ProtocolID) (*Handle, bool) {
	if !t.Valid() || !p.Valid() {
		return nil, false
	}

	key := pairKey{typ: t, proto: p}
	if v, ok := r.cache.Load(key); ok {
		e := v.(entry)
		return e.h, e.h != nil
	}

	var h *Handle
	rt := t.Reflect()
	switch {
	case rt.Implements(p.rt):
		h = &Handle{typ: t, proto: p}
	case rt.Kind() != reflect.Pointer && reflect.PointerTo(rt).Implements(p.rt):
		h = &Handle{typ: t, proto: p, pointerWitness: true}
	}

	Logger().Debug("conformance lookup",
		zap.String("type", t.String()),
		zap.String("protocol", p.String()),
		zap.Bool("conforms", h != nil))

	actual, _ := r.cache.LoadOrStore(key, entry{h: h})
	e := actual.(entry)
	return e.h, e.h != nil
}

// Resolve resolves against the process-wide resolver.
func Resolve(t metadata.TypeID, p ProtocolID) (*Handle, bool) {
	return Default().Resolve(t, p)
}
