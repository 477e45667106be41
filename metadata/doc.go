// Package metadata decodes runtime type information into a closed, typed
// surface: kind classification, tuple layouts, generic-argument vectors,
// and field descriptors.
//
// # Classification Gate
//
// Every decode is gated behind a positive Classify result. Classify returns
// ok=false (not an error) for types outside the known kind set, and callers
// must treat those as opaque. Decoding a kind the caller did not positively
// identify is the one unrecoverable failure class in this library, so the
// gate is structural, not advisory: DecodeTuple and Field refuse with typed
// errors instead of reading a layout that was never verified.
//
// # Registry
//
// Go exposes no raw metadata vector for instantiated generics, so argument
// resolution goes through an explicit registry of spelled names, populated
// as a side effect of TypeOf/TypeFor. A type that has never passed through
// the process resolves to an invalid identity.
//
// # Caching
//
// Field descriptors cache process-wide per (type, field name) in an
// insert-once map; entries are never evicted or mutated, so reads race
// safely. Tuple layouts are cheap and recomputed per call.
package metadata
