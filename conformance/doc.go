// Package conformance resolves runtime capability conformances and performs
// typed visitor dispatch without boxing.
//
// Resolve answers "does type T implement protocol P" for types unknown at
// the querying code's compile time, caching both positive and negative
// answers process-wide per (type, protocol) pair. The returned Handle is a
// capability-checked witness: it is only ever constructed by Resolve, and As
// re-validates the (handle, value) pairing before reinterpreting, so the
// handle-and-value-travel-together invariant is enforced rather than assumed.
//
// For callbacks that need the concrete type itself instead of a capability
// interface, Table provides double dispatch through closures that captured
// their concrete type at registration.
package conformance
