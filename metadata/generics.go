package metadata

import (
	"github.com/declview/viewcore/metadata/internal/layout"
)

var (
	structStrategy layout.StructStrategy
	classStrategy  layout.ClassStrategy
)

// GenericArguments decodes the trailing generic-argument vector of an
// instantiated generic type and resolves each argument to an identity
// through the default registry. It returns ok=false for non-generic types
// and for kinds that carry no nominal descriptor.
//
// Struct and class layouts locate the vector differently (a class descriptor
// lives on the pointee, after the inherited member region); the divergence is
// isolated in the two layout strategies. Arguments whose types have never
// passed through TypeOf resolve to invalid identities: the registry knows
// them by name only, as types the process has not instantiated.
func GenericArguments(t TypeID) ([]TypeID, bool) {
	return DefaultRegistry().GenericArguments(t)
}

// GenericArguments is the registry-scoped form of the package-level
// GenericArguments.
func (r *Registry) GenericArguments(t TypeID) ([]TypeID, bool) {
	k, ok := r.Classify(t)
	if !ok || !k.IsNominal() {
		return nil, false
	}

	var strategy layout.Strategy
	if k.IsReference() {
		strategy = classStrategy
	} else {
		strategy = structStrategy
	}

	vec, ok := strategy.TrailingVector(t.rt)
	if !ok {
		return nil, false
	}

	args := make([]TypeID, len(vec.Args))
	for i, name := range vec.Args {
		if id, ok := r.LookupName(name); ok {
			args[i] = id
		}
	}
	return args, true
}
