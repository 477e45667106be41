package layout

import (
	"reflect"
	"strings"
)

// Vector is a decoded trailing generic-argument vector: the argument type
// names exactly as the runtime spells them in the instantiated type's
// descriptor, in declaration order.
type Vector struct {
	Args []string
}

// Strategy locates a nominal type's descriptor and decodes its trailing
// generic-argument vector. Struct and class layouts place the vector
// differently; both share the same vector encoding, which is why the parse
// itself is common to all strategies.
type Strategy interface {
	// TrailingVector returns the decoded vector, or ok=false when the type
	// is non-generic (or the strategy cannot locate a descriptor).
	TrailingVector(t reflect.Type) (Vector, bool)
}

// StructStrategy reads the vector straight off the value type's own
// descriptor.
type StructStrategy struct{}

func (StructStrategy) TrailingVector(t reflect.Type) (Vector, bool) {
	return parseVector(t.String())
}

// ClassStrategy reads the vector off the pointee's descriptor. The vector
// starts after the inherited member region: an embedded base contributes its
// arguments to its own descriptor, never to the derived type's vector, so
// only the derived type's own name is decoded here.
type ClassStrategy struct{}

func (ClassStrategy) TrailingVector(t reflect.Type) (Vector, bool) {
	if t.Kind() != reflect.Pointer {
		return Vector{}, false
	}
	elem := t.Elem()
	if elem.Kind() != reflect.Struct {
		return Vector{}, false
	}
	return parseVector(elem.String())
}

// parseVector splits the bracketed argument list out of an instantiated
// generic type name. Nested instantiations keep their own brackets intact;
// only top-level commas separate arguments.
func parseVector(name string) (Vector, bool) {
	open := strings.IndexByte(name, '[')
	if open < 0 || !strings.HasSuffix(name, "]") {
		return Vector{}, false
	}

	inner := name[open+1 : len(name)-1]
	if inner == "" {
		return Vector{}, false
	}

	var args []string
	depth := 0
	start := 0
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '[':
			depth++
		case ']':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(inner[start:i]))
				start = i + 1
			}
		}
	}
	args = append(args, strings.TrimSpace(inner[start:]))

	return Vector{Args: args}, true
}
