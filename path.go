package viewcore

import (
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/declview/viewcore/metadata"
)

// ElementKind discriminates the token kinds inside a Path.
type ElementKind uint8

const (
	// ElementType records the concrete type reached after descending one level.
	ElementType ElementKind = iota
	// ElementOffset records a sibling position within a tuple, iteration or section.
	ElementOffset
	// ElementID records a caller-supplied stable identity key for an iteration
	// element; preferred over the raw index so identifiers survive reordering.
	ElementID
)

// PathElement is one token of a positional identifier.
type PathElement struct {
	Type  metadata.TypeID
	ID    string
	Index int
	Kind  ElementKind
}

func (e PathElement) String() string {
	switch e.Kind {
	case ElementType:
		return e.Type.String()
	case ElementOffset:
		return "[" + strconv.Itoa(e.Index) + "]"
	case ElementID:
		return "[#" + e.ID + "]"
	default:
		return "[?]"
	}
}

// Path is the stable positional identifier of a leaf within a flattened
// tree: alternating offset and type tokens appended in traversal order.
// Paths have value semantics; extending one never mutates it, so sibling
// branches cannot observe each other's segments. Two leaves with equal
// paths are the same logical view across re-flattenings of unchanged input.
type Path struct {
	elems []PathElement
}

// Len returns the number of tokens.
func (p Path) Len() int {
	return len(p.elems)
}

// At returns the i-th token.
func (p Path) At(i int) PathElement {
	return p.elems[i]
}

// Equal reports token-wise equality.
func (p Path) Equal(other Path) bool {
	if len(p.elems) != len(other.elems) {
		return false
	}
	for i, e := range p.elems {
		if e != other.elems[i] {
			return false
		}
	}
	return true
}

// String renders the canonical slash-joined form, usable as a map key.
func (p Path) String() string {
	var b strings.Builder
	for i, e := range p.elems {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(e.String())
	}
	return b.String()
}

// Hash returns a 64-bit digest of the canonical form. Equal paths always
// hash equal; callers keying compact tables by identifier use this instead
// of retaining the rendered string.
func (p Path) Hash() uint64 {
	h := fnv.New64a()
	for i, e := range p.elems {
		if i > 0 {
			h.Write([]byte{'/'})
		}
		h.Write([]byte(e.String()))
	}
	return h.Sum64()
}

// Strings returns the per-token rendering, for error paths and logs.
func (p Path) Strings() []string {
	out := make([]string, len(p.elems))
	for i, e := range p.elems {
		out[i] = e.String()
	}
	return out
}

// append returns a new Path with e appended. The backing array is copied so
// the receiver and all prior copies stay untouched.
func (p Path) append(e PathElement) Path {
	elems := make([]PathElement, len(p.elems)+1)
	copy(elems, p.elems)
	elems[len(p.elems)] = e
	return Path{elems: elems}
}

// WithType returns p extended by a concrete-type token.
func (p Path) WithType(t metadata.TypeID) Path {
	return p.append(PathElement{Kind: ElementType, Type: t})
}

// WithOffset returns p extended by a sibling-offset token.
func (p Path) WithOffset(i int) Path {
	return p.append(PathElement{Kind: ElementOffset, Index: i})
}

// WithID returns p extended by a stable-identity token.
func (p Path) WithID(id string) Path {
	return p.append(PathElement{Kind: ElementID, ID: id})
}
