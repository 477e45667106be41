package viewcore

import (
	"strings"

	"github.com/declview/viewcore/metadata"
)

// Traits tags a leaf with its structural role rather than its type.
type Traits uint8

const (
	// TraitHeader marks leaves reached through a section header.
	TraitHeader Traits = 1 << iota
	// TraitFooter marks leaves reached through a section footer.
	TraitFooter
)

// Has reports whether all bits of t are set.
func (tr Traits) Has(t Traits) bool {
	return tr&t == t
}

// With returns tr with the bits of t set.
func (tr Traits) With(t Traits) Traits {
	return tr | t
}

func (tr Traits) String() string {
	if tr == 0 {
		return "none"
	}
	var parts []string
	if tr.Has(TraitHeader) {
		parts = append(parts, "header")
	}
	if tr.Has(TraitFooter) {
		parts = append(parts, "footer")
	}
	return strings.Join(parts, "|")
}

// Context is the per-recursion-step traversal state: the positional
// identifier built so far, the trait flags in effect, and the accumulated
// modifier chain to apply once a leaf is reached. Contexts are values;
// every With/Push returns an extended copy, so siblings never see each
// other's extensions.
type Context struct {
	path      Path
	traits    Traits
	modifiers []Modifier
}

// NewContext returns the empty root context.
func NewContext() Context {
	return Context{}
}

// Path returns the positional identifier accumulated so far.
func (c Context) Path() Path {
	return c.path
}

// Traits returns the trait flags in effect.
func (c Context) Traits() Traits {
	return c.traits
}

// WithType extends the path by a concrete-type token.
func (c Context) WithType(t metadata.TypeID) Context {
	c.path = c.path.WithType(t)
	return c
}

// WithOffset extends the path by a sibling-offset token.
func (c Context) WithOffset(i int) Context {
	c.path = c.path.WithOffset(i)
	return c
}

// WithID extends the path by a stable-identity token.
func (c Context) WithID(id string) Context {
	c.path = c.path.WithID(id)
	return c
}

// WithTrait sets trait flags for everything below this point.
func (c Context) WithTrait(t Traits) Context {
	c.traits = c.traits.With(t)
	return c
}

// PushModifier appends m to the accumulated chain. The chain is re-applied
// once a leaf is reached; the most recently pushed modifier wraps closest
// to the leaf. The backing array is copied to keep sibling isolation.
func (c Context) PushModifier(m Modifier) Context {
	mods := make([]Modifier, len(c.modifiers)+1)
	copy(mods, c.modifiers)
	mods[len(c.modifiers)] = m
	c.modifiers = mods
	return c
}

// ModifierCount returns the accumulated chain length.
func (c Context) ModifierCount() int {
	return len(c.modifiers)
}

// ApplyModifiers composes the accumulated chain around leaf in application
// order: the most recently pushed modifier is applied first, outer wrappers
// last, so an outer Modified node ends up outermost in the result.
func (c Context) ApplyModifiers(leaf View) View {
	v := leaf
	for i := len(c.modifiers) - 1; i >= 0; i-- {
		v = c.modifiers[i].Modify(v)
	}
	return v
}
