package views

import (
	"github.com/declview/viewcore"
)

// Modified wraps content with a modifier. When flattening reaches it, the
// modifier is pushed onto the context's accumulated chain and re-applied
// once a leaf is reached; the most recently pushed modifier ends up closest
// to the leaf, so an outer Modified node composes outermost.
type Modified struct {
	Content  viewcore.View
	Modifier viewcore.Modifier
}

// Modify wraps v with m.
func Modify(v viewcore.View, m viewcore.Modifier) Modified {
	return Modified{Content: v, Modifier: m}
}

func (m Modified) Body() viewcore.View { return nil }

func (m Modified) FlattenChildren(tr viewcore.Traverser, ctx viewcore.Context) (bool, error) {
	if m.Modifier != nil {
		ctx = ctx.PushModifier(m.Modifier)
	}
	return tr.Descend(ctx, m.Content)
}

// PaddingModifier insets its content.
type PaddingModifier struct {
	Amount int
}

func (p PaddingModifier) Modify(content viewcore.View) viewcore.View {
	return Padded{Content: content, Amount: p.Amount}
}

// Padded is the composed form PaddingModifier produces.
type Padded struct {
	Content viewcore.View
	Amount  int
}

func (p Padded) Body() viewcore.View { return p.Content }

// OpacityModifier fades its content.
type OpacityModifier struct {
	Value float64
}

func (o OpacityModifier) Modify(content viewcore.View) viewcore.View {
	return Faded{Content: content, Value: o.Value}
}

// Faded is the composed form OpacityModifier produces.
type Faded struct {
	Content viewcore.View
	Value   float64
}

func (f Faded) Body() viewcore.View { return f.Content }

// Padding is sugar for Modify(v, PaddingModifier{amount}).
func Padding(v viewcore.View, amount int) Modified {
	return Modify(v, PaddingModifier{Amount: amount})
}

// Opacity is sugar for Modify(v, OpacityModifier{value}).
func Opacity(v viewcore.View, value float64) Modified {
	return Modify(v, OpacityModifier{Value: value})
}
