package flatten

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/declview/viewcore"
	"github.com/declview/viewcore/conformance"
	"github.com/declview/viewcore/errors"
	"github.com/declview/viewcore/metadata"
)

var (
	multiViewProtocol = conformance.ProtocolFor[viewcore.MultiView]()
	nativeProtocol    = conformance.ProtocolFor[viewcore.NativeRepresentable]()
)

// Flatten walks v depth-first, expanding every container into its children
// and reporting each leaf to visitor with its positional identifier and
// trait flags. It returns stopped=true when the visitor requested early
// termination. Traversal is synchronous and single-threaded; errors are
// reserved for the depth guard, executor failures, and dispatch violations.
func Flatten(v viewcore.View, visitor viewcore.Visitor, opts ...Option) (stopped bool, err error) {
	if visitor == nil {
		return false, errors.New(errors.PhaseFlatten, errors.KindInvalidInput).
			Detail("nil visitor").
			Build()
	}

	e := &engine{opts: newOptions(opts), visitor: visitor}
	return e.Descend(viewcore.NewContext(), v)
}

// CollectLeaves flattens v and returns every leaf in traversal order.
func CollectLeaves(v viewcore.View, opts ...Option) ([]viewcore.Leaf, error) {
	var leaves []viewcore.Leaf
	_, err := Flatten(v, viewcore.VisitorFunc(func(l viewcore.Leaf) bool {
		leaves = append(leaves, l)
		return true
	}), opts...)
	if err != nil {
		return nil, err
	}
	return leaves, nil
}

// CountLeaves flattens v and returns the number of leaves.
func CountLeaves(v viewcore.View, opts ...Option) (int, error) {
	n := 0
	_, err := Flatten(v, viewcore.VisitorFunc(func(viewcore.Leaf) bool {
		n++
		return true
	}), opts...)
	if err != nil {
		return 0, err
	}
	return n, nil
}

type engine struct {
	opts    options
	visitor viewcore.Visitor
	depth   int
}

// Descend implements viewcore.Traverser: it appends the child's concrete
// type token and recurses. A nil child is absence and contributes nothing.
func (e *engine) Descend(ctx viewcore.Context, child viewcore.View) (bool, error) {
	if child == nil || isNilReference(child) {
		return false, nil
	}

	if e.depth >= e.opts.maxDepth {
		return false, errors.DepthExceeded(ctx.Path().Strings(), e.opts.maxDepth)
	}
	e.depth++
	defer func() { e.depth-- }()

	t := metadata.TypeOf(child)
	ctx = ctx.WithType(t)

	Logger().Debug("descend",
		zap.String("type", t.String()),
		zap.Int("depth", e.depth))

	return e.flattenNode(child, t, ctx)
}

func (e *engine) flattenNode(v viewcore.View, t metadata.TypeID, ctx viewcore.Context) (bool, error) {
	// Most-specific capability first: a native-representable renders as a
	// leaf even when its type also implements MultiView.
	if h, ok := e.opts.resolver.Resolve(t, nativeProtocol); ok {
		if _, err := conformance.As[viewcore.NativeRepresentable](h, v); err == nil {
			return e.visitLeaf(v, ctx)
		}
	}

	if h, ok := e.opts.resolver.Resolve(t, multiViewProtocol); ok {
		mv, err := conformance.As[viewcore.MultiView](h, v)
		if err != nil {
			return false, err
		}
		return mv.FlattenChildren(e, ctx)
	}

	// Opaque composite: examine the one-step expansion. Only recurse when
	// the expansion itself is a multi-leaf structure; otherwise the whole
	// opaque type is one leaf.
	if e.opts.expansion != ExpandNever {
		body, err := e.bodyOf(v)
		if err != nil {
			return false, err
		}
		if body != nil && !isNilReference(body) {
			bt := metadata.TypeOf(body)
			if _, ok := e.opts.resolver.Resolve(bt, multiViewProtocol); ok {
				return e.Descend(ctx, body)
			}
		}
	}

	return e.visitLeaf(v, ctx)
}

// bodyOf evaluates v's one-step expansion. A stateful view's body is
// affinity-bound: off the designated executor the evaluation hops over and
// blocks until it completes, and without an executor the view stays opaque
// unless expansion is forced.
func (e *engine) bodyOf(v viewcore.View) (viewcore.View, error) {
	if _, stateful := v.(viewcore.StatefulView); stateful {
		switch {
		case e.opts.executor != nil && !e.opts.executor.IsCurrent():
			var body viewcore.View
			if err := e.opts.executor.Call(func() { body = v.Body() }); err != nil {
				return nil, err
			}
			return body, nil
		case e.opts.executor != nil:
			return v.Body(), nil
		case e.opts.expansion == ExpandAlways:
			return v.Body(), nil
		default:
			return nil, nil
		}
	}
	return v.Body(), nil
}

func (e *engine) visitLeaf(v viewcore.View, ctx viewcore.Context) (bool, error) {
	composed := ctx.ApplyModifiers(v)
	leaf := viewcore.Leaf{
		View:   composed,
		Type:   metadata.TypeOf(composed),
		Path:   ctx.Path(),
		Traits: ctx.Traits(),
	}

	Logger().Debug("visit leaf",
		zap.String("type", leaf.Type.String()),
		zap.String("path", leaf.Path.String()),
		zap.String("traits", leaf.Traits.String()))

	return !e.visitor.VisitLeaf(leaf), nil
}

// isNilReference detects a typed-nil reference boxed in the View interface,
// which is absence just like an untyped nil.
func isNilReference(v viewcore.View) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
