package flatten

import (
	"github.com/declview/viewcore/conformance"
	"github.com/declview/viewcore/mainthread"
)

// DefaultMaxDepth bounds traversal recursion. Real view trees are shallow;
// hitting the bound almost always means a self-referential body.
const DefaultMaxDepth = 512

// BodyExpansion controls how the engine treats an opaque view's body.
type BodyExpansion int

const (
	// ExpandStateless evaluates bodies of stateless views only. Stateful
	// views stay opaque unless an executor is configured to host their
	// body evaluation.
	ExpandStateless BodyExpansion = iota

	// ExpandAlways evaluates every body inline, including stateful ones.
	ExpandAlways

	// ExpandNever treats every opaque view as a single leaf.
	ExpandNever
)

type options struct {
	maxDepth  int
	resolver  *conformance.Resolver
	expansion BodyExpansion
	executor  *mainthread.Executor
}

// Option configures a traversal.
type Option func(*options)

func newOptions(opts []Option) options {
	o := options{
		maxDepth:  DefaultMaxDepth,
		resolver:  conformance.Default(),
		expansion: ExpandStateless,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMaxDepth overrides the recursion bound. Non-positive values keep the
// default.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}

// WithResolver uses a dedicated conformance resolver instead of the shared
// default. Useful for tests that must not pollute the process-wide cache.
func WithResolver(r *conformance.Resolver) Option {
	return func(o *options) {
		if r != nil {
			o.resolver = r
		}
	}
}

// WithBodyExpansion sets the body expansion policy.
func WithBodyExpansion(p BodyExpansion) Option {
	return func(o *options) { o.expansion = p }
}

// WithMainExecutor designates the executor that hosts stateful body
// evaluation. When the traversal already runs on it, bodies evaluate inline.
func WithMainExecutor(ex *mainthread.Executor) Option {
	return func(o *options) { o.executor = ex }
}
