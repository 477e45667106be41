package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseClassify Phase = "classify" // metadata kind classification
	PhaseDecode   Phase = "decode"   // layout decoding (tuples, generic vectors)
	PhaseResolve  Phase = "resolve"  // conformance resolution
	PhaseDispatch Phase = "dispatch" // typed visitor dispatch
	PhaseFlatten  Phase = "flatten"  // view-tree flattening
	PhaseField    Phase = "field"    // reflective field access
	PhaseStyle    Phase = "style"    // style application
)

// Kind categorizes the error
type Kind string

const (
	KindNotFound         Kind = "not_found"
	KindTypeMismatch     Kind = "type_mismatch"
	KindUnknownKind      Kind = "unknown_kind"
	KindDepthExceeded    Kind = "depth_exceeded"
	KindNilView          Kind = "nil_view"
	KindUnsupported      Kind = "unsupported"
	KindInvalidInput     Kind = "invalid_input"
	KindExecutorStopped  Kind = "executor_stopped"
	KindMismatchedHandle Kind = "mismatched_handle"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	TypeName string
	Want     string
	Detail   string
	Path     []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.TypeName != "" || e.Want != "" {
		b.WriteString(": ")
		if e.TypeName != "" && e.Want != "" {
			b.WriteString("type ")
			b.WriteString(e.TypeName)
			b.WriteString(", want ")
			b.WriteString(e.Want)
		} else if e.TypeName != "" {
			b.WriteString("type ")
			b.WriteString(e.TypeName)
		} else {
			b.WriteString("want ")
			b.WriteString(e.Want)
		}
	}

	if e.Detail != "" {
		if e.TypeName != "" || e.Want != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the positional path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Type sets the offending type name
func (b *Builder) Type(t string) *Builder {
	b.err.TypeName = t
	return b
}

// Want sets the expected type name
func (b *Builder) Want(t string) *Builder {
	b.err.Want = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, got, want string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindTypeMismatch,
		Path:     path,
		TypeName: got,
		Want:     want,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, path []string, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Path:   path,
		Detail: fmt.Sprintf("%s not found", what),
	}
}

// UnknownKind creates an unknown metadata kind error
func UnknownKind(phase Phase, typeName string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindUnknownKind,
		TypeName: typeName,
		Detail:   "type kind is outside the known tag set",
	}
}

// DepthExceeded creates a recursion depth error
func DepthExceeded(path []string, limit int) *Error {
	return &Error{
		Phase:  PhaseFlatten,
		Kind:   KindDepthExceeded,
		Path:   path,
		Detail: fmt.Sprintf("traversal exceeded maximum nesting depth %d", limit),
		Value:  limit,
	}
}

// NilView creates a nil view error
func NilView(phase Phase, path []string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilView,
		Path:   path,
		Detail: "nil view",
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// MismatchedHandle creates an error for a handle/value pair that did not
// originate from the same resolve call
func MismatchedHandle(handleType, valueType string) *Error {
	return &Error{
		Phase:    PhaseDispatch,
		Kind:     KindMismatchedHandle,
		TypeName: valueType,
		Want:     handleType,
		Detail:   "conformance handle was resolved for a different type",
	}
}

// ExecutorStopped creates an error for a call against a closed executor
func ExecutorStopped(detail string) *Error {
	return &Error{
		Phase:  PhaseFlatten,
		Kind:   KindExecutorStopped,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
