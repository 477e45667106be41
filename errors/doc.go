// Package errors provides structured error types for the viewcore library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: positional path, type
// names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseField, errors.KindTypeMismatch).
//		Path("badge", "count").
//		Type("string").
//		Want("int").
//		Detail("stored field has a different declared type").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseField, path, "string", "int")
//	err := errors.NotFound(errors.PhaseField, path, "field \"count\"")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
