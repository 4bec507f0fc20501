// Package errors provides structured error types for the assetcache library.
//
// Errors are categorized by Phase (where in the acquire pipeline the error
// occurred) and Kind (error category). The Error type carries the offending
// path and a cause chain.
//
// Use the convenience constructors for common patterns:
//
//	err := errors.NotFound("textures/missing.png")
//	err := errors.DecodeFailed("meshes/broken.obj", "obj")
//
// All errors implement the standard error interface and support errors.Is/As.
// Failures in this library are local and non-fatal: storage reads signal
// failure through empty results, and the manager returns these errors as
// values rather than panicking.
package errors
