package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the acquire pipeline the error occurred
type Phase string

const (
	PhaseNormalize Phase = "normalize" // path canonicalization
	PhaseProbe     Phase = "probe"     // loader resolution and existence checks
	PhaseLoad      Phase = "load"      // storage read
	PhaseDecode    Phase = "decode"    // format decoding inside a loader
	PhaseRegistry  Phase = "registry"  // record bookkeeping
)

// Kind categorizes the error
type Kind string

const (
	KindNotFound     Kind = "not_found"
	KindNoLoader     Kind = "no_loader"
	KindDecodeFailed Kind = "decode_failed"
	KindIOFailure    Kind = "io_failure"
	KindInvalidInput Kind = "invalid_input"
	KindUnknownID    Kind = "unknown_identity"
)

// Error is the structured error type used throughout the cache
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Path   string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Path != "" {
		b.WriteString(" at ")
		b.WriteString(e.Path)
	}

	if e.Detail != "" {
		b.WriteString(": ")
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

// Convenience constructors for common error patterns

// NotFound reports a path that does not exist in storage
func NotFound(path string) *Error {
	return &Error{
		Phase: PhaseProbe,
		Kind:  KindNotFound,
		Path:  path,
	}
}

// NoLoader reports a path no registered loader claims
func NoLoader(path string) *Error {
	return &Error{
		Phase:  PhaseProbe,
		Kind:   KindNoLoader,
		Path:   path,
		Detail: "no registered loader handles this path",
	}
}

// DecodeFailed reports a loader whose decode step rejected the bytes
func DecodeFailed(path, format string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindDecodeFailed,
		Path:   path,
		Detail: fmt.Sprintf("%s decoder rejected input", format),
	}
}

// IOFailure reports a storage read that came back empty
func IOFailure(path string) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindIOFailure,
		Path:   path,
		Detail: "storage read returned no bytes",
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// UnknownIdentity reports a registry operation on an identity that was
// never registered
func UnknownIdentity(guid string) *Error {
	return &Error{
		Phase:  PhaseRegistry,
		Kind:   KindUnknownID,
		Detail: fmt.Sprintf("identity %q not registered", guid),
	}
}
