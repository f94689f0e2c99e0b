// Package mcferr provides the structured error taxonomy the solver surfaces
// to callers: a single Error type tagged with a Code and Severity, carrying
// optional structured Details (an unfeasibility cut, an unbounded cycle, the
// field that failed validation).
//
// This library has no RPC boundary, so unlike its ancestor it carries no
// gRPC status mapping.
package mcferr

import (
	"errors"
	"fmt"
)

// Code identifies one of the solver's fail kinds.
type Code string

const (
	// CodeInvalidInput: malformed load arrays, out-of-range ids, lo>hi,
	// self-loop, unknown node name in DIMACS.
	CodeInvalidInput Code = "INVALID_INPUT"
	// CodeNoRoom: add operation exceeds nmax/mmax.
	CodeNoRoom Code = "NO_ROOM"
	// CodeIllegalMutation: touching a closed or deleted arc, opening a
	// non-closed arc, mutating mid-solve.
	CodeIllegalMutation Code = "ILLEGAL_MUTATION"
	// CodeUnfeasible: surfaced via status after solve; Details["cut"]
	// carries the separating node set when available.
	CodeUnfeasible Code = "UNFEASIBLE"
	// CodeUnbounded: surfaced via status after solve; Details["cycle"]
	// carries the negative-cost cycle when available.
	CodeUnbounded Code = "UNBOUNDED"
	// CodeStopped: external abort signal (iteration/time budget).
	CodeStopped Code = "STOPPED"
	// CodeInternal: invariant breach in the kernel.
	CodeInternal Code = "INTERNAL_ERROR"
)

// Severity mirrors apperror.Severity, unscoped of the RPC mapping.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "error"
	}
}

// Error is the solver's single error type. Code drives caller branching via
// errors.As; Details carries fail-kind-specific payloads (certificates,
// offending index, field name) without growing the Error struct itself.
type Error struct {
	Code     Code
	Message  string
	Field    string
	Details  map[string]any
	Cause    error
	Severity Severity
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("[%s] %s (field: %s)", e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New creates an Error with SeverityError and no details.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message, Details: make(map[string]any), Severity: SeverityError}
}

// NewWithField is New plus the offending field/index name.
func NewWithField(code Code, message, field string) *Error {
	e := New(code, message)
	e.Field = field
	return e
}

// Wrap creates an Error that chains an underlying cause.
func Wrap(cause error, code Code, message string) *Error {
	e := New(code, message)
	e.Cause = cause
	return e
}

// WithDetails attaches a key/value pair (e.g. "cut", "cycle") and returns
// the same *Error for chaining at the construction site.
func (e *Error) WithDetails(key string, value any) *Error {
	e.Details[key] = value
	return e
}

// WithSeverity overrides the default SeverityError.
func (e *Error) WithSeverity(s Severity) *Error {
	e.Severity = s
	return e
}

// Is reports whether err is an *Error carrying the given code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the Code from err, or CodeInternal if err is not an
// *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}
