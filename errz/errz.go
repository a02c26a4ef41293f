// Package errz defines structured error types for virtual machine failures.
package errz

import "fmt"

// ErrorKind represents the category of an error.
type ErrorKind int

const (
	// ErrTapeBounds indicates the head would move outside the tape.
	ErrTapeBounds ErrorKind = iota
	// ErrRead indicates the input source was exhausted during an Input instruction.
	ErrRead
	// ErrWrite indicates the output sink rejected an Output byte.
	ErrWrite
	// ErrState indicates interpret was called on a machine that already ran.
	ErrState
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrTapeBounds:
		return "tape bounds error"
	case ErrRead:
		return "read error"
	case ErrWrite:
		return "write error"
	case ErrState:
		return "state error"
	default:
		return "error"
	}
}

// SourceLocation represents a position in source code.
type SourceLocation struct {
	Filename string
	Line     int // 1-based line number
	Column   int // 1-based column number
}

// String returns a formatted string representation of the source location.
func (s SourceLocation) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// IsZero returns true if the location has not been set.
func (s SourceLocation) IsZero() bool {
	return s.Line == 0 && s.Column == 0
}

// StructuredError is an error with a kind and, when known, the source
// location of the instruction that triggered it.
type StructuredError struct {
	Message  string
	Kind     ErrorKind
	Location SourceLocation
	Cause    error
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Location.IsZero() {
		return fmt.Sprintf("%s: %s", e.Kind.String(), e.Message)
	}
	return fmt.Sprintf("%s: %s (%d:%d)", e.Kind.String(), e.Message, e.Location.Line, e.Location.Column)
}

// Unwrap returns the underlying cause of the error.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New returns a StructuredError with the given kind and message.
func New(kind ErrorKind, message string) *StructuredError {
	return &StructuredError{Kind: kind, Message: message}
}

// NewAt returns a StructuredError pointing at a source location.
func NewAt(kind ErrorKind, message string, loc SourceLocation) *StructuredError {
	return &StructuredError{Kind: kind, Message: message, Location: loc}
}

// Wrap returns a StructuredError with an underlying cause.
func Wrap(kind ErrorKind, message string, cause error) *StructuredError {
	return &StructuredError{Kind: kind, Message: message, Cause: cause}
}
