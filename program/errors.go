package program

import (
	"fmt"

	"github.com/cloudcmds/bft/token"
)

// Error is a bracket validation error carrying the position of the
// offending instruction.
type Error struct {
	message  string
	file     string
	position token.Position
}

func newBracketError(message, file string, pos token.Position) *Error {
	return &Error{message: message, file: file, position: pos}
}

// Error implements the error interface. The message includes the 1-based
// line and column of the offending bracket.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s at %d,%d", e.message, e.position.LineNumber(), e.position.ColumnNumber())
	if e.file != "" {
		msg = fmt.Sprintf("%s: %s", e.file, msg)
	}
	return msg
}

// Message returns the error message without position information.
func (e *Error) Message() string {
	return e.message
}

// File returns the source filename, which may be empty.
func (e *Error) File() string {
	return e.file
}

// Position returns the position of the offending bracket.
func (e *Error) Position() token.Position {
	return e.position
}
