// Package program parses bft source text into an instruction stream and
// validates loop brackets before execution.
package program

import (
	"strings"

	"github.com/cloudcmds/bft/op"
	"github.com/cloudcmds/bft/token"
)

// Instruction is one parsed source character. Char always holds the
// originating character, which doubles as the payload for Comment, and
// Position points at its location in the source. Instructions are immutable
// once parsed.
type Instruction struct {
	Op       op.Code
	Char     rune
	Position token.Position
}

// Program is an ordered sequence of instructions parsed from one source
// text. The sequence is never mutated after construction. Comments are
// retained with their positions so diagnostics can point at exact
// locations; they are no-ops during execution.
type Program struct {
	filename     string
	instructions []Instruction

	validated bool
	validErr  error
	jumps     []int
}

// Option is a configuration function for parsing a Program.
type Option func(*Program)

// WithFilename sets the source filename used in diagnostics.
func WithFilename(filename string) Option {
	return func(p *Program) {
		p.filename = filename
	}
}

// Parse scans source text into a Program. Every character maps to exactly
// one instruction, so parsing cannot fail. Line and column numbers reset
// per physical line.
func Parse(source string, opts ...Option) *Program {
	p := &Program{}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	var line, column int
	for _, ch := range source {
		p.instructions = append(p.instructions, Instruction{
			Op:   op.FromChar(ch),
			Char: ch,
			Position: token.Position{
				Line:   line,
				Column: column,
				File:   p.filename,
			},
		})
		if ch == '\n' {
			line++
			column = 0
		} else {
			column++
		}
	}
	return p
}

// Filename returns the source filename, which may be empty.
func (p *Program) Filename() string {
	return p.filename
}

// Instructions returns the parsed instruction sequence. The caller must not
// modify the returned slice.
func (p *Program) Instructions() []Instruction {
	return p.instructions
}

// String renders the program using only the eight instruction symbols,
// dropping comments.
func (p *Program) String() string {
	var b strings.Builder
	for _, ins := range p.instructions {
		if sym := ins.Op.Symbol(); sym != 0 {
			b.WriteByte(sym)
		}
	}
	return b.String()
}
