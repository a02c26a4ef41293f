// Package op defines opcodes used by the bft program loader and virtual machine.
package op

// Code is an integer opcode that indicates an operation to execute.
type Code uint8

const (
	Invalid Code = 0

	// Head movement
	MoveRight Code = 1
	MoveLeft  Code = 2

	// Cell arithmetic
	Increment Code = 3
	Decrement Code = 4

	// I/O
	Output Code = 5
	Input  Code = 6

	// Loops
	LoopStart Code = 7
	LoopEnd   Code = 8

	// Any character outside the eight-symbol instruction set
	Comment Code = 9
)

// Info contains information about an opcode.
type Info struct {
	Name   string
	Symbol byte
}

var infos = [...]Info{
	Invalid:   {Name: "INVALID"},
	MoveRight: {Name: "MOVE_RIGHT", Symbol: '>'},
	MoveLeft:  {Name: "MOVE_LEFT", Symbol: '<'},
	Increment: {Name: "INCREMENT", Symbol: '+'},
	Decrement: {Name: "DECREMENT", Symbol: '-'},
	Output:    {Name: "OUTPUT", Symbol: '.'},
	Input:     {Name: "INPUT", Symbol: ','},
	LoopStart: {Name: "LOOP_START", Symbol: '['},
	LoopEnd:   {Name: "LOOP_END", Symbol: ']'},
	Comment:   {Name: "COMMENT"},
}

// GetInfo returns information about the given opcode.
func GetInfo(c Code) Info {
	if int(c) >= len(infos) {
		return infos[Invalid]
	}
	return infos[c]
}

// FromChar returns the opcode for one source character. Characters outside
// the instruction set map to Comment, so every character has an opcode.
func FromChar(ch rune) Code {
	switch ch {
	case '>':
		return MoveRight
	case '<':
		return MoveLeft
	case '+':
		return Increment
	case '-':
		return Decrement
	case '.':
		return Output
	case ',':
		return Input
	case '[':
		return LoopStart
	case ']':
		return LoopEnd
	default:
		return Comment
	}
}

// String returns the name of the opcode.
func (c Code) String() string {
	return GetInfo(c).Name
}

// Symbol returns the source character for the opcode, or 0 for Comment and
// Invalid, which have no single representation.
func (c Code) Symbol() byte {
	return GetInfo(c).Symbol
}
