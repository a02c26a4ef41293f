package program

import "github.com/cloudcmds/bft/op"

type openBracket struct {
	index int
	ins   Instruction
}

// Validate checks that every loop bracket is properly paired. A single
// left-to-right scan maintains a stack of open LoopStart instructions: a
// LoopEnd with an empty stack fails at its own position, and any entry left
// on the stack after the scan fails at the innermost unmatched LoopStart.
//
// Matched pairs are resolved into a jump table as a side effect, so runtime
// loop jumps are O(1) lookups. The result is computed once and cached;
// execution never starts on a program that fails here.
func (p *Program) Validate() error {
	if p.validated {
		return p.validErr
	}
	p.validated = true
	p.jumps = make([]int, len(p.instructions))
	var stack []openBracket
	for i, ins := range p.instructions {
		switch ins.Op {
		case op.LoopStart:
			stack = append(stack, openBracket{index: i, ins: ins})
		case op.LoopEnd:
			if len(stack) == 0 {
				p.validErr = newBracketError("unmatched closing bracket", p.filename, ins.Position)
				return p.validErr
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			p.jumps[open.index] = i
			p.jumps[i] = open.index
		}
	}
	if len(stack) > 0 {
		open := stack[len(stack)-1]
		p.validErr = newBracketError("unmatched opening bracket", p.filename, open.ins.Position)
		return p.validErr
	}
	return nil
}

// JumpTarget returns the index of the bracket matching the LoopStart or
// LoopEnd at index i. Only meaningful after a successful Validate.
func (p *Program) JumpTarget(i int) int {
	return p.jumps[i]
}
