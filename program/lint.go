package program

import (
	"github.com/hashicorp/go-multierror"

	"github.com/cloudcmds/bft/op"
)

// Lint reports every unmatched bracket in the program, not just the first.
// Unlike Validate it does not touch the cached validation state or the jump
// table, so it is safe to call at any time.
func (p *Program) Lint() error {
	var result *multierror.Error
	var stack []openBracket
	for i, ins := range p.instructions {
		switch ins.Op {
		case op.LoopStart:
			stack = append(stack, openBracket{index: i, ins: ins})
		case op.LoopEnd:
			if len(stack) == 0 {
				result = multierror.Append(result,
					newBracketError("unmatched closing bracket", p.filename, ins.Position))
				continue
			}
			stack = stack[:len(stack)-1]
		}
	}
	// Innermost unmatched bracket first, matching Validate's reporting order
	for i := len(stack) - 1; i >= 0; i-- {
		result = multierror.Append(result,
			newBracketError("unmatched opening bracket", p.filename, stack[i].ins.Position))
	}
	return result.ErrorOrNil()
}
