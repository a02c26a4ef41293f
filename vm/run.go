package vm

import (
	"io"

	"github.com/cloudcmds/bft/program"
)

// Run parses source and executes it on a fresh machine with a default,
// non-extensible tape. Used for testing and simple embedders.
func Run(source string, input io.Reader, output io.Writer) error {
	prog := program.Parse(source)
	if err := prog.Validate(); err != nil {
		return err
	}
	return New(0, false, prog).Interpret(input, output)
}
