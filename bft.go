// Package bft provides a high-level API for parsing, validating, and
// executing bft programs.
package bft

import (
	"io"
	"os"

	"github.com/cloudcmds/bft/program"
	"github.com/cloudcmds/bft/vm"
)

// Option configures a Run call.
type Option func(*options)

type options struct {
	filename   string
	tapeSize   int
	extensible bool
	input      io.Reader
	output     io.Writer
	observer   vm.Observer
}

func collectOptions(opts ...Option) *options {
	o := &options{input: os.Stdin, output: os.Stdout}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithFilename sets the filename for the source code being executed.
// This is used for error messages.
func WithFilename(filename string) Option {
	return func(o *options) {
		o.filename = filename
	}
}

// WithTapeSize sets the number of tape cells. A size of zero selects the
// default capacity of 30000 cells.
func WithTapeSize(size int) Option {
	return func(o *options) {
		o.tapeSize = size
	}
}

// WithExtensibleTape allows the tape to grow rightward on demand instead of
// failing when the head moves past the last cell.
func WithExtensibleTape() Option {
	return func(o *options) {
		o.extensible = true
	}
}

// WithInput binds the input source for the ',' instruction.
// Defaults to os.Stdin.
func WithInput(r io.Reader) Option {
	return func(o *options) {
		o.input = r
	}
}

// WithOutput binds the output sink for the '.' instruction.
// Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// WithObserver sets an observer for execution events. The observer receives
// a callback for every instruction step, which enables tracers and
// instruction counters.
func WithObserver(observer vm.Observer) Option {
	return func(o *options) {
		o.observer = observer
	}
}

// Parse parses source text into a Program without executing it.
func Parse(source string, opts ...Option) *program.Program {
	o := collectOptions(opts...)
	return program.Parse(source, o.programOpts()...)
}

// Run parses, validates, and executes the given source on a fresh machine.
// It returns the first unrecoverable error, or nil if the program ran to
// completion.
func Run(source string, opts ...Option) error {
	o := collectOptions(opts...)
	prog := program.Parse(source, o.programOpts()...)
	if err := prog.Validate(); err != nil {
		return err
	}
	machine := vm.New(o.tapeSize, o.extensible, prog, o.vmOpts()...)
	return machine.Interpret(o.input, o.output)
}

func (o *options) programOpts() []program.Option {
	var opts []program.Option
	if o.filename != "" {
		opts = append(opts, program.WithFilename(o.filename))
	}
	return opts
}

func (o *options) vmOpts() []vm.Option {
	var opts []vm.Option
	if o.observer != nil {
		opts = append(opts, vm.WithObserver(o.observer))
	}
	return opts
}
