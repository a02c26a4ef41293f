// Package vm provides a VirtualMachine that executes parsed bft programs.
package vm

import (
	"io"

	"github.com/cloudcmds/bft/errz"
	"github.com/cloudcmds/bft/op"
	"github.com/cloudcmds/bft/program"
)

// DefaultTapeSize is the cell count used when the requested size is zero.
const DefaultTapeSize = 30000

type runState int

const (
	stateNotStarted runState = iota
	stateRunning
	stateHalted
)

// VirtualMachine executes one Program over a byte tape. A machine runs its
// program at most once and is not safe for concurrent use: the tape, head,
// and instruction pointer are exclusively owned by the one execution loop
// driving Interpret. The input and output streams are borrowed for the
// duration of a single Interpret call only.
type VirtualMachine struct {
	prog       *program.Program
	tape       []byte
	head       int
	ip         int // instruction pointer
	extensible bool
	state      runState
	observer   Observer
}

// New creates a virtual machine bound to the given program. A size of zero
// selects the default tape capacity of 30000 cells. All cells start at
// zero. When extensible is true the tape grows rightward on demand; it
// never grows leftward.
func New(size int, extensible bool, prog *program.Program, options ...Option) *VirtualMachine {
	if size <= 0 {
		size = DefaultTapeSize
	}
	vm := &VirtualMachine{
		prog:       prog,
		tape:       make([]byte, size),
		extensible: extensible,
	}
	for _, opt := range options {
		if opt != nil {
			opt(vm)
		}
	}
	return vm
}

// Cells returns the tape contents. The caller must not modify the returned
// slice while Interpret is running.
func (vm *VirtualMachine) Cells() []byte {
	return vm.tape
}

// Head returns the current head index into the tape.
func (vm *VirtualMachine) Head() int {
	return vm.head
}

// Extensible reports whether the tape can grow rightward.
func (vm *VirtualMachine) Extensible() bool {
	return vm.extensible
}

// Interpret runs the program to completion or to the first unrecoverable
// error. The machine executes at most once: further calls fail immediately
// with a state error and do not touch the tape or pointer. The program is
// validated (once, cached) before the first instruction runs, so execution
// never starts on a program with unmatched brackets.
//
// On failure the tape, head, and instruction pointer are left exactly as
// they were when the failing instruction ran.
func (vm *VirtualMachine) Interpret(input io.Reader, output io.Writer) error {
	if vm.state != stateNotStarted {
		return errz.New(errz.ErrState, "program has already been executed")
	}
	if err := vm.prog.Validate(); err != nil {
		return err
	}
	vm.state = stateRunning
	defer func() { vm.state = stateHalted }()

	ins := vm.prog.Instructions()
	for vm.ip < len(ins) {
		cur := ins[vm.ip]
		if vm.observer != nil {
			vm.observer.OnStep(StepEvent{
				Instruction: cur,
				IP:          vm.ip,
				Head:        vm.head,
				Cell:        vm.tape[vm.head],
			})
		}
		switch cur.Op {
		case op.MoveRight:
			if vm.head == len(vm.tape)-1 {
				if !vm.extensible {
					return vm.boundsError(cur, "head would move past the end of the tape")
				}
				vm.tape = append(vm.tape, 0)
			}
			vm.head++
			vm.ip++
		case op.MoveLeft:
			// The tape never grows leftward, extensible or not
			if vm.head == 0 {
				return vm.boundsError(cur, "head would move past the start of the tape")
			}
			vm.head--
			vm.ip++
		case op.Increment:
			vm.tape[vm.head]++
			vm.ip++
		case op.Decrement:
			vm.tape[vm.head]--
			vm.ip++
		case op.Output:
			if err := vm.Output(output); err != nil {
				return err
			}
		case op.Input:
			if err := vm.Input(input); err != nil {
				return err
			}
		case op.LoopStart:
			if vm.tape[vm.head] == 0 {
				vm.ip = vm.prog.JumpTarget(vm.ip) + 1
			} else {
				vm.ip++
			}
		case op.LoopEnd:
			if vm.tape[vm.head] != 0 {
				vm.ip = vm.prog.JumpTarget(vm.ip) + 1
			} else {
				vm.ip++
			}
		default:
			vm.ip++
		}
	}
	return nil
}

type flusher interface {
	Flush() error
}

// Output writes the byte at the head to w and advances the instruction
// pointer. The sink is flushed after the write when it supports flushing,
// so interactive consumers observe each byte immediately.
func (vm *VirtualMachine) Output(w io.Writer) error {
	if _, err := w.Write([]byte{vm.tape[vm.head]}); err != nil {
		return errz.Wrap(errz.ErrWrite, "failed to write output byte", err)
	}
	if f, ok := w.(flusher); ok {
		if err := f.Flush(); err != nil {
			return errz.Wrap(errz.ErrWrite, "failed to flush output", err)
		}
	}
	vm.ip++
	return nil
}

// Input reads exactly one byte from r into the cell at the head and
// advances the instruction pointer. End of stream is an error.
func (vm *VirtualMachine) Input(r io.Reader) error {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return errz.Wrap(errz.ErrRead, "failed to read input byte", err)
	}
	vm.tape[vm.head] = buf[0]
	vm.ip++
	return nil
}

func (vm *VirtualMachine) boundsError(ins program.Instruction, message string) error {
	return errz.NewAt(errz.ErrTapeBounds, message, errz.SourceLocation{
		Filename: ins.Position.File,
		Line:     ins.Position.LineNumber(),
		Column:   ins.Position.ColumnNumber(),
	})
}
