package vm

import "github.com/cloudcmds/bft/program"

// StepEvent describes one instruction about to execute.
type StepEvent struct {
	Instruction program.Instruction
	IP          int
	Head        int
	Cell        byte
}

// Observer receives a callback before each instruction executes. This
// enables tracers and instruction counters without modifying the execution
// loop. Callbacks run synchronously on the execution loop, so
// implementations should be fast.
type Observer interface {
	OnStep(event StepEvent)
}
