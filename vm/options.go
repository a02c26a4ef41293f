package vm

// Option is a configuration function for a Virtual Machine.
type Option func(*VirtualMachine)

// WithObserver sets an observer for execution events. The observer receives
// a callback for every instruction step, including comments.
func WithObserver(observer Observer) Option {
	return func(vm *VirtualMachine) {
		vm.observer = observer
	}
}
