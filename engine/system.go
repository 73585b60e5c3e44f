// Package engine runs ordered systems over a world once per simulation tick.
// It is the fixed-step loop that hosts drive with elapsed time.
package engine

// System represents one phase of a simulation tick operating on a world of type W.
// Systems run in registration order and may keep state in their own fields
// across frames.
type System[W any] interface {
	Execute(frame *UpdateFrame[W])
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc[W any] func(frame *UpdateFrame[W])

func (f SystemFunc[W]) Execute(frame *UpdateFrame[W]) {
	f(frame)
}
