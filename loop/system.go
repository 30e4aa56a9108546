package loop

// System is a unit of per-frame behavior. Systems keep whatever state they need
// between frames in their own fields.
type System interface {
	Execute(frame *Frame)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(frame *Frame)

func (f SystemFunc) Execute(frame *Frame) {
	f(frame)
}
