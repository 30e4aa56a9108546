package loop

// Frame carries the inputs of one scheduler pass.
type Frame struct {
	// DeltaTime is the time since the previous pass, in seconds.
	DeltaTime float64
	Commands  *Commands
}

func newFrame(dt float64) *Frame {
	return &Frame{
		DeltaTime: dt,
		Commands:  newCommands(),
	}
}
