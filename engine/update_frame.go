package engine

// UpdateFrame is handed to every system during a single tick.
type UpdateFrame[W any] struct {
	DeltaTime float64
	World     *W
	Commands  *Commands
}

func newUpdateFrame[W any](dt float64, world *W) *UpdateFrame[W] {
	return &UpdateFrame[W]{
		DeltaTime: dt,
		World:     world,
		Commands:  newCommands(),
	}
}
