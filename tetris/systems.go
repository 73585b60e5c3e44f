package tetris

import (
	"time"

	"github.com/plus3/blockfall/engine"
)

// The systems below make up one tick. They run in registration order, which
// fixes the precedence of intents: restart, pause, hold, movement, rotation,
// hard drop, then gravity. Once a piece locks, the remaining gameplay systems
// skip the rest of the tick.

// InputSystem starts a tick by taking the pending intents. Intents submitted
// while the tick runs wait for the next one.
type InputSystem struct{}

func (s *InputSystem) Execute(frame *engine.UpdateFrame[Game]) {
	g := frame.World
	g.tick = g.intents
	g.intents = 0
	g.tickHalted = false
}

// RestartSystem starts a fresh session on a restart intent.
type RestartSystem struct{}

func (s *RestartSystem) Execute(frame *engine.UpdateFrame[Game]) {
	g := frame.World
	if !g.tick.Has(IntentRestart) {
		return
	}
	g.Restart()
	g.tickHalted = true
}

// PauseSystem toggles pause before any gameplay system runs.
type PauseSystem struct{}

func (s *PauseSystem) Execute(frame *engine.UpdateFrame[Game]) {
	g := frame.World
	if g.tickHalted || !g.tick.Has(IntentTogglePause) {
		return
	}
	g.TogglePause()
}

// HoldSystem applies the hold intent.
type HoldSystem struct{}

func (s *HoldSystem) Execute(frame *engine.UpdateFrame[Game]) {
	g := frame.World
	if g.tickHalted || !g.tick.Has(IntentHold) {
		return
	}
	g.Hold()
}

// MoveSystem applies horizontal movement, left taking precedence over right,
// then the soft drop.
type MoveSystem struct{}

func (s *MoveSystem) Execute(frame *engine.UpdateFrame[Game]) {
	g := frame.World
	if g.tickHalted {
		return
	}

	switch {
	case g.tick.Has(IntentMoveLeft):
		g.MoveLeft()
	case g.tick.Has(IntentMoveRight):
		g.MoveRight()
	}

	if g.tick.Has(IntentSoftDrop) {
		g.SoftDrop()
	}
}

// RotateSystem applies the rotate intent.
type RotateSystem struct{}

func (s *RotateSystem) Execute(frame *engine.UpdateFrame[Game]) {
	g := frame.World
	if g.tickHalted || !g.tick.Has(IntentRotate) {
		return
	}
	g.Rotate()
}

// HardDropSystem applies the hard drop intent.
type HardDropSystem struct{}

func (s *HardDropSystem) Execute(frame *engine.UpdateFrame[Game]) {
	g := frame.World
	if g.tickHalted || !g.tick.Has(IntentHardDrop) {
		return
	}
	g.HardDrop()
}

// GravitySystem accumulates elapsed time and moves the piece down one row
// every fall interval, locking it when it cannot move.
type GravitySystem struct{}

func (s *GravitySystem) Execute(frame *engine.UpdateFrame[Game]) {
	g := frame.World
	if g.tickHalted || !g.active() {
		return
	}

	g.fallTimer += time.Duration(frame.DeltaTime * float64(time.Second))
	if g.fallTimer >= g.fallInterval {
		g.fallTimer = 0
		g.fall()
	}
}

// EventSystem hands the events produced so far to the listeners once the
// tick has finished.
type EventSystem struct{}

func (s *EventSystem) Execute(frame *engine.UpdateFrame[Game]) {
	g := frame.World
	if len(g.events) == 0 {
		return
	}

	events := g.events
	g.events = nil
	for _, ev := range events {
		for _, l := range g.listeners {
			frame.Commands.Defer(func() { l(ev) })
		}
	}
}
