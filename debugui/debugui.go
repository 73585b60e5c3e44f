// Package debugui draws Dear ImGui panels over a running blockfall session.
// Panels are queued by an engine system and drawn after the tick, so the host
// must wrap Game.Update between the backend's BeginFrame and EndFrame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/tetris"
)

// Panel draws one debug window for a session.
type Panel interface {
	Render(g *tetris.Game, deltaTime float64)
}

// PanelFunc adapts a function to the Panel interface.
type PanelFunc func(g *tetris.Game, deltaTime float64)

func (f PanelFunc) Render(g *tetris.Game, deltaTime float64) {
	f(g, deltaTime)
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Hosts should ignore game keys while WantCaptureKeyboard is set.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay is an engine system that defers its panels' render functions.
type Overlay struct {
	panels []Panel
	input  InputState
	hidden bool
}

func NewOverlay(panels ...Panel) *Overlay {
	return &Overlay{panels: panels}
}

// Add appends a panel.
func (o *Overlay) Add(p Panel) {
	o.panels = append(o.panels, p)
}

// Panels returns the registered panels.
func (o *Overlay) Panels() []Panel { return o.panels }

// Input returns the capture state seen during the last tick.
func (o *Overlay) Input() InputState { return o.input }

// Toggle shows or hides every panel.
func (o *Overlay) Toggle() { o.hidden = !o.hidden }

func (o *Overlay) Hidden() bool { return o.hidden }

// Execute updates the input state and queues every panel for rendering.
func (o *Overlay) Execute(frame *engine.UpdateFrame[tetris.Game]) {
	io := imgui.CurrentIO()
	o.input.WantCaptureMouse = io.WantCaptureMouse()
	o.input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	if o.hidden {
		return
	}

	g, dt := frame.World, frame.DeltaTime
	for _, p := range o.panels {
		frame.Commands.Defer(func() { p.Render(g, dt) })
	}
}

// Install registers an overlay with the standard panels on g.
func Install(g *tetris.Game) *Overlay {
	o := NewOverlay(
		NewSessionInspector(),
		NewBoardViewer(),
		NewPieceStats(),
		NewPerformanceStats(120),
	)
	g.Register(o)
	return o
}
