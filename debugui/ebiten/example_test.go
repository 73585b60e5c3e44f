package ebiten_test

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/tetris"
)

// Host implements ebiten.Game and draws the debug overlay on top of a session.
type Host struct {
	game    *tetris.Game
	overlay *debugui.Overlay
	imgui   *debugui_ebiten.ImguiBackend
}

func (h *Host) Update() error {
	// Panels are queued by the overlay system and drawn when the tick's
	// deferred commands run, so the whole tick sits inside the ImGui frame.
	h.imgui.Frame(func() {
		h.game.Update(1.0 / 60.0)
	})
	return nil
}

func (h *Host) Draw(screen *ebiten.Image) {
	// Draw the board first
	// ...

	h.imgui.Draw(screen)
}

func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.imgui.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := debugui_ebiten.NewImguiBackend("blockfall debug", 1280, 720)

	game := tetris.NewGame()
	overlay := debugui.Install(game)

	host := &Host{
		game:    game,
		overlay: overlay,
		imgui:   backend,
	}

	if err := ebiten.RunGame(host); err != nil {
		panic(err)
	}
}
