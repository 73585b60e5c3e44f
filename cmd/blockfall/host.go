package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/highscore"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/tetris"
)

// host implements ebiten.Game around a session.
type host struct {
	game   *tetris.Game
	store  *highscore.Store
	mapper *input.Mapper
	keys   input.Keyboard
	best   int

	imgui   *debugui_ebiten.ImguiBackend
	overlay *debugui.Overlay
}

func newHost(game *tetris.Game, store *highscore.Store, cfg config.Config) *host {
	h := &host{
		game:   game,
		store:  store,
		mapper: input.NewMapper(cfg.MoveDelay),
		keys:   keyboard{},
		best:   store.HighestScore(),
	}
	game.Subscribe(h.onEvent)
	return h
}

func (h *host) onEvent(ev tetris.Event) {
	switch ev.Kind {
	case tetris.EventGameOver:
		h.best = h.store.HighestScore()
		log.Printf("Game over: score=%d level=%d lines=%d new_high_score=%t", ev.Score, ev.Level, ev.Lines, ev.NewHighScore)
	case tetris.EventLevelUp:
		log.Printf("Level %d reached after %d lines", ev.Level, ev.Lines)
	case tetris.EventRestarted:
		h.mapper.Reset()
	}
}

func (h *host) Update() error {
	if h.keys.JustPressed(input.KeyQuit) {
		return ebiten.Termination
	}

	dt := 1.0 / float64(ebiten.TPS())

	if h.overlay != nil {
		if h.keys.JustPressed(input.KeyDebug) {
			h.overlay.Toggle()
		}
		if !h.overlay.Input().WantCaptureKeyboard {
			h.poll(dt)
		}
		h.imgui.Frame(func() {
			h.game.Update(dt)
		})
		return nil
	}

	h.poll(dt)
	h.game.Update(dt)
	return nil
}

func (h *host) poll(dt float64) {
	intents := h.mapper.Poll(h.keys, time.Duration(dt*float64(time.Second)))
	h.game.Submit(intents...)
}

func (h *host) Draw(screen *ebiten.Image) {
	drawSession(screen, h.game.Snapshot(), h.best)

	if h.imgui != nil {
		h.imgui.Draw(screen)
	}
}

func (h *host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if h.imgui != nil {
		h.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return screenWidth, screenHeight
}
