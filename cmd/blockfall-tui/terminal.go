package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/highscore"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/tetris"
)

type terminal struct {
	screen   tcell.Screen
	game     *tetris.Game
	store    *highscore.Store
	mapper   *input.Mapper
	pressed  input.Pressed
	interval time.Duration
	best     int
}

func newTerminal(screen tcell.Screen, game *tetris.Game, store *highscore.Store, cfg config.Config) *terminal {
	t := &terminal{
		screen:   screen,
		game:     game,
		store:    store,
		mapper:   input.NewMapper(cfg.MoveDelay),
		interval: time.Second / time.Duration(cfg.TickRate),
		best:     store.HighestScore(),
	}
	game.Subscribe(t.onEvent)
	return t
}

func (t *terminal) onEvent(ev tetris.Event) {
	switch ev.Kind {
	case tetris.EventGameOver:
		t.best = t.store.HighestScore()
		log.Printf("Game over: score=%d level=%d lines=%d", ev.Score, ev.Level, ev.Lines)
	case tetris.EventRestarted:
		t.mapper.Reset()
	}
}

// handle records a key press. It returns false when the player quits.
func (t *terminal) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		k, ok := translate(ev.Key(), ev.Rune())
		if !ok {
			return true
		}
		if k == input.KeyQuit {
			return false
		}
		t.pressed.Press(k)

	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func (t *terminal) tick(dt time.Duration) {
	intents := t.mapper.Poll(&t.pressed, dt)
	t.pressed.Clear()

	t.game.Submit(intents...)
	t.game.Update(dt.Seconds())

	t.screen.Clear()
	drawSession(t.screen, t.game.Snapshot(), t.best)
	t.screen.Show()
}

func (t *terminal) run() {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !t.handle(ev) {
				return
			}

		case now := <-ticker.C:
			t.tick(now.Sub(last))
			last = now
		}
	}
}
