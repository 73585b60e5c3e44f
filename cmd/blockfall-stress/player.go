package main

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/tetris"
)

// player submits random intents. Pause and restart are never chosen; the
// runner restarts finished sessions itself.
type player struct {
	rng *rand.Rand
}

func newPlayer(seed uint64) *player {
	return &player{rng: rand.New(rand.NewPCG(seed, seed+1))}
}

// intents returns the intents for one tick.
func (p *player) intents() []tetris.Intent {
	roll := p.rng.IntN(100)
	switch {
	case roll < 40:
		return nil
	case roll < 55:
		return []tetris.Intent{tetris.IntentMoveLeft}
	case roll < 70:
		return []tetris.Intent{tetris.IntentMoveRight}
	case roll < 80:
		return []tetris.Intent{tetris.IntentRotate}
	case roll < 92:
		return []tetris.Intent{tetris.IntentSoftDrop}
	case roll < 98:
		return []tetris.Intent{tetris.IntentHardDrop}
	default:
		return []tetris.Intent{tetris.IntentHold}
	}
}
