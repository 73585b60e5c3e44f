// Package input turns keyboard state into session intents. Hosts adapt their
// windowing or terminal library to the Keyboard interface.
package input

import (
	"time"

	"github.com/plus3/blockfall/tetris"
)

// Key is a logical key; hosts decide which physical keys map to it.
type Key uint8

const (
	KeyLeft Key = iota
	KeyRight
	KeyDown
	KeyRotate
	KeyHardDrop
	KeyHold
	KeyPause
	KeyRestart
	KeyDebug
	KeyQuit
	keyCount
)

// Keyboard reports key state for the current frame.
type Keyboard interface {
	// IsDown reports whether k is held.
	IsDown(k Key) bool
	// JustPressed reports whether k went down this frame.
	JustPressed(k Key) bool
}

// Mapper converts key state to intents. Left, right and soft drop share one
// repeat timer so a held key moves at most once per move delay.
type Mapper struct {
	moveDelay time.Duration
	sinceMove time.Duration
}

func NewMapper(moveDelay time.Duration) *Mapper {
	return &Mapper{
		moveDelay: moveDelay,
		sinceMove: moveDelay,
	}
}

// Poll advances the repeat timer by dt and returns the intents for this frame.
func (m *Mapper) Poll(kb Keyboard, dt time.Duration) []tetris.Intent {
	var intents []tetris.Intent

	if kb.JustPressed(KeyRestart) {
		intents = append(intents, tetris.IntentRestart)
	}
	if kb.JustPressed(KeyPause) {
		intents = append(intents, tetris.IntentTogglePause)
	}
	if kb.JustPressed(KeyHold) {
		intents = append(intents, tetris.IntentHold)
	}

	m.sinceMove += dt
	if m.sinceMove >= m.moveDelay {
		moved := false
		switch {
		case kb.IsDown(KeyLeft):
			intents = append(intents, tetris.IntentMoveLeft)
			moved = true
		case kb.IsDown(KeyRight):
			intents = append(intents, tetris.IntentMoveRight)
			moved = true
		}
		if kb.IsDown(KeyDown) {
			intents = append(intents, tetris.IntentSoftDrop)
			moved = true
		}
		if moved {
			m.sinceMove = 0
		}
	}

	if kb.JustPressed(KeyRotate) {
		intents = append(intents, tetris.IntentRotate)
	}
	if kb.JustPressed(KeyHardDrop) {
		intents = append(intents, tetris.IntentHardDrop)
	}
	return intents
}

// Reset makes the next directional key press act immediately.
func (m *Mapper) Reset() {
	m.sinceMove = m.moveDelay
}

// Pressed is a Keyboard for hosts that only see key press events, such as
// terminals. Every key pressed during a frame counts as both down and just
// pressed; Clear empties it for the next frame.
type Pressed [keyCount]bool

func (p *Pressed) Press(k Key) {
	if k < keyCount {
		p[k] = true
	}
}

func (p *Pressed) IsDown(k Key) bool      { return k < keyCount && p[k] }
func (p *Pressed) JustPressed(k Key) bool { return p.IsDown(k) }

func (p *Pressed) Clear() {
	*p = Pressed{}
}
