package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/input"
)

var keyBindings = map[tcell.Key]input.Key{
	tcell.KeyLeft:   input.KeyLeft,
	tcell.KeyRight:  input.KeyRight,
	tcell.KeyDown:   input.KeyDown,
	tcell.KeyUp:     input.KeyRotate,
	tcell.KeyEscape: input.KeyPause,
	tcell.KeyCtrlC:  input.KeyQuit,
}

var runeBindings = map[rune]input.Key{
	'a': input.KeyLeft,
	'd': input.KeyRight,
	's': input.KeyDown,
	'w': input.KeyRotate,
	' ': input.KeyHardDrop,
	'c': input.KeyHold,
	'p': input.KeyPause,
	'r': input.KeyRestart,
	'q': input.KeyQuit,
}

// translate maps a terminal key, and its rune for tcell.KeyRune, to a
// logical key.
func translate(key tcell.Key, r rune) (input.Key, bool) {
	if key == tcell.KeyRune {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		k, ok := runeBindings[r]
		return k, ok
	}
	k, ok := keyBindings[key]
	return k, ok
}
