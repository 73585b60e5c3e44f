package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/blockfall/input"
)

var bindings = map[input.Key][]ebiten.Key{
	input.KeyLeft:     {ebiten.KeyArrowLeft, ebiten.KeyA},
	input.KeyRight:    {ebiten.KeyArrowRight, ebiten.KeyD},
	input.KeyDown:     {ebiten.KeyArrowDown, ebiten.KeyS},
	input.KeyRotate:   {ebiten.KeyArrowUp, ebiten.KeyW},
	input.KeyHardDrop: {ebiten.KeySpace},
	input.KeyHold:     {ebiten.KeyC, ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
	input.KeyPause:    {ebiten.KeyP, ebiten.KeyEscape},
	input.KeyRestart:  {ebiten.KeyR},
	input.KeyDebug:    {ebiten.KeyF1},
	input.KeyQuit:     {ebiten.KeyQ},
}

// keyboard reads ebiten's key state through the bindings table.
type keyboard struct{}

func (keyboard) IsDown(k input.Key) bool {
	for _, key := range bindings[k] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

func (keyboard) JustPressed(k input.Key) bool {
	for _, key := range bindings[k] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}
