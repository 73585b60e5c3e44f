package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/blockfall/tetris"
)

const (
	cellSize     = 28
	previewCell  = 18
	boardX       = 20
	boardY       = 20
	sideX        = boardX + tetris.Cols*cellSize + 24
	screenWidth  = sideX + 150
	screenHeight = boardY*2 + tetris.Rows*cellSize
)

var (
	backgroundColor = color.RGBA{18, 18, 24, 255}
	emptyCellColor  = color.RGBA{34, 34, 44, 255}
	gridLineColor   = color.RGBA{48, 48, 60, 255}
	dimmedColor     = color.RGBA{90, 90, 90, 255}
)

func drawSession(screen *ebiten.Image, snap tetris.Snapshot, best int) {
	screen.Fill(backgroundColor)

	for row, cells := range snap.Grid {
		for col, cell := range cells {
			x, y := cellOrigin(col, row)
			c := color.Color(emptyCellColor)
			if cell.Occupied {
				c = cell.Color.RGBA()
			}
			vector.DrawFilledRect(screen, x, y, cellSize-1, cellSize-1, c, false)
		}
	}
	vector.StrokeRect(screen, boardX-1, boardY-1, tetris.Cols*cellSize+1, tetris.Rows*cellSize+1, 2, gridLineColor, false)

	if cur := snap.Current; cur != nil {
		for _, cell := range cur.Shape.Cells() {
			col, row := cur.X+cell[0], snap.GhostY+cell[1]
			if row < 0 {
				continue
			}
			x, y := cellOrigin(col, row)
			vector.StrokeRect(screen, x+1, y+1, cellSize-3, cellSize-3, 1, cur.Color.RGBA(), false)
		}
		for _, cell := range cur.Shape.Cells() {
			col, row := cur.X+cell[0], cur.Y+cell[1]
			if row < 0 {
				continue
			}
			x, y := cellOrigin(col, row)
			vector.DrawFilledRect(screen, x, y, cellSize-1, cellSize-1, cur.Color.RGBA(), false)
		}
	}

	ebitenutil.DebugPrintAt(screen, "NEXT", sideX, boardY)
	drawPreview(screen, snap.Next, sideX, boardY+20, true)

	ebitenutil.DebugPrintAt(screen, "HOLD", sideX, boardY+110)
	drawPreview(screen, snap.Held, sideX, boardY+130, snap.CanHold)

	stats := fmt.Sprintf("SCORE %d\nLEVEL %d\nLINES %d\nCOMBO %d\nBEST  %d", snap.Score, snap.Level, snap.Lines, snap.Combo, max(best, snap.Score))
	ebitenutil.DebugPrintAt(screen, stats, sideX, boardY+230)

	help := "Arrows  move\nUp      rotate\nSpace   drop\nC       hold\nP       pause\nR       restart\nQ       quit"
	ebitenutil.DebugPrintAt(screen, help, sideX, screenHeight-140)

	switch {
	case snap.GameOver:
		banner := "GAME OVER\nPress R to restart"
		if snap.NewHighScore {
			banner = "GAME OVER\nNEW HIGH SCORE!\nPress R to restart"
		}
		drawBanner(screen, banner)
	case snap.Paused:
		drawBanner(screen, "PAUSED\nPress P to resume")
	}
}

func cellOrigin(col, row int) (float32, float32) {
	return float32(boardX + col*cellSize), float32(boardY + row*cellSize)
}

func drawPreview(screen *ebiten.Image, v *tetris.View, x, y int, enabled bool) {
	if v == nil {
		return
	}
	c := color.Color(v.Color.RGBA())
	if !enabled {
		c = dimmedColor
	}
	for _, cell := range v.Shape.Cells() {
		px := float32(x + cell[0]*previewCell)
		py := float32(y + cell[1]*previewCell)
		vector.DrawFilledRect(screen, px, py, previewCell-1, previewCell-1, c, false)
	}
}

func drawBanner(screen *ebiten.Image, text string) {
	const h = 70
	y := float32(boardY + tetris.Rows*cellSize/2 - h/2)
	vector.DrawFilledRect(screen, boardX, y, tetris.Cols*cellSize, h, color.RGBA{0, 0, 0, 200}, false)
	ebitenutil.DebugPrintAt(screen, text, boardX+70, int(y)+12)
}
