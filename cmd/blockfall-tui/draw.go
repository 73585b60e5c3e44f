package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/tetris"
)

// canvas is the part of tcell.Screen the renderer writes to.
type canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

const (
	boardLeft = 2
	boardTop  = 1
	sideLeft  = boardLeft + tetris.Cols*2 + 4
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	ghostStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	bannerStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

func cellStyle(c tetris.Color) tcell.Style {
	rgba := c.RGBA()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B)))
}

// putCell draws one board cell, which is two terminal columns wide.
func putCell(c canvas, col, row int, left, right rune, style tcell.Style) {
	x := boardLeft + 1 + col*2
	y := boardTop + 1 + row
	c.SetContent(x, y, left, nil, style)
	c.SetContent(x+1, y, right, nil, style)
}

func putText(c canvas, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		c.SetContent(x+i, y, r, nil, style)
	}
}

func drawSession(c canvas, snap tetris.Snapshot, best int) {
	width := tetris.Cols*2 + 2
	for y := range tetris.Rows + 2 {
		c.SetContent(boardLeft, boardTop+y, '│', nil, borderStyle)
		c.SetContent(boardLeft+width-1, boardTop+y, '│', nil, borderStyle)
	}
	for x := range width {
		c.SetContent(boardLeft+x, boardTop, '─', nil, borderStyle)
		c.SetContent(boardLeft+x, boardTop+tetris.Rows+1, '─', nil, borderStyle)
	}

	for row, cells := range snap.Grid {
		for col, cell := range cells {
			if cell.Occupied {
				putCell(c, col, row, '█', '█', cellStyle(cell.Color))
			} else {
				putCell(c, col, row, ' ', '.', ghostStyle)
			}
		}
	}

	if cur := snap.Current; cur != nil {
		for _, off := range cur.Shape.Cells() {
			if row := snap.GhostY + off[1]; row >= 0 {
				putCell(c, cur.X+off[0], row, '[', ']', ghostStyle)
			}
		}
		for _, off := range cur.Shape.Cells() {
			if row := cur.Y + off[1]; row >= 0 {
				putCell(c, cur.X+off[0], row, '█', '█', cellStyle(cur.Color))
			}
		}
	}

	putText(c, sideLeft, boardTop, "NEXT", textStyle)
	drawPreview(c, snap.Next, sideLeft, boardTop+1)
	putText(c, sideLeft, boardTop+6, "HOLD", textStyle)
	drawPreview(c, snap.Held, sideLeft, boardTop+7)

	lines := []string{
		fmt.Sprintf("SCORE %d", snap.Score),
		fmt.Sprintf("LEVEL %d", snap.Level),
		fmt.Sprintf("LINES %d", snap.Lines),
		fmt.Sprintf("COMBO %d", snap.Combo),
		fmt.Sprintf("BEST  %d", max(best, snap.Score)),
	}
	for i, line := range lines {
		putText(c, sideLeft, boardTop+12+i, line, textStyle)
	}

	switch {
	case snap.GameOver && snap.NewHighScore:
		putText(c, sideLeft, boardTop+18, "GAME OVER - NEW HIGH SCORE!", bannerStyle)
		putText(c, sideLeft, boardTop+19, "r: restart  q: quit", textStyle)
	case snap.GameOver:
		putText(c, sideLeft, boardTop+18, "GAME OVER", bannerStyle)
		putText(c, sideLeft, boardTop+19, "r: restart  q: quit", textStyle)
	case snap.Paused:
		putText(c, sideLeft, boardTop+18, "PAUSED", bannerStyle)
	}
}

func drawPreview(c canvas, v *tetris.View, x, y int) {
	if v == nil {
		return
	}
	style := cellStyle(v.Color)
	for _, off := range v.Shape.Cells() {
		c.SetContent(x+off[0]*2, y+off[1], '█', nil, style)
		c.SetContent(x+off[0]*2+1, y+off[1], '█', nil, style)
	}
}
