package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/tetris"
)

// Glyphs used by the board viewer.
const (
	glyphEmpty  = '.'
	glyphLocked = '#'
	glyphPiece  = '@'
	glyphGhost  = '+'
)

// RowInfo describes one board row as shown in the viewer.
type RowInfo struct {
	Index  int
	Glyphs string
	Filled int
}

// BoardRows renders the grid of snap as text, overlaying the current piece
// and its ghost.
func BoardRows(snap tetris.Snapshot) []RowInfo {
	glyphs := make([][]rune, len(snap.Grid))
	rows := make([]RowInfo, len(snap.Grid))

	for r, row := range snap.Grid {
		glyphs[r] = make([]rune, len(row))
		for c, cell := range row {
			if cell.Occupied {
				glyphs[r][c] = glyphLocked
				rows[r].Filled++
			} else {
				glyphs[r][c] = glyphEmpty
			}
		}
	}

	if cur := snap.Current; cur != nil {
		overlay(glyphs, cur.Shape, cur.X, snap.GhostY, glyphGhost)
		overlay(glyphs, cur.Shape, cur.X, cur.Y, glyphPiece)
	}

	for r := range rows {
		rows[r].Index = r
		rows[r].Glyphs = string(glyphs[r])
	}
	return rows
}

func overlay(glyphs [][]rune, shape tetris.Shape, x, y int, glyph rune) {
	for _, cell := range shape.Cells() {
		col, row := x+cell[0], y+cell[1]
		if row < 0 || row >= len(glyphs) || col < 0 || col >= len(glyphs[row]) {
			continue
		}
		if glyphs[row][col] == glyphEmpty || glyph == glyphPiece {
			glyphs[row][col] = glyph
		}
	}
}

// BoardViewer shows the grid as a table, one row per board row.
type BoardViewer struct {
	highlightFull bool
}

func NewBoardViewer() *BoardViewer {
	return &BoardViewer{highlightFull: true}
}

func (bv *BoardViewer) Render(g *tetris.Game, _ float64) {
	imgui.SetNextWindowPosV(imgui.NewVec2(320, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 480), imgui.CondOnce)

	if !imgui.BeginV("Board Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	snap := g.Snapshot()
	imgui.Text(fmt.Sprintf("Height: %d", g.Board().Height()))
	imgui.SameLine()
	imgui.Checkbox("Highlight full", &bv.highlightFull)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("BoardTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Row")
		imgui.TableSetupColumn("Cells")
		imgui.TableSetupColumn("Filled")
		imgui.TableHeadersRow()

		for _, row := range BoardRows(snap) {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%2d", row.Index))
			imgui.TableNextColumn()
			if bv.highlightFull && row.Filled == tetris.Cols {
				imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.2, 1.0), row.Glyphs)
			} else {
				imgui.Text(row.Glyphs)
			}
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.Filled))
		}

		imgui.EndTable()
	}

	if imgui.TreeNodeStr("Pieces") {
		for _, slot := range []struct {
			name string
			view *tetris.View
		}{{"Current", snap.Current}, {"Next", snap.Next}, {"Held", snap.Held}} {
			if slot.view == nil {
				imgui.BulletText(fmt.Sprintf("%s: none", slot.name))
				continue
			}
			imgui.BulletText(fmt.Sprintf("%s: %s rot %d at (%d, %d)", slot.name, slot.view.Type, slot.view.Rotation, slot.view.X, slot.view.Y))
			imgui.Text(strings.Join(shapeLines(slot.view.Shape), "\n"))
		}
		imgui.TreePop()
	}

	imgui.End()
}

func shapeLines(shape tetris.Shape) []string {
	lines := make([]string, len(shape))
	for r, row := range shape {
		var sb strings.Builder
		for _, filled := range row {
			if filled {
				sb.WriteRune(glyphLocked)
			} else {
				sb.WriteRune(glyphEmpty)
			}
		}
		lines[r] = sb.String()
	}
	return lines
}
