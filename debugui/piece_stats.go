package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/tetris"
)

// PieceShare is how often a piece type entered play.
type PieceShare struct {
	Type    tetris.PieceType
	Count   int
	Percent float64
}

// PieceShares breaks the spawn counts of stats down by type, in catalog order.
func PieceShares(stats *tetris.Stats) []PieceShare {
	total := stats.TotalSpawned()
	shares := make([]PieceShare, 0, tetris.PieceTypeCount)
	for _, t := range tetris.PieceTypes {
		share := PieceShare{Type: t, Count: stats.Spawned(t)}
		if total > 0 {
			share.Percent = 100 * float64(share.Count) / float64(total)
		}
		shares = append(shares, share)
	}
	return shares
}

// PieceStats shows the randomizer distribution and line clear counts.
type PieceStats struct{}

func NewPieceStats() *PieceStats {
	return &PieceStats{}
}

func (ps *PieceStats) Render(g *tetris.Game, _ float64) {
	imgui.SetNextWindowPosV(imgui.NewVec2(590, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(240, 320), imgui.CondOnce)

	if !imgui.BeginV("Piece Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := g.Stats()
	imgui.Text(fmt.Sprintf("Spawned: %d", stats.TotalSpawned()))
	imgui.Text(fmt.Sprintf("Locked: %d", stats.Locks()))
	imgui.Text(fmt.Sprintf("Max Combo: %d", stats.MaxCombo()))
	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("PieceTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Piece")
		imgui.TableSetupColumn("Count")
		imgui.TableSetupColumn("Share")
		imgui.TableHeadersRow()

		for _, share := range PieceShares(stats) {
			c := tetris.PieceColor(share.Type).RGBA()
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.TextColored(imgui.NewVec4(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, 1.0), share.Type.String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", share.Count))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.1f%%", share.Percent))
		}

		imgui.EndTable()
	}

	if imgui.TreeNodeStr("Line Clears") {
		for rows := 1; rows <= 4; rows++ {
			imgui.BulletText(fmt.Sprintf("%d row(s): %d", rows, stats.Clears(rows)))
		}
		imgui.TreePop()
	}

	imgui.End()
}
