package tetris

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dot = Shape{{true}}

// fillRow occupies every cell of row except the listed columns.
func fillRow(b *Board, row int, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, col := range except {
		skip[col] = true
	}
	for col := range Cols {
		if !skip[col] {
			b.Lock(dot, col, row, 0x111111)
		}
	}
}

func occupied(b *Board, col, row int) bool {
	cell, ok := b.Cell(col, row)
	return ok && cell.Occupied
}

func TestNewBoardIsEmpty(t *testing.T) {
	b := NewBoard()

	cells := b.Cells()
	require.Len(t, cells, Rows)
	for _, row := range cells {
		require.Len(t, row, Cols)
		for _, cell := range row {
			assert.False(t, cell.Occupied)
		}
	}
	assert.Equal(t, 0, b.Height())
	assert.False(t, b.CheckGameOver())
}

func TestCellBounds(t *testing.T) {
	b := NewBoard()

	tests := []struct {
		col, row int
		ok       bool
	}{
		{0, 0, true},
		{Cols - 1, Rows - 1, true},
		{-1, 0, false},
		{0, -1, false},
		{Cols, 0, false},
		{0, Rows, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("col=%d,row=%d", tt.col, tt.row), func(t *testing.T) {
			_, ok := b.Cell(tt.col, tt.row)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestIsValidPosition(t *testing.T) {
	b := NewBoard()
	b.Lock(dot, 4, 10, 0xff0000)
	square := RotationShape(O, 0)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"inside empty area", 0, 0, true},
		{"left wall", -1, 0, false},
		{"right wall", Cols - 1, 0, false},
		{"touching right wall", Cols - 2, 0, true},
		{"floor", 0, Rows - 1, false},
		{"resting on floor", 0, Rows - 2, true},
		{"above the field", 0, -2, true},
		{"half above the field", 0, -1, true},
		{"overlaps occupied cell", 3, 9, false},
		{"next to occupied cell", 5, 9, true},
		{"far above and out of columns", -1, -5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.IsValidPosition(square, tt.x, tt.y))
		})
	}
}

// validOracle restates the placement rule cell by cell.
func validOracle(b *Board, s Shape, x, y int) bool {
	for _, c := range s.Cells() {
		gx, gy := x+c[0], y+c[1]
		if gx < 0 || gx >= Cols || gy >= Rows {
			return false
		}
		if gy >= 0 && occupied(b, gx, gy) {
			return false
		}
	}
	return true
}

func TestIsValidPositionMatchesOracle(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	b := NewBoard()
	for range 60 {
		b.Lock(dot, rng.IntN(Cols), rng.IntN(Rows), 0x00ff00)
	}

	for _, typ := range PieceTypes {
		for r := range RotationCount(typ) {
			s := RotationShape(typ, r)
			for x := -4; x <= Cols+1; x++ {
				for y := -5; y <= Rows+1; y++ {
					require.Equal(t, validOracle(b, s, x, y), b.IsValidPosition(s, x, y),
						"type=%s rotation=%d x=%d y=%d", typ, r, x, y)
				}
			}
		}
	}
}

func TestLockSkipsCellsOutsideGrid(t *testing.T) {
	b := NewBoard()
	vertical := RotationShape(I, 1)

	assert.NotPanics(t, func() {
		b.Lock(vertical, 0, -3, 0x00ffff)
	})

	// Column 2 of the matrix, only row 0 lands inside the grid.
	assert.True(t, occupied(b, 2, 0))
	assert.False(t, occupied(b, 2, 1))

	cell, _ := b.Cell(2, 0)
	assert.Equal(t, Color(0x00ffff), cell.Color)
	assert.True(t, b.CheckGameOver())
}

func TestClearLinesKeepsOrder(t *testing.T) {
	b := NewBoard()

	// Tag every non-full row with a cell in a unique column.
	for row := range Rows {
		switch row {
		case 2, 5:
			fillRow(b, row)
		default:
			b.Lock(dot, row%Cols, row, Color(row+1))
		}
	}

	cleared := b.ClearLines()
	assert.Equal(t, 2, cleared)

	for row := range 2 {
		for col := range Cols {
			assert.False(t, occupied(b, col, row), "row %d should be fresh", row)
		}
	}

	// Rows above a cleared row drop by the number of cleared rows below them.
	expected := map[int]int{0: 2, 1: 3, 3: 4, 4: 5}
	for row := 6; row < Rows; row++ {
		expected[row] = row
	}
	for from, to := range expected {
		cell, ok := b.Cell(from%Cols, to)
		require.True(t, ok)
		assert.True(t, cell.Occupied, "row %d should have moved to %d", from, to)
		assert.Equal(t, Color(from+1), cell.Color)
	}
}

func TestClearLinesNoFullRows(t *testing.T) {
	b := NewBoard()
	fillRow(b, Rows-1, 0)

	before := b.Cells()
	assert.Equal(t, 0, b.ClearLines())
	assert.Equal(t, before, b.Cells())
}

func TestClearLinesFourRows(t *testing.T) {
	b := NewBoard()
	for row := Rows - 4; row < Rows; row++ {
		fillRow(b, row)
	}
	b.Lock(dot, 0, Rows-5, 0xabcdef)

	assert.Equal(t, 4, b.ClearLines())
	assert.True(t, occupied(b, 0, Rows-1))
	assert.Equal(t, 1, b.Height())
}

func TestCellsIsACopy(t *testing.T) {
	b := NewBoard()
	cells := b.Cells()
	cells[0][0].Occupied = true

	assert.False(t, occupied(b, 0, 0))
}

func TestReset(t *testing.T) {
	b := NewBoard()
	fillRow(b, 0)
	fillRow(b, Rows-1, 3)

	b.Reset()

	assert.Equal(t, 0, b.Height())
	assert.False(t, b.CheckGameOver())
}
