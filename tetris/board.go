package tetris

const (
	// Cols is the width of the playing field.
	Cols = 10
	// Rows is the height of the playing field.
	Rows = 20
)

// Cell is one square of the playing field.
type Cell struct {
	Occupied bool
	Color    Color
}

// Board owns the occupancy grid. Row 0 is the top of the field.
type Board struct {
	grid [][]Cell
}

// NewBoard creates an empty Cols x Rows board.
func NewBoard() *Board {
	return &Board{grid: emptyGrid()}
}

func emptyGrid() [][]Cell {
	grid := make([][]Cell, Rows)
	for row := range grid {
		grid[row] = make([]Cell, Cols)
	}
	return grid
}

// Cols returns the width of the board.
func (b *Board) Cols() int { return Cols }

// Rows returns the height of the board.
func (b *Board) Rows() int { return Rows }

// Cell returns the cell at (col, row). ok is false outside the grid.
func (b *Board) Cell(col, row int) (cell Cell, ok bool) {
	if col < 0 || col >= Cols || row < 0 || row >= Rows {
		return Cell{}, false
	}
	return b.grid[row][col], true
}

// Cells returns a copy of the grid, indexed [row][col].
func (b *Board) Cells() [][]Cell {
	out := make([][]Cell, len(b.grid))
	for row := range b.grid {
		out[row] = make([]Cell, len(b.grid[row]))
		copy(out[row], b.grid[row])
	}
	return out
}

// IsValidPosition reports whether shape anchored at (x, y) fits on the board.
// Filled cells must stay within the columns and above the floor, and must not
// overlap occupied cells. Cells above the top edge are always allowed so pieces
// can spawn partially outside the field.
func (b *Board) IsValidPosition(shape Shape, x, y int) bool {
	for row := range shape {
		for col, filled := range shape[row] {
			if !filled {
				continue
			}

			gridX := x + col
			gridY := y + row

			if gridX < 0 || gridX >= Cols || gridY >= Rows {
				return false
			}

			if gridY < 0 {
				continue
			}

			if b.grid[gridY][gridX].Occupied {
				return false
			}
		}
	}
	return true
}

// Lock writes every filled cell of shape into the grid with the given color.
// Cells that fall outside the grid are skipped.
func (b *Board) Lock(shape Shape, x, y int, color Color) {
	for row := range shape {
		for col, filled := range shape[row] {
			if !filled {
				continue
			}

			gridX := x + col
			gridY := y + row

			if gridY < 0 || gridY >= Rows || gridX < 0 || gridX >= Cols {
				continue
			}
			b.grid[gridY][gridX] = Cell{Occupied: true, Color: color}
		}
	}
}

// ClearLines removes every full row, shifts the rows above it down and
// returns how many rows were removed.
func (b *Board) ClearLines() int {
	kept := make([][]Cell, 0, Rows)
	for _, row := range b.grid {
		if !rowFull(row) {
			kept = append(kept, row)
		}
	}

	cleared := Rows - len(kept)
	if cleared == 0 {
		return 0
	}

	grid := make([][]Cell, 0, Rows)
	for range cleared {
		grid = append(grid, make([]Cell, Cols))
	}
	b.grid = append(grid, kept...)

	return cleared
}

func rowFull(row []Cell) bool {
	for _, cell := range row {
		if !cell.Occupied {
			return false
		}
	}
	return true
}

// CheckGameOver reports whether any cell of the top row is occupied.
func (b *Board) CheckGameOver() bool {
	for _, cell := range b.grid[0] {
		if cell.Occupied {
			return true
		}
	}
	return false
}

// Reset clears every cell.
func (b *Board) Reset() {
	b.grid = emptyGrid()
}

// Height returns the number of rows from the highest occupied cell to the floor.
func (b *Board) Height() int {
	for row := range b.grid {
		for _, cell := range b.grid[row] {
			if cell.Occupied {
				return Rows - row
			}
		}
	}
	return 0
}
