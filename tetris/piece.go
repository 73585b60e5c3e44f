package tetris

const (
	// SpawnX is the column of a new piece's anchor.
	SpawnX = 3
	// SpawnY is the row of a new piece's anchor, one row above the field.
	SpawnY = -1
)

// Piece is a falling tetromino. It tracks geometry only and never looks at
// board occupancy; callers validate candidate positions against a Board.
type Piece struct {
	typ      PieceType
	rotation int
	x, y     int
}

// NewPiece creates a piece of type t at the spawn anchor in its first rotation state.
func NewPiece(t PieceType) *Piece {
	return &Piece{typ: t, x: SpawnX, y: SpawnY}
}

func (p *Piece) Type() PieceType { return p.typ }
func (p *Piece) Rotation() int   { return p.rotation }
func (p *Piece) X() int          { return p.x }
func (p *Piece) Y() int          { return p.y }
func (p *Piece) Color() Color    { return catalog[p.typ].color }

// Shape returns a copy of the current rotation state.
func (p *Piece) Shape() Shape {
	return RotationShape(p.typ, p.rotation)
}

func (p *Piece) shape() Shape {
	return catalog[p.typ].shapes[p.rotation]
}

// Rotate advances the rotation state, wrapping in both directions.
func (p *Piece) Rotate(clockwise bool) {
	n := RotationCount(p.typ)
	if clockwise {
		p.rotation = (p.rotation + 1) % n
	} else {
		p.rotation = (p.rotation - 1 + n) % n
	}
}

// UndoRotate reverts a Rotate call made with the same direction.
func (p *Piece) UndoRotate(clockwise bool) {
	p.Rotate(!clockwise)
}

// Move translates the anchor by (dx, dy).
func (p *Piece) Move(dx, dy int) {
	p.x += dx
	p.y += dy
}

// UndoMove reverts a Move call with the same offsets.
func (p *Piece) UndoMove(dx, dy int) {
	p.x -= dx
	p.y -= dy
}

// GhostY returns the lowest row the piece can drop to from its current row.
// The piece is not modified.
func (p *Piece) GhostY(board *Board) int {
	shape := p.shape()
	ghostY := p.y
	for board.IsValidPosition(shape, p.x, ghostY+1) {
		ghostY++
	}
	return ghostY
}

// Fits reports whether the piece is at a valid position on board.
func (p *Piece) Fits(board *Board) bool {
	return board.IsValidPosition(p.shape(), p.x, p.y)
}

// View is a read-only copy of a piece for renderers.
type View struct {
	Type     PieceType
	Rotation int
	X, Y     int
	Color    Color
	Shape    Shape
}

// View returns a read-only copy of the piece.
func (p *Piece) View() View {
	return View{
		Type:     p.typ,
		Rotation: p.rotation,
		X:        p.x,
		Y:        p.y,
		Color:    p.Color(),
		Shape:    p.Shape(),
	}
}
