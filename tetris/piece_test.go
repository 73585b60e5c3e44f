package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPieceSpawnsAboveField(t *testing.T) {
	for _, typ := range PieceTypes {
		p := NewPiece(typ)
		assert.Equal(t, typ, p.Type())
		assert.Equal(t, SpawnX, p.X())
		assert.Equal(t, SpawnY, p.Y())
		assert.Equal(t, 0, p.Rotation())
		assert.Equal(t, PieceColor(typ), p.Color())
		assert.True(t, p.Fits(NewBoard()), "%s must fit on an empty board", typ)
	}
}

func TestRotateWrapsBothWays(t *testing.T) {
	p := NewPiece(T)

	p.Rotate(false)
	assert.Equal(t, 3, p.Rotation())

	for range 4 {
		p.Rotate(true)
	}
	assert.Equal(t, 3, p.Rotation())

	p.Rotate(true)
	assert.Equal(t, 0, p.Rotation())

	o := NewPiece(O)
	o.Rotate(true)
	assert.Equal(t, 0, o.Rotation())
	o.Rotate(false)
	assert.Equal(t, 0, o.Rotation())
}

func TestUndoRotateIsInverse(t *testing.T) {
	for _, typ := range PieceTypes {
		for start := range RotationCount(typ) {
			for _, clockwise := range []bool{true, false} {
				p := NewPiece(typ)
				for range start {
					p.Rotate(true)
				}

				p.Rotate(clockwise)
				p.UndoRotate(clockwise)

				assert.Equal(t, start, p.Rotation(), "%s from %d clockwise=%v", typ, start, clockwise)
				assert.Equal(t, RotationShape(typ, start), p.Shape())
			}
		}
	}
}

func TestUndoMoveIsInverse(t *testing.T) {
	offsets := [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {3, 7}, {-5, 2}}

	for _, off := range offsets {
		p := NewPiece(L)
		p.Move(off[0], off[1])
		assert.Equal(t, SpawnX+off[0], p.X())
		assert.Equal(t, SpawnY+off[1], p.Y())

		p.UndoMove(off[0], off[1])
		assert.Equal(t, SpawnX, p.X())
		assert.Equal(t, SpawnY, p.Y())
	}
}

func TestShapeIsACopy(t *testing.T) {
	p := NewPiece(S)
	s := p.Shape()
	s[0][0] = !s[0][0]

	assert.Equal(t, RotationShape(S, 0), p.Shape())
}

func TestGhostY(t *testing.T) {
	b := NewBoard()

	t.Run("empty board lands on the floor", func(t *testing.T) {
		p := NewPiece(O)
		assert.Equal(t, Rows-2, p.GhostY(b))
		assert.Equal(t, SpawnY, p.Y(), "ghost projection must not move the piece")
	})

	t.Run("lands on top of the stack", func(t *testing.T) {
		b := NewBoard()
		fillRow(b, Rows-1, 9)
		fillRow(b, Rows-2, 9)

		p := NewPiece(O)
		assert.Equal(t, Rows-4, p.GhostY(b))
	})

	t.Run("horizontal I uses its second matrix row", func(t *testing.T) {
		p := NewPiece(I)
		assert.Equal(t, Rows-2, p.GhostY(b))
	})

	t.Run("blocked piece stays put", func(t *testing.T) {
		b := NewBoard()
		fillRow(b, 1)

		p := NewPiece(O)
		assert.Equal(t, SpawnY, p.GhostY(b))
	})
}

func TestCatalog(t *testing.T) {
	for _, typ := range PieceTypes {
		n := RotationCount(typ)
		if typ == O {
			assert.Equal(t, 1, n)
		} else {
			assert.Equal(t, 4, n, "%s", typ)
		}

		for r := range n {
			s := RotationShape(typ, r)
			assert.Len(t, s.Cells(), 4, "%s rotation %d must have four cells", typ, r)
			for _, row := range s {
				assert.Len(t, row, len(s), "%s rotation %d must be square", typ, r)
			}
		}
	}

	assert.Equal(t, Color(0x00ffff), PieceColor(I))
	assert.Equal(t, Color(0x800080), PieceColor(T))
	assert.Equal(t, Color(0xffa500), PieceColor(L))
}

func TestPieceTypeNames(t *testing.T) {
	for _, typ := range PieceTypes {
		parsed, err := ParsePieceType(typ.String())
		assert.NoError(t, err)
		assert.Equal(t, typ, parsed)
		assert.True(t, typ.Valid())
	}

	_, err := ParsePieceType("X")
	assert.Error(t, err)
	assert.False(t, PieceType(9).Valid())
	assert.Equal(t, "PieceType(9)", PieceType(9).String())
}

func TestColorRGBA(t *testing.T) {
	c := Color(0xffa500).RGBA()
	assert.Equal(t, uint8(0xff), c.R)
	assert.Equal(t, uint8(0xa5), c.G)
	assert.Equal(t, uint8(0x00), c.B)
	assert.Equal(t, uint8(0xff), c.A)
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "#ffa500", Color(0xffa500).String())
	assert.Equal(t, "#0000ff", PieceColor(J).String())
}
