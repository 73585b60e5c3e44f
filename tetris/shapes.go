// Package tetris is the rules engine of the game: the playing field, falling
// pieces, line clears, scoring, levels and the per-tick controller.
package tetris

import (
	"fmt"
	"image/color"
)

// PieceType identifies one of the seven tetrominoes.
type PieceType uint8

const (
	I PieceType = iota
	O
	T
	S
	Z
	J
	L
)

// PieceTypes lists every piece type in catalog order.
var PieceTypes = [...]PieceType{I, O, T, S, Z, J, L}

// PieceTypeCount is the number of distinct piece types.
const PieceTypeCount = len(PieceTypes)

var pieceTypeNames = [...]string{"I", "O", "T", "S", "Z", "J", "L"}

func (t PieceType) String() string {
	if int(t) < len(pieceTypeNames) {
		return pieceTypeNames[t]
	}
	return fmt.Sprintf("PieceType(%d)", uint8(t))
}

// Valid reports whether t names a catalog entry.
func (t PieceType) Valid() bool {
	return int(t) < PieceTypeCount
}

// ParsePieceType converts a single letter name back into a PieceType.
func ParsePieceType(name string) (PieceType, error) {
	for i, n := range pieceTypeNames {
		if n == name {
			return PieceType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown piece type %q", name)
}

// Color is a 24-bit RGB value, 0xRRGGBB.
type Color uint32

// RGBA converts the color to an opaque color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: 0xff,
	}
}

func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c))
}

// Shape is a square matrix of filled cells, indexed [row][col].
type Shape [][]bool

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for i := range s {
		out[i] = make([]bool, len(s[i]))
		copy(out[i], s[i])
	}
	return out
}

// Cells returns the (col, row) offsets of every filled cell.
func (s Shape) Cells() [][2]int {
	var cells [][2]int
	for row := range s {
		for col, filled := range s[row] {
			if filled {
				cells = append(cells, [2]int{col, row})
			}
		}
	}
	return cells
}

type catalogEntry struct {
	color  Color
	shapes []Shape
}

func shape(rows ...string) Shape {
	s := make(Shape, len(rows))
	for i, row := range rows {
		s[i] = make([]bool, len(row))
		for j, ch := range row {
			s[i][j] = ch == '#'
		}
	}
	return s
}

var catalog = [PieceTypeCount]catalogEntry{
	I: {
		color: 0x00ffff,
		shapes: []Shape{
			shape("....", "####", "....", "...."),
			shape("..#.", "..#.", "..#.", "..#."),
			shape("....", "....", "####", "...."),
			shape(".#..", ".#..", ".#..", ".#.."),
		},
	},
	O: {
		color: 0xffff00,
		shapes: []Shape{
			shape("##", "##"),
		},
	},
	T: {
		color: 0x800080,
		shapes: []Shape{
			shape(".#.", "###", "..."),
			shape(".#.", ".##", ".#."),
			shape("...", "###", ".#."),
			shape(".#.", "##.", ".#."),
		},
	},
	S: {
		color: 0x00ff00,
		shapes: []Shape{
			shape(".##", "##.", "..."),
			shape(".#.", ".##", "..#"),
			shape("...", ".##", "##."),
			shape("#..", "##.", ".#."),
		},
	},
	Z: {
		color: 0xff0000,
		shapes: []Shape{
			shape("##.", ".##", "..."),
			shape("..#", ".##", ".#."),
			shape("...", "##.", ".##"),
			shape(".#.", "##.", "#.."),
		},
	},
	J: {
		color: 0x0000ff,
		shapes: []Shape{
			shape("#..", "###", "..."),
			shape(".##", ".#.", ".#."),
			shape("...", "###", "..#"),
			shape(".#.", ".#.", "##."),
		},
	},
	L: {
		color: 0xffa500,
		shapes: []Shape{
			shape("..#", "###", "..."),
			shape(".#.", ".#.", ".##"),
			shape("...", "###", "#.."),
			shape("##.", ".#.", ".#."),
		},
	},
}

// PieceColor returns the catalog color of t.
func PieceColor(t PieceType) Color {
	return catalog[t].color
}

// RotationCount returns how many rotation states t has.
func RotationCount(t PieceType) int {
	return len(catalog[t].shapes)
}

// RotationShape returns a copy of rotation state r of piece type t.
func RotationShape(t PieceType, r int) Shape {
	return catalog[t].shapes[r].Clone()
}
