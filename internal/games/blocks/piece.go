package blocks

import (
	"math/rand"

	"github.com/vovakirdan/blockfall/internal/core"
)

// PieceType identifies one of the seven pieces. Zero means "no piece".
type PieceType uint8

const (
	PieceNone PieceType = iota
	PieceI
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL
)

// PieceTypeCount is the number of real piece variants.
const PieceTypeCount = 7

// String returns the conventional letter for the piece.
func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceT:
		return "T"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	default:
		return "."
	}
}

// Color returns the display color for cells of this type.
func (t PieceType) Color() core.Color {
	switch t {
	case PieceI:
		return core.ColorCyan
	case PieceO:
		return core.ColorYellow
	case PieceT:
		return core.ColorPurple
	case PieceS:
		return core.ColorGreen
	case PieceZ:
		return core.ColorRed
	case PieceJ:
		return core.ColorBlue
	case PieceL:
		return core.ColorOrange
	default:
		return core.ColorDefault
	}
}

// Shape is a binary occupancy matrix indexed [row][col].
type Shape [][]uint8

// shapes holds the spawn orientation of every piece type.
var shapes = [PieceTypeCount + 1]Shape{
	PieceNone: nil,
	PieceI:    {{1, 1, 1, 1}},
	PieceO:    {{1, 1}, {1, 1}},
	PieceT:    {{0, 1, 0}, {1, 1, 1}},
	PieceS:    {{0, 1, 1}, {1, 1, 0}},
	PieceZ:    {{1, 1, 0}, {0, 1, 1}},
	PieceJ:    {{1, 0, 0}, {1, 1, 1}},
	PieceL:    {{0, 0, 1}, {1, 1, 1}},
}

// ShapeOf returns a fresh copy of the spawn shape for t.
func ShapeOf(t PieceType) Shape {
	if int(t) >= len(shapes) {
		return nil
	}
	return shapes[t].Clone()
}

// Width returns the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Clone returns a deep copy.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	c := make(Shape, len(s))
	for y := range s {
		c[y] = append([]uint8(nil), s[y]...)
	}
	return c
}

// Equal reports whether two shapes have identical dimensions and cells.
func (s Shape) Equal(o Shape) bool {
	if s.Height() != o.Height() || s.Width() != o.Width() {
		return false
	}
	for y := range s {
		for x := range s[y] {
			if s[y][x] != o[y][x] {
				return false
			}
		}
	}
	return true
}

// RotatedCW returns the shape turned 90 degrees clockwise:
// the transpose with each resulting row reversed.
func (s Shape) RotatedCW() Shape {
	h, w := s.Height(), s.Width()
	r := make(Shape, w)
	for i := range w {
		r[i] = make([]uint8, h)
		for j := range h {
			r[i][j] = s[h-1-j][i]
		}
	}
	return r
}

// Piece is a shape placed on the board. (X, Y) is the top-left of the shape.
type Piece struct {
	Shape Shape
	X, Y  int
	Type  PieceType
}

// eachCell calls fn with the board coordinates of every occupied cell.
func (p *Piece) eachCell(fn func(x, y int)) {
	for sy, row := range p.Shape {
		for sx, v := range row {
			if v != 0 {
				fn(p.X+sx, p.Y+sy)
			}
		}
	}
}

// Cells returns the board coordinates of every occupied cell.
func (p *Piece) Cells() [][2]int {
	var cells [][2]int
	p.eachCell(func(x, y int) {
		cells = append(cells, [2]int{x, y})
	})
	return cells
}

// Clone returns a deep copy of the piece.
func (p *Piece) Clone() *Piece {
	if p == nil {
		return nil
	}
	c := *p
	c.Shape = p.Shape.Clone()
	return &c
}

// NewPiece returns a piece of type t at its spawn position on a board
// with the given column count: horizontally centered, row 0.
func NewPiece(t PieceType, cols int) *Piece {
	shape := ShapeOf(t)
	return &Piece{
		Shape: shape,
		X:     cols/2 - shape.Width()/2,
		Y:     0,
		Type:  t,
	}
}

// Generator produces uniformly random pieces from a seeded source.
type Generator struct {
	rng  *rand.Rand
	cols int
}

// NewGenerator creates a generator for a board with the given column count.
func NewGenerator(rng *rand.Rand, cols int) *Generator {
	return &Generator{rng: rng, cols: cols}
}

// Next returns a new piece. Each call consumes exactly one random draw.
func (g *Generator) Next() *Piece {
	t := PieceType(g.rng.Intn(PieceTypeCount) + 1)
	return NewPiece(t, g.cols)
}
