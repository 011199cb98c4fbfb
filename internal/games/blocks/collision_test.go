package blocks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allTypes = []PieceType{PieceI, PieceO, PieceT, PieceS, PieceZ, PieceJ, PieceL}

func TestCollidesOutOfBounds(t *testing.T) {
	b := NewBoard(DefaultRows, DefaultCols)

	for _, typ := range allTypes {
		shape := ShapeOf(typ)
		for x := -5; x <= 15; x++ {
			for y := -4; y <= 25; y++ {
				p := &Piece{Shape: shape, X: x, Y: y, Type: typ}
				outside := false
				for _, c := range p.Cells() {
					if c[0] < 0 || c[0] >= b.Cols() || c[1] >= b.Rows() {
						outside = true
					}
				}
				if outside {
					assert.True(t, b.Collides(p, 0, 0), "%s at (%d,%d)", typ, x, y)
				}
			}
		}
	}
}

func TestCollidesWithOffset(t *testing.T) {
	b := NewBoard(DefaultRows, DefaultCols)
	p := NewPiece(PieceO, b.Cols())
	p.Y = 18

	assert.False(t, b.Collides(p, 0, 0))
	assert.True(t, b.Collides(p, 0, 1), "floor")
	assert.True(t, b.Collides(p, -5, 0), "left wall")
	assert.True(t, b.Collides(p, 5, 0), "right wall")
}

func TestCollidesWithOccupiedCell(t *testing.T) {
	b := NewBoard(DefaultRows, DefaultCols)
	b[10][4] = PieceJ
	p := &Piece{Shape: ShapeOf(PieceO), X: 4, Y: 8, Type: PieceO}

	assert.False(t, b.Collides(p, 0, 0))
	assert.True(t, b.Collides(p, 0, 1))
}

func TestCellsAboveTopIgnoreBoard(t *testing.T) {
	b := NewBoard(DefaultRows, DefaultCols)
	fillRow(b, 0)
	p := &Piece{Shape: ShapeOf(PieceI), X: 3, Y: -1, Type: PieceI}

	assert.False(t, b.Collides(p, 0, 0))
	assert.True(t, b.Collides(p, 0, 1))
	assert.True(t, b.Collides(&Piece{Shape: ShapeOf(PieceI), X: -1, Y: -1, Type: PieceI}, 0, 0), "walls still apply above the top")
}

func TestRotateClockwise(t *testing.T) {
	tShape := ShapeOf(PieceT) // .#. / ###
	want := Shape{{1, 0}, {1, 1}, {1, 0}}
	assert.True(t, tShape.RotatedCW().Equal(want), "got %v", tShape.RotatedCW())

	l := ShapeOf(PieceL) // ..# / ###
	assert.True(t, l.RotatedCW().Equal(Shape{{1, 0}, {1, 0}, {1, 1}}), "got %v", l.RotatedCW())
}

func TestFourRotationsAreIdentity(t *testing.T) {
	b := NewBoard(DefaultRows, DefaultCols)
	for _, typ := range allTypes {
		p := NewPiece(typ, b.Cols())
		p.Y = 8
		original := p.Shape.Clone()

		for i := range 4 {
			assert.True(t, Rotate(b, p), "%s rotation %d", typ, i+1)
		}
		assert.True(t, original.Equal(p.Shape), "%s after 4 rotations: %v", typ, p.Shape)
	}
}

func TestSquareIsRotationInvariant(t *testing.T) {
	o := ShapeOf(PieceO)
	assert.True(t, o.Equal(o.RotatedCW()))
}

func TestRotateRejectedAtFloor(t *testing.T) {
	b := NewBoard(DefaultRows, DefaultCols)
	p := &Piece{Shape: ShapeOf(PieceI), X: 3, Y: 19, Type: PieceI}
	before := p.Shape.Clone()

	assert.False(t, Rotate(b, p))
	assert.True(t, before.Equal(p.Shape), "shape must be restored")
	assert.Equal(t, 3, p.X)
	assert.Equal(t, 19, p.Y)
}

func TestRotateRejectedAtWallWithoutKick(t *testing.T) {
	b := NewBoard(DefaultRows, DefaultCols)
	p := &Piece{Shape: ShapeOf(PieceI).RotatedCW(), X: 8, Y: 5, Type: PieceI}

	assert.False(t, Rotate(b, p), "horizontal I would reach column 11")
	assert.Equal(t, 1, p.Shape.Width())
	assert.Equal(t, 8, p.X, "no kick offset applied")
}

func TestRotateRejectedByStack(t *testing.T) {
	b := NewBoard(DefaultRows, DefaultCols)
	p := &Piece{Shape: ShapeOf(PieceT), X: 4, Y: 10, Type: PieceT}
	b[12][4] = PieceS // where the rotated T's bottom cell lands

	assert.False(t, Rotate(b, p))
	assert.True(t, ShapeOf(PieceT).Equal(p.Shape))
}
