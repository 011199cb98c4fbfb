package blocks

// Collides reports whether p, shifted by (dx, dy), would leave the board's
// column range, reach row Rows() or below, or overlap an occupied cell.
// Cells above row 0 are only checked against the side walls, so pieces may
// sit partly above the top edge.
func (b Board) Collides(p *Piece, dx, dy int) bool {
	rows, cols := b.Rows(), b.Cols()
	for sy, row := range p.Shape {
		for sx, v := range row {
			if v == 0 {
				continue
			}
			x := p.X + sx + dx
			y := p.Y + sy + dy
			if x < 0 || x >= cols || y >= rows {
				return true
			}
			if y >= 0 && b[y][x] != 0 {
				return true
			}
		}
	}
	return false
}

// Rotate turns p clockwise in place. If the rotated shape collides, the
// original shape is restored and Rotate returns false. There are no wall
// kicks: the rotation succeeds where the piece stands or not at all.
func Rotate(b Board, p *Piece) bool {
	original := p.Shape
	p.Shape = original.RotatedCW()
	if b.Collides(p, 0, 0) {
		p.Shape = original
		return false
	}
	return true
}
