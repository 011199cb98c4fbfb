package blocks

// Default playfield dimensions.
const (
	DefaultRows = 20
	DefaultCols = 10
)

// Board is the playfield grid indexed [row][col].
// 0 is an empty cell; 1..7 is the type of the piece that was merged there.
type Board [][]PieceType

// NewBoard returns an empty board with the given dimensions.
func NewBoard(rows, cols int) Board {
	b := make(Board, rows)
	for y := range b {
		b[y] = make([]PieceType, cols)
	}
	return b
}

// Rows returns the number of rows.
func (b Board) Rows() int {
	return len(b)
}

// Cols returns the number of columns.
func (b Board) Cols() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// Cell returns the value at (x, y), or 0 when out of bounds.
func (b Board) Cell(x, y int) PieceType {
	if y < 0 || y >= b.Rows() || x < 0 || x >= b.Cols() {
		return 0
	}
	return b[y][x]
}

// IsRowFull reports whether every cell in the row is occupied.
func (b Board) IsRowFull(row int) bool {
	for _, c := range b[row] {
		if c == 0 {
			return false
		}
	}
	return true
}

// FullRows returns the indices of all full rows, bottom row first.
func (b Board) FullRows() []int {
	var rows []int
	for y := b.Rows() - 1; y >= 0; y-- {
		if b.IsRowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// RemoveRow deletes a row and inserts an empty row at the top.
// Rows above the removed one shift down by one; rows below keep their index.
func (b Board) RemoveRow(row int) {
	cleared := b[row]
	copy(b[1:row+1], b[:row])
	for x := range cleared {
		cleared[x] = 0
	}
	b[0] = cleared
}

// Merge writes the piece's occupied cells into the board.
// Cells above the top edge are dropped.
func (b Board) Merge(p *Piece) {
	p.eachCell(func(x, y int) {
		if y >= 0 && y < b.Rows() && x >= 0 && x < b.Cols() {
			b[y][x] = p.Type
		}
	})
}

// Occupied returns the number of non-empty cells.
func (b Board) Occupied() int {
	n := 0
	for _, row := range b {
		for _, c := range row {
			if c != 0 {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	c := make(Board, len(b))
	for y := range b {
		c[y] = append([]PieceType(nil), b[y]...)
	}
	return c
}
