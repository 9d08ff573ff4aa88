package tetris

// Board is a fixed-size grid of cells. Row 0 is the top.
type Board struct {
	rows    int
	columns int
	cells   [][]Color
}

// NewBoard creates an empty board.
func NewBoard(rows, columns int) *Board {
	b := &Board{rows: rows, columns: columns}
	b.cells = make([][]Color, rows)
	for y := range b.cells {
		b.cells[y] = make([]Color, columns)
	}
	return b
}

// Rows returns the board height.
func (b *Board) Rows() int {
	return b.rows
}

// Columns returns the board width.
func (b *Board) Columns() int {
	return b.columns
}

// InBounds reports whether (x, y) lies on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.columns && y >= 0 && y < b.rows
}

// At returns the cell at (x, y). Out-of-bounds cells read as empty.
func (b *Board) At(x, y int) Color {
	if !b.InBounds(x, y) {
		return ColorNone
	}
	return b.cells[y][x]
}

// Set writes a cell. Out-of-bounds writes are ignored.
func (b *Board) Set(x, y int, c Color) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[y][x] = c
}

// Collides reports whether any occupied cell of p lies outside the board or
// on a non-empty cell.
func (b *Board) Collides(p Piece) bool {
	for y, row := range p.Shape {
		for x, filled := range row {
			if !filled {
				continue
			}
			bx, by := p.X+x, p.Y+y
			if by >= b.rows || bx < 0 || bx >= b.columns || by < 0 {
				return true
			}
			if b.cells[by][bx] != ColorNone {
				return true
			}
		}
	}
	return false
}

// Merge writes the piece's color into every cell it occupies.
func (b *Board) Merge(p Piece) {
	for _, c := range p.Cells() {
		b.Set(c.X, c.Y, p.Color)
	}
}

// RowFull reports whether row y has no empty cells.
func (b *Board) RowFull(y int) bool {
	if y < 0 || y >= b.rows {
		return false
	}
	for _, c := range b.cells[y] {
		if c == ColorNone {
			return false
		}
	}
	return true
}

// ClearLines removes every full row, shifts the rows above it down and
// fills the top with empty rows. Returns the number of rows removed.
func (b *Board) ClearLines() int {
	kept := make([][]Color, 0, b.rows)
	for y := range b.rows {
		if !b.RowFull(y) {
			kept = append(kept, b.cells[y])
		}
	}

	cleared := b.rows - len(kept)
	if cleared == 0 {
		return 0
	}

	cells := make([][]Color, 0, b.rows)
	for range cleared {
		cells = append(cells, make([]Color, b.columns))
	}
	b.cells = append(cells, kept...)
	return cleared
}

// Cells returns a copy of the grid indexed [row][col].
func (b *Board) Cells() [][]Color {
	out := make([][]Color, b.rows)
	for y, row := range b.cells {
		out[y] = append([]Color(nil), row...)
	}
	return out
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{rows: b.rows, columns: b.columns, cells: b.Cells()}
}

// Filled returns the number of occupied cells.
func (b *Board) Filled() int {
	n := 0
	for _, row := range b.cells {
		for _, c := range row {
			if c != ColorNone {
				n++
			}
		}
	}
	return n
}
