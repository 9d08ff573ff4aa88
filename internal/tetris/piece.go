// Package tetris implements the falling-block grid state machine: piece
// generation, collision, locking, line clears, scoring and hold.
// It has no terminal, timing or storage dependencies so it can be driven
// deterministically from tests and from any frame loop.
package tetris

// Kind identifies one of the seven canonical tetromino shapes.
type Kind uint8

const (
	KindI Kind = iota
	KindT
	KindO
	KindS
	KindZ
	KindJ
	KindL
)

// KindCount is the number of distinct shapes.
const KindCount = 7

// String returns the single-letter name of the shape.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindT:
		return "T"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "?"
	}
}

// Color is the identifier stored in an occupied board cell.
// The zero value means the cell is empty.
type Color uint8

const (
	ColorNone Color = iota
	ColorCyan
	ColorYellow
	ColorOrange
	ColorBlue
	ColorGreen
	ColorRed
	ColorPurple
)

// Colors lists the seven piece colors in generator order.
var Colors = [...]Color{
	ColorCyan,
	ColorYellow,
	ColorOrange,
	ColorBlue,
	ColorGreen,
	ColorRed,
	ColorPurple,
}

// String returns a human-readable color name.
func (c Color) String() string {
	switch c {
	case ColorNone:
		return "none"
	case ColorCyan:
		return "cyan"
	case ColorYellow:
		return "yellow"
	case ColorOrange:
		return "orange"
	case ColorBlue:
		return "blue"
	case ColorGreen:
		return "green"
	case ColorRed:
		return "red"
	case ColorPurple:
		return "purple"
	default:
		return "unknown"
	}
}

// Shape is a rectangular occupancy matrix indexed [row][col].
type Shape [][]bool

var shapes = [KindCount]Shape{
	KindI: {
		{true, true, true, true},
	},
	KindT: {
		{true, true, true},
		{false, true, false},
	},
	KindO: {
		{true, true},
		{true, true},
	},
	KindS: {
		{true, true, false},
		{false, true, true},
	},
	KindZ: {
		{false, true, true},
		{true, true, false},
	},
	KindJ: {
		{true, true, true},
		{true, false, false},
	},
	KindL: {
		{true, true, true},
		{false, false, true},
	},
}

// ShapeOf returns a fresh copy of the spawn orientation for kind.
func ShapeOf(kind Kind) Shape {
	if int(kind) >= KindCount {
		return nil
	}
	return shapes[kind].Clone()
}

// Width returns the number of columns in the bounding box.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the number of rows in the bounding box.
func (s Shape) Height() int {
	return len(s)
}

// Clone returns a deep copy of the matrix.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	for y, row := range s {
		out[y] = append([]bool(nil), row...)
	}
	return out
}

// Equal reports whether both matrices have the same dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(other[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// Rotate returns the matrix turned 90 degrees clockwise: rows are reversed
// and the result transposed. A h×w matrix becomes w×h.
func (s Shape) Rotate() Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for x := range out {
		out[x] = make([]bool, h)
	}
	for y := range h {
		for x := range w {
			out[x][h-1-y] = s[y][x]
		}
	}
	return out
}

// Point is a board coordinate: X is the column, Y the row.
type Point struct {
	X, Y int
}

// Piece is a shape placed on the board. X and Y give the top-left corner
// of the shape's bounding box.
type Piece struct {
	Kind  Kind
	Shape Shape
	Color Color
	X, Y  int
}

// SpawnX returns the column that horizontally centers a shape of the given
// width on a board with the given number of columns.
func SpawnX(columns, width int) int {
	return columns/2 - width/2
}

// NewPiece creates a piece of the given kind at the spawn position for a
// board with the given number of columns.
func NewPiece(kind Kind, color Color, columns int) Piece {
	shape := ShapeOf(kind)
	return Piece{
		Kind:  kind,
		Shape: shape,
		Color: color,
		X:     SpawnX(columns, shape.Width()),
		Y:     0,
	}
}

// Clone returns a copy that shares no memory with p.
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}

// Rotated returns a copy of p with its shape turned clockwise.
// Legality is not checked.
func (p Piece) Rotated() Piece {
	p.Shape = p.Shape.Rotate()
	return p
}

// Cells returns the board coordinates of every occupied cell.
func (p Piece) Cells() []Point {
	cells := make([]Point, 0, 4)
	for y, row := range p.Shape {
		for x, filled := range row {
			if filled {
				cells = append(cells, Point{X: p.X + x, Y: p.Y + y})
			}
		}
	}
	return cells
}
