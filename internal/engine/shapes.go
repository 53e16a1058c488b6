package engine

// Kind identifies a piece. The zero value marks an empty board cell.
type Kind uint8

const (
	Empty Kind = iota
	I
	J
	L
	O
	S
	T
	Z
)

const kindCount = 7

var kindNames = [...]string{"", "I", "J", "L", "O", "S", "T", "Z"}

var kindColors = [...]string{
	"",
	"#00f0f0",
	"#0000f0",
	"#f0a000",
	"#f0f000",
	"#00f000",
	"#a000f0",
	"#f00000",
}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return "?"
	}
	return kindNames[k]
}

// Color returns the canonical display color of the kind as a hex string.
// Empty and unknown kinds have no color.
func (k Kind) Color() string {
	if int(k) >= len(kindColors) {
		return ""
	}
	return kindColors[k]
}

// Kinds returns the seven piece kinds in table order.
func Kinds() []Kind {
	return []Kind{I, J, L, O, S, T, Z}
}

// Shape is an occupancy matrix indexed [row][column].
type Shape [][]bool

// Cells returns the occupied cells of the shape relative to its top-left corner.
func (s Shape) Cells() []Point {
	cells := make([]Point, 0, 4)
	for r, row := range s {
		for c, filled := range row {
			if filled {
				cells = append(cells, Point{X: c, Y: r})
			}
		}
	}
	return cells
}

// Equal reports whether two shapes mark exactly the same cells.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for r := range s {
		if len(s[r]) != len(other[r]) {
			return false
		}
		for c := range s[r] {
			if s[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// Point is a cell coordinate; X grows to the right and Y grows downward.
type Point struct {
	X int
	Y int
}

// rotations holds each kind's rotation states in the order Rotate cycles
// through them. The square has a single state and I, S and Z have two.
var rotations = [kindCount + 1][]Shape{
	I: {
		parseShape(
			"....",
			"####",
			"....",
			"....",
		),
		parseShape(
			".#..",
			".#..",
			".#..",
			".#..",
		),
	},
	J: {
		parseShape(
			"#..",
			"###",
			"...",
		),
		parseShape(
			".##",
			".#.",
			".#.",
		),
		parseShape(
			"...",
			"###",
			"..#",
		),
		parseShape(
			".#.",
			".#.",
			"##.",
		),
	},
	L: {
		parseShape(
			"..#",
			"###",
			"...",
		),
		parseShape(
			".#.",
			".#.",
			".##",
		),
		parseShape(
			"...",
			"###",
			"#..",
		),
		parseShape(
			"##.",
			".#.",
			".#.",
		),
	},
	O: {
		parseShape(
			"##",
			"##",
		),
	},
	S: {
		parseShape(
			".##",
			"##.",
			"...",
		),
		parseShape(
			".#.",
			".##",
			"..#",
		),
	},
	T: {
		parseShape(
			".#.",
			"###",
			"...",
		),
		parseShape(
			".#.",
			".##",
			".#.",
		),
		parseShape(
			"...",
			"###",
			".#.",
		),
		parseShape(
			".#.",
			"##.",
			".#.",
		),
	},
	Z: {
		parseShape(
			"##.",
			".##",
			"...",
		),
		parseShape(
			"..#",
			".##",
			".#.",
		),
	},
}

func parseShape(rows ...string) Shape {
	shape := make(Shape, len(rows))
	for r, row := range rows {
		shape[r] = make([]bool, len(row))
		for c, ch := range row {
			shape[r][c] = ch == '#'
		}
	}
	return shape
}

// RotationCount returns how many distinct rotation states the kind has.
func RotationCount(kind Kind) int {
	if kind == Empty || int(kind) > kindCount {
		return 0
	}
	return len(rotations[kind])
}

// ShapeOf returns the occupancy matrix of kind at the given rotation,
// taken modulo the kind's rotation count. The returned shape is shared
// table data and must not be modified.
func ShapeOf(kind Kind, rotation int) Shape {
	count := RotationCount(kind)
	if count == 0 {
		return nil
	}
	rotation %= count
	if rotation < 0 {
		rotation += count
	}
	return rotations[kind][rotation]
}
