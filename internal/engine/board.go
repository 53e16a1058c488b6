package engine

const (
	Width  = 10
	Height = 20
)

// Board is the playfield indexed [row][column]. A cell holds the kind of
// the piece that was locked there, or Empty. Board is a value type, so
// assigning it copies every cell.
type Board [Height][Width]Kind

// In reports whether p lies on the board.
func In(p Point) bool {
	return p.X >= 0 && p.X < Width && p.Y >= 0 && p.Y < Height
}

// Occupied reports whether the cell at (x, y) is on the board and filled.
func (b Board) Occupied(x, y int) bool {
	if !In(Point{X: x, Y: y}) {
		return false
	}
	return b[y][x] != Empty
}

// Count returns the number of filled cells.
func (b Board) Count() int {
	n := 0
	for y := range b {
		for x := range b[y] {
			if b[y][x] != Empty {
				n++
			}
		}
	}
	return n
}

func (b *Board) rowFull(y int) bool {
	for x := 0; x < Width; x++ {
		if b[y][x] == Empty {
			return false
		}
	}
	return true
}

// clearLines sweeps once from the bottom row to the top, removing each full
// row it finds, shifting the rows above it down and opening an empty row at
// the top. The sweep moves on after a removal, so a full row that shifts
// into the removed index is not examined again. It returns the number of
// rows removed.
func (b *Board) clearLines() int {
	cleared := 0
	for y := Height - 1; y >= 0; y-- {
		if !b.rowFull(y) {
			continue
		}
		cleared++
		for pull := y; pull > 0; pull-- {
			b[pull] = b[pull-1]
		}
		b[0] = [Width]Kind{}
	}
	return cleared
}

// stamp writes the piece's cells into the board. Cells that fall outside
// the board are dropped.
func (b *Board) stamp(p Piece) {
	for _, cell := range place(p.Shape(), p.X, p.Y) {
		if In(cell) {
			b[cell.Y][cell.X] = p.Kind
		}
	}
}

// Overlay returns a copy of board with the piece's on-board cells filled
// in. The engine and any renderer share this one definition of where a
// piece sits.
func Overlay(board Board, p Piece) Board {
	board.stamp(p)
	return board
}
