package engine

// Piece is the active falling piece. X and Y locate the top-left corner of
// its shape matrix on the board.
type Piece struct {
	Kind     Kind
	Rotation int
	X        int
	Y        int
}

// Shape returns the occupancy matrix for the piece's current rotation.
func (p Piece) Shape() Shape {
	return ShapeOf(p.Kind, p.Rotation)
}

// Cells returns the absolute board coordinates the piece covers.
func (p Piece) Cells() []Point {
	return place(p.Shape(), p.X, p.Y)
}

// place returns the board cells shape covers with its top-left corner at
// (x, y). Collision checks and Overlay both go through it.
func place(shape Shape, x, y int) []Point {
	cells := shape.Cells()
	for i := range cells {
		cells[i].X += x
		cells[i].Y += y
	}
	return cells
}
