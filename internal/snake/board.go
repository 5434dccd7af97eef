// Package snake implements the grass-snake game: a single snake on a
// wrap-around checkerboard, eating foods whose effects change score,
// speed and length.
package snake

// Point is the top-left corner of a board cell in canvas pixels.
type Point struct {
	X, Y int
}

// Board is the playing field in canvas pixels, split into square cells.
type Board struct {
	Width    int
	Height   int
	CellSize int
}

// Cols returns the number of cell columns.
func (b Board) Cols() int {
	return b.Width / b.CellSize
}

// Rows returns the number of cell rows.
func (b Board) Rows() int {
	return b.Height / b.CellSize
}

// Cell returns the canvas position of the cell at (col, row).
func (b Board) Cell(col, row int) Point {
	return Point{X: col * b.CellSize, Y: row * b.CellSize}
}

// ColRow converts a canvas position back to grid coordinates.
func (b Board) ColRow(p Point) (int, int) {
	return p.X / b.CellSize, p.Y / b.CellSize
}

// Step moves p one cell in direction d, re-entering at the opposite edge
// when it leaves the board. Each axis wraps independently.
func (b Board) Step(p Point, d Direction) Point {
	next := Point{X: p.X + d.X*b.CellSize, Y: p.Y + d.Y*b.CellSize}
	return b.Wrap(next)
}

// Wrap folds an off-board position back onto the board.
func (b Board) Wrap(p Point) Point {
	switch {
	case p.X < 0:
		p.X = b.Width - b.CellSize
	case p.X >= b.Width:
		p.X = 0
	}
	switch {
	case p.Y < 0:
		p.Y = b.Height - b.CellSize
	case p.Y >= b.Height:
		p.Y = 0
	}
	return p
}

// Contains reports whether p is a cell origin on the board.
func (b Board) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < b.Width && p.Y < b.Height &&
		p.X%b.CellSize == 0 && p.Y%b.CellSize == 0
}
