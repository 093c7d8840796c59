package game

// Cell is a single grid coordinate. X grows rightward, Y grows downward.
type Cell struct {
	X int
	Y int
}

// Translate returns the neighboring cell one step in the given direction.
func (c Cell) Translate(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Board is the fixed playfield. Legal cells live in [0,Width)x[0,Height).
type Board struct {
	Width  int
	Height int
}

// Contains reports whether c is inside the playfield.
func (b Board) Contains(c Cell) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

// Center returns the cell the snake spawns on.
func (b Board) Center() Cell {
	return Cell{X: b.Width / 2, Y: b.Height / 2}
}

// Area is the total number of cells on the board.
func (b Board) Area() int {
	return b.Width * b.Height
}
