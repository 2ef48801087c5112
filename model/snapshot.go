package model

// Snapshot is a read-only view of the grid for rendering. It is a copy and
// does not follow later changes to the grid it was taken from.
type Snapshot struct {
	Width      int
	Height     int
	Generation int
	Population int

	alive [][]bool
}

// Alive returns the state of a cell, treating positions outside the snapshot as dead
func (s Snapshot) Alive(x, y int) bool {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return false
	}
	return s.alive[x][y]
}
