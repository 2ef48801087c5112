package model

import "github.com/sheikhrachel/go-gol-editor/rules"

// Cell is a single grid position. Its coordinates are fixed at construction.
type Cell struct {
	x     int
	y     int
	alive bool
}

// NewCell creates a cell at (x, y)
func NewCell(x, y int, alive bool) Cell {
	return Cell{x: x, y: y, alive: alive}
}

// X returns the column of the cell
func (c Cell) X() int { return c.x }

// Y returns the row of the cell
func (c Cell) Y() int { return c.y }

// Alive reports whether the cell is living
func (c Cell) Alive() bool { return c.alive }

// Update returns the cell's next state given its living neighbour count.
// The receiver is left untouched.
func (c Cell) Update(neighbours int) Cell {
	return Cell{x: c.x, y: c.y, alive: rules.ApplyConwayRules(neighbours, c.alive)}
}
