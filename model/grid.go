package model

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	tokenAlive = "true"
	tokenDead  = "false"

	tokenSeparator     = " "
	dimensionSeparator = ","
)

// neighbourOffsets lists the 8 positions surrounding a cell
var neighbourOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Grid represents the game board. Cells are stored column-major so that
// cells[x][y] is always the cell with coordinates (x, y).
type Grid struct {
	width  int
	height int
	cells  [][]Cell

	// next is the spare buffer the following generation is written into
	next [][]Cell
}

// NewGrid creates a new grid with the specified dimensions and every cell dead
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  newCells(width, height),
	}
}

func newCells(width, height int) [][]Cell {
	cells := make([][]Cell, width)
	for x := range cells {
		cells[x] = make([]Cell, height)
		for y := range cells[x] {
			cells[x][y] = NewCell(x, y, false)
		}
	}
	return cells
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Reset resets the grid to new dimensions with every cell dead
func (g *Grid) Reset(width, height int) {
	if g.width != width || g.height != height || len(g.cells) != width {
		g.width = width
		g.height = height
		g.cells = newCells(width, height)
		g.next = nil
		return
	}
	g.Clear()
}

// Clear kills every cell
func (g *Grid) Clear() {
	for x := range g.width {
		for y := range g.height {
			g.cells[x][y] = NewCell(x, y, false)
		}
	}
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Cell returns the cell at (x, y)
func (g *Grid) Cell(x, y int) (Cell, error) {
	if !g.inBounds(x, y) {
		return Cell{}, errors.Wrapf(ErrOutOfBounds, "[Cell] (%d,%d) outside %dx%d grid", x, y, g.width, g.height)
	}
	return g.cells[x][y], nil
}

// Alive returns the state of a cell, treating positions outside the grid as dead
func (g *Grid) Alive(x, y int) bool {
	if !g.inBounds(x, y) {
		return false
	}
	return g.cells[x][y].alive
}

// SetAlive sets a cell to alive (true) or dead (false) without applying any rule
func (g *Grid) SetAlive(x, y int, alive bool) error {
	if !g.inBounds(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "[SetAlive] (%d,%d) outside %dx%d grid", x, y, g.width, g.height)
	}
	g.cells[x][y].alive = alive
	return nil
}

// NeighbourCount counts living neighbours of (x, y). Positions past the grid
// edges are not neighbours; the grid does not wrap.
func (g *Grid) NeighbourCount(x, y int) int {
	count := 0
	for _, offset := range neighbourOffsets {
		if g.Alive(x+offset[0], y+offset[1]) {
			count++
		}
	}
	return count
}

// AdvanceGeneration applies the rules to every cell at once. The next state is
// computed entirely from the current buffer before the buffers are swapped.
func (g *Grid) AdvanceGeneration() {
	if len(g.next) != g.width {
		g.next = newCells(g.width, g.height)
	}
	for x := range g.width {
		for y := range g.height {
			g.next[x][y] = g.cells[x][y].Update(g.NeighbourCount(x, y))
		}
	}
	g.cells, g.next = g.next, g.cells
}

// Resize returns a grid grown (delta > 0) or shrunk (delta < 0) by delta in
// both dimensions. The overlapping region keeps its content, anything past
// the new bounds is discarded. Shrinking below minSize is refused and g
// itself is returned.
func (g *Grid) Resize(delta, minSize int, pool *GridPool) *Grid {
	if delta == 0 {
		return g
	}
	if delta < 0 && (g.width+delta < minSize || g.height+delta < minSize) {
		return g
	}

	var resized *Grid
	if pool != nil {
		resized = pool.Get(g.width+delta, g.height+delta)
	} else {
		resized = NewGrid(g.width+delta, g.height+delta)
	}

	overlapW := min(g.width, resized.width)
	overlapH := min(g.height, resized.height)
	for x := range overlapW {
		for y := range overlapH {
			resized.cells[x][y].alive = g.cells[x][y].alive
		}
	}
	return resized
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for x := range g.width {
		for y := range g.height {
			if g.cells[x][y].alive {
				count++
			}
		}
	}
	return
}

// Equal reports whether both grids have the same dimensions and cell states
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for x := range g.width {
		for y := range g.height {
			if g.cells[x][y].alive != other.cells[x][y].alive {
				return false
			}
		}
	}
	return true
}

// Snapshot returns a read-only copy of the current cell states
func (g *Grid) Snapshot() Snapshot {
	alive := make([][]bool, g.width)
	population := 0
	for x := range g.width {
		alive[x] = make([]bool, g.height)
		for y := range g.height {
			alive[x][y] = g.cells[x][y].alive
			if alive[x][y] {
				population++
			}
		}
	}
	return Snapshot{
		Width:      g.width,
		Height:     g.height,
		Population: population,
		alive:      alive,
	}
}

// Serialize encodes the grid as text rows. Row r lists the cells (0,r) to
// (width-1,r); the final row holds "<width>,<height>".
func (g *Grid) Serialize() []string {
	rows := make([]string, 0, g.height+1)
	tokens := make([]string, g.width)
	for y := range g.height {
		for x := range g.width {
			tokens[x] = strconv.FormatBool(g.cells[x][y].alive)
		}
		rows = append(rows, strings.Join(tokens, tokenSeparator))
	}
	rows = append(rows, strconv.Itoa(g.width)+dimensionSeparator+strconv.Itoa(g.height))
	return rows
}

// Deserialize rebuilds a grid from rows produced by Serialize
func Deserialize(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrMalformedState, "[Deserialize] missing dimension row")
	}

	width, height, err := parseDimensions(rows[len(rows)-1])
	if err != nil {
		return nil, err
	}

	cellRows := rows[:len(rows)-1]
	if len(cellRows) != height {
		return nil, errors.Wrapf(ErrMalformedState, "[Deserialize] found %d cell rows, want %d", len(cellRows), height)
	}

	// every row is checked against the declared width before anything is allocated
	alive := make([][]bool, height)
	for y, row := range cellRows {
		tokens := strings.Split(row, tokenSeparator)
		if len(tokens) != width {
			return nil, errors.Wrapf(ErrMalformedState, "[Deserialize] row %d has %d tokens, want %d", y, len(tokens), width)
		}
		alive[y] = make([]bool, width)
		for x, token := range tokens {
			switch token {
			case tokenAlive:
				alive[y][x] = true
			case tokenDead:
			default:
				return nil, errors.Wrapf(ErrMalformedState, "[Deserialize] row %d column %d: invalid token %q", y, x, token)
			}
		}
	}

	g := NewGrid(width, height)
	for y := range height {
		for x := range width {
			g.cells[x][y].alive = alive[y][x]
		}
	}
	return g, nil
}

func parseDimensions(row string) (width, height int, err error) {
	fields := strings.Split(row, dimensionSeparator)
	if len(fields) != 2 {
		return 0, 0, errors.Wrapf(ErrMalformedState, "[parseDimensions] invalid dimension row %q", row)
	}
	if width, err = strconv.Atoi(strings.TrimSpace(fields[0])); err != nil {
		return 0, 0, errors.Wrapf(ErrMalformedState, "[parseDimensions] invalid width %q", fields[0])
	}
	if height, err = strconv.Atoi(strings.TrimSpace(fields[1])); err != nil {
		return 0, 0, errors.Wrapf(ErrMalformedState, "[parseDimensions] invalid height %q", fields[1])
	}
	if width < 1 || height < 1 {
		return 0, 0, errors.Wrapf(ErrMalformedState, "[parseDimensions] non-positive dimensions %dx%d", width, height)
	}
	return width, height, nil
}
