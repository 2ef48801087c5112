// Package simulation owns the grid and exposes the operations the UI and
// timer call. Callers must serialize access; nothing here locks.
package simulation

import (
	"image/color"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-editor/model"
	"github.com/sheikhrachel/go-gol-editor/persist"
	"github.com/sheikhrachel/go-gol-editor/presets"
	"github.com/sheikhrachel/go-gol-editor/utils"
)

// ErrInvalidRate is returned for a rate outside utils.MinRate..utils.MaxRate
var ErrInvalidRate = errors.New("invalid rate")

// Controller drives a single grid
type Controller struct {
	grid    *model.Grid
	pool    *model.GridPool
	minSize int

	running   bool
	interval  time.Duration
	cellColor color.RGBA

	stats *utils.Stats
}

// New creates a controller with an all-dead grid as described by config
func New(config utils.Config) (*Controller, error) {
	if config.MinSize < 1 || config.Width < config.MinSize || config.Height < config.MinSize {
		return nil, errors.Wrapf(model.ErrInvalidSize, "[New] grid %dx%d with minimum %d",
			config.Width, config.Height, config.MinSize)
	}
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "[New] invalid config")
	}
	cellColor, err := utils.ParseCellColor(config.CellColor)
	if err != nil {
		return nil, errors.Wrap(err, "[New] failed to parse cell color")
	}

	return &Controller{
		grid:      model.NewGrid(config.Width, config.Height),
		pool:      model.NewGridPool(),
		minSize:   config.MinSize,
		running:   config.StartRunning,
		interval:  rateInterval(config.GenerationsPerSecond),
		cellColor: cellColor,
		stats:     utils.NewStats(),
	}, nil
}

func rateInterval(generationsPerSecond int) time.Duration {
	return time.Duration(1000/generationsPerSecond) * time.Millisecond
}

// ToggleRunning switches between running and paused
func (c *Controller) ToggleRunning() {
	c.running = !c.running
}

// Running reports whether the timer should be stepping the simulation
func (c *Controller) Running() bool {
	return c.running
}

// Step advances one generation regardless of the running state
func (c *Controller) Step() {
	c.grid.AdvanceGeneration()
	c.stats.Record(c.grid.CountLivingCells())
}

// SetRate sets the step interval to 1000/generationsPerSecond milliseconds
func (c *Controller) SetRate(generationsPerSecond int) error {
	if generationsPerSecond < utils.MinRate || generationsPerSecond > utils.MaxRate {
		return errors.Wrapf(ErrInvalidRate, "[SetRate] %d outside %d..%d",
			generationsPerSecond, utils.MinRate, utils.MaxRate)
	}
	c.interval = rateInterval(generationsPerSecond)
	return nil
}

// Interval returns the delay between timer-driven steps
func (c *Controller) Interval() time.Duration {
	return c.interval
}

// Reset replaces the grid with an all-dead one of the same size
func (c *Controller) Reset() {
	c.replaceGrid(c.pool.Get(c.grid.GetWidth(), c.grid.GetHeight()))
}

// Resize grows (delta > 0) or shrinks (delta < 0) the grid, keeping the
// overlapping content. Shrinking below the minimum size is ignored.
func (c *Controller) Resize(delta int) {
	resized := c.grid.Resize(delta, c.minSize, c.pool)
	if resized == c.grid {
		return
	}
	old := c.grid
	c.grid = resized
	model.GridToPool(old, c.pool)
}

// ToggleCellAt sets the cell at (x, y) alive or dead
func (c *Controller) ToggleCellAt(x, y int, alive bool) error {
	return c.grid.SetAlive(x, y, alive)
}

// Save encodes the current grid in the .gol format
func (c *Controller) Save() []byte {
	return persist.Encode(c.grid)
}

// Load replaces the grid with decoded data. On error nothing changes.
func (c *Controller) Load(data []byte) error {
	g, err := persist.Decode(data)
	if err != nil {
		return errors.Wrap(err, "[Load] failed to decode state")
	}
	if g.GetWidth() < c.minSize || g.GetHeight() < c.minSize {
		return errors.Wrapf(model.ErrMalformedState, "[Load] grid %dx%d is smaller than minimum %d",
			g.GetWidth(), g.GetHeight(), c.minSize)
	}
	c.replaceGrid(g)
	return nil
}

// LoadPreset loads one of the named patterns from the presets package
func (c *Controller) LoadPreset(name string) error {
	data, err := presets.Open(name)
	if err != nil {
		return errors.Wrap(err, "[LoadPreset] failed to open preset")
	}
	return c.Load(data)
}

func (c *Controller) replaceGrid(g *model.Grid) {
	old := c.grid
	c.grid = g
	c.stats = utils.NewStats()
	model.GridToPool(old, c.pool)
}

// Snapshot returns a copy of the current cells for rendering
func (c *Controller) Snapshot() model.Snapshot {
	snap := c.grid.Snapshot()
	snap.Generation = c.stats.TotalGenerations
	return snap
}

// Stats returns a copy of the run statistics since the last reset or load
func (c *Controller) Stats() utils.Stats {
	return *c.stats
}

// CellColor returns the color living cells are drawn with
func (c *Controller) CellColor() color.RGBA {
	return c.cellColor
}

func (c *Controller) SetCellColor(cellColor color.RGBA) {
	c.cellColor = cellColor
}
