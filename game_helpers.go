package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-editor/model"
	"github.com/sheikhrachel/go-gol-editor/persist"
	"github.com/sheikhrachel/go-gol-editor/presets"
	"github.com/sheikhrachel/go-gol-editor/simulation"
	"github.com/sheikhrachel/go-gol-editor/utils"
)

const (
	saveTimeLayout = "02_01_2006 15_04_05"

	// digit keys 1..9 pick rateStep..9*rateStep generations per second, 0 picks the maximum
	rateStep = 6
)

var cellColors = []string{"yellow", "lime", "aqua", "fuchsia", "orange", "white"}

// game maps terminal input onto controller operations
type game struct {
	ctrl     *simulation.Controller
	renderer *TerminalRenderer
	saveDir  string

	lastFile  string
	status    string
	colorIdx  int
	presetIdx int
}

// newGame wires input to ctrl. openPath, when set, is the file the open key
// reloads until something is saved.
func newGame(ctrl *simulation.Controller, renderer *TerminalRenderer, saveDir, openPath string) *game {
	return &game{ctrl: ctrl, renderer: renderer, saveDir: saveDir, lastFile: openPath}
}

// loop serializes timer ticks and input events onto the controller until the
// user quits, the context ends or the event channel closes
func (g *game) loop(ctx context.Context, events <-chan tcell.Event) error {
	interval := g.ctrl.Interval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		g.draw()

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if g.ctrl.Running() {
				g.ctrl.Step()
			}
		case ev, ok := <-events:
			if !ok || g.handleEvent(ev) {
				return nil
			}
		}

		if next := g.ctrl.Interval(); next != interval {
			interval = next
			ticker.Reset(interval)
		}
	}
}

// handleEvent applies one input event and reports whether the user asked to quit
func (g *game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.renderer.Sync()
	case *tcell.EventMouse:
		g.handleMouse(ev)
	case *tcell.EventKey:
		return g.handleKey(ev)
	}
	return false
}

func (g *game) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelDown != 0:
		g.ctrl.Resize(1)
		return
	case buttons&tcell.WheelUp != 0:
		g.ctrl.Resize(-1)
		return
	}

	x, y := g.renderer.CellAt(ev.Position())
	var err error
	switch {
	case buttons&tcell.Button1 != 0:
		err = g.ctrl.ToggleCellAt(x, y, true)
	case buttons&tcell.Button2 != 0:
		err = g.ctrl.ToggleCellAt(x, y, false)
	}
	// clicks past the grid edge are ignored
	if err != nil && !errors.Is(err, model.ErrOutOfBounds) {
		g.status = "Failed to edit cell."
	}
}

func (g *game) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRight:
		g.ctrl.Step()
		return false
	case tcell.KeyRune:
	default:
		return false
	}

	switch r := ev.Rune(); {
	case r == 'q':
		return true
	case r == ' ':
		g.ctrl.ToggleRunning()
	case r == 'n':
		g.ctrl.Step()
	case r == '+' || r == '=':
		g.ctrl.Resize(1)
	case r == '-':
		g.ctrl.Resize(-1)
	case r == 'r':
		g.ctrl.Reset()
	case r == 's':
		g.save()
	case r == 'o':
		g.open()
	case r == 'p':
		g.nextPreset()
	case r == 'c':
		g.nextColor()
	case r >= '0' && r <= '9':
		g.setRate(int(r - '0'))
	}
	return false
}

func (g *game) setRate(digit int) {
	rate := utils.MaxRate
	if digit > 0 {
		rate = min(digit*rateStep, utils.MaxRate)
	}
	if err := g.ctrl.SetRate(rate); err != nil {
		g.status = "Invalid rate."
	}
}

func (g *game) save() {
	path := filepath.Join(g.saveDir, time.Now().Format(saveTimeLayout)+persist.FileExtension)
	if err := os.WriteFile(path, g.ctrl.Save(), 0o644); err != nil {
		g.status = "Failed to save file."
		return
	}
	g.lastFile = path
	g.status = "Save successful: " + path
}

// open reloads the last file saved or opened, falling back to the newest
// save in the save directory
func (g *game) open() {
	if g.lastFile == "" {
		g.lastFile = latestSave(g.saveDir)
	}
	if g.lastFile == "" {
		g.status = "No saved files found."
		return
	}
	data, err := os.ReadFile(g.lastFile)
	if err == nil {
		err = g.ctrl.Load(data)
	}
	if err != nil {
		g.status = "Failed to load file."
		return
	}
	g.status = "Loaded " + g.lastFile
}

// latestSave returns the most recently modified save file in dir, or "" if there is none
func latestSave(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	var (
		latest   string
		latestAt time.Time
	)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), persist.FileExtension) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if latest == "" || info.ModTime().After(latestAt) {
			latest = filepath.Join(dir, entry.Name())
			latestAt = info.ModTime()
		}
	}
	return latest
}

func (g *game) nextPreset() {
	names := presets.Names()
	if len(names) == 0 {
		return
	}
	name := names[g.presetIdx%len(names)]
	g.presetIdx++
	if err := g.ctrl.LoadPreset(name); err != nil {
		g.status = "Failed to load preset " + name + "."
		return
	}
	g.status = "Preset: " + name
}

func (g *game) nextColor() {
	g.colorIdx = (g.colorIdx + 1) % len(cellColors)
	cellColor, err := utils.ParseCellColor(cellColors[g.colorIdx])
	if err != nil {
		return
	}
	g.ctrl.SetCellColor(cellColor)
}

func (g *game) draw() {
	g.renderer.Display(g.ctrl.Snapshot(), g.ctrl.CellColor(), g.statusLine())
}

// statusLine summarises the run the way the grid is captioned on screen
func (g *game) statusLine() string {
	var (
		snap  = g.ctrl.Snapshot()
		stats = g.ctrl.Stats()
		state = "paused"
	)
	if g.ctrl.Running() {
		state = "running"
	}
	return fmt.Sprintf("Gen: %d | Living: %d | Avg Pop: %.1f | %.1f gen/sec | %dx%d | %s every %v | %s",
		snap.Generation, snap.Population, stats.AveragePopulation, stats.GenerationsPerSecond,
		snap.Width, snap.Height, state, g.ctrl.Interval(), g.status)
}
