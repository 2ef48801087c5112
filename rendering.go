package main

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/sheikhrachel/go-gol-editor/model"
)

const (
	// each grid cell covers this many terminal columns so cells look square
	cellColumns = 2
)

var deadStyle = tcell.StyleDefault.Background(tcell.ColorGray)

// TerminalRenderer draws snapshots onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
}

func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// Display renders the grid with the status line beneath it
func (r *TerminalRenderer) Display(snap model.Snapshot, cellColor color.RGBA, status string) {
	r.screen.Clear()

	aliveStyle := tcell.StyleDefault.Background(
		tcell.NewRGBColor(int32(cellColor.R), int32(cellColor.G), int32(cellColor.B)))

	for y := range snap.Height {
		for x := range snap.Width {
			style := deadStyle
			if snap.Alive(x, y) {
				style = aliveStyle
			}
			for col := range cellColumns {
				r.screen.SetContent(x*cellColumns+col, y, ' ', nil, style)
			}
		}
	}

	for i, ch := range []rune(status) {
		r.screen.SetContent(i, snap.Height, ch, nil, tcell.StyleDefault)
	}
	r.screen.Show()
}

// CellAt maps a terminal position to grid coordinates
func (r *TerminalRenderer) CellAt(column, row int) (x, y int) {
	return column / cellColumns, row
}

// Sync redraws the whole terminal after a resize
func (r *TerminalRenderer) Sync() {
	r.screen.Sync()
}
