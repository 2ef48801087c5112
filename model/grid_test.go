package model

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func gridWith(w, h int, alive ...[2]int) *Grid {
	g := NewGrid(w, h)
	for _, p := range alive {
		if err := g.SetAlive(p[0], p[1], true); err != nil {
			panic(err)
		}
	}
	return g
}

func expectAlive(t *testing.T, g *Grid, alive ...[2]int) {
	t.Helper()
	want := map[[2]int]bool{}
	for _, p := range alive {
		want[p] = true
	}
	for y := range g.GetHeight() {
		for x := range g.GetWidth() {
			if got := g.Alive(x, y); got != want[[2]int{x, y}] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, got, want[[2]int{x, y}])
			}
		}
	}
}

func TestNewGridIndexesCells(t *testing.T) {
	g := NewGrid(7, 5)
	if g.GetWidth() != 7 || g.GetHeight() != 5 {
		t.Fatalf("got %dx%d grid, expected 7x5", g.GetWidth(), g.GetHeight())
	}
	for x := range 7 {
		for y := range 5 {
			c, err := g.Cell(x, y)
			if err != nil {
				t.Fatalf("Cell(%d,%d): %v", x, y, err)
			}
			if c.X() != x || c.Y() != y || c.Alive() {
				t.Fatalf("cell at (%d,%d) = {%d,%d,%v}", x, y, c.X(), c.Y(), c.Alive())
			}
		}
	}
}

func TestSetAliveOutOfBounds(t *testing.T) {
	g := NewGrid(5, 5)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {5, 0}, {0, 5}, {9, 9}} {
		if err := g.SetAlive(p[0], p[1], true); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("SetAlive(%d,%d) err=%v, expected ErrOutOfBounds", p[0], p[1], err)
		}
		if _, err := g.Cell(p[0], p[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Cell(%d,%d) err=%v, expected ErrOutOfBounds", p[0], p[1], err)
		}
	}
	if g.CountLivingCells() != 0 {
		t.Fatal("failed SetAlive changed the grid")
	}
}

func TestNeighbourCountEdges(t *testing.T) {
	const n = 6
	g := NewGrid(n, n)
	for x := range n {
		for y := range n {
			_ = g.SetAlive(x, y, true)
		}
	}

	for _, corner := range [][2]int{{0, 0}, {n - 1, 0}, {0, n - 1}, {n - 1, n - 1}} {
		if got := g.NeighbourCount(corner[0], corner[1]); got != 3 {
			t.Fatalf("corner (%d,%d) has %d neighbours, expected 3", corner[0], corner[1], got)
		}
	}
	for _, edge := range [][2]int{{2, 0}, {0, 3}, {n - 1, 1}, {4, n - 1}} {
		if got := g.NeighbourCount(edge[0], edge[1]); got != 5 {
			t.Fatalf("edge (%d,%d) has %d neighbours, expected 5", edge[0], edge[1], got)
		}
	}
	if got := g.NeighbourCount(2, 2); got != 8 {
		t.Fatalf("interior cell has %d neighbours, expected 8", got)
	}
}

func TestNeighbourCountDoesNotWrap(t *testing.T) {
	g := gridWith(5, 5, [2]int{4, 4}, [2]int{4, 0}, [2]int{0, 4})
	if got := g.NeighbourCount(0, 0); got != 0 {
		t.Fatalf("corner saw %d neighbours across the edges", got)
	}
}

func TestAdvanceGenerationBlinker(t *testing.T) {
	g := gridWith(5, 5, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})

	g.AdvanceGeneration()
	expectAlive(t, g, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})

	g.AdvanceGeneration()
	expectAlive(t, g, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})
}

func TestAdvanceGenerationUsesPreviousState(t *testing.T) {
	// (1,1) is born from (1,0), (0,2) and (1,2), all of which die in the same step.
	// An in-place update would already see them dead and skip the birth.
	g := gridWith(5, 5, [2]int{1, 0}, [2]int{0, 2}, [2]int{1, 2})

	g.AdvanceGeneration()
	expectAlive(t, g, [2]int{0, 1}, [2]int{1, 1})
}

func TestAdvanceGenerationIsolatedCell(t *testing.T) {
	g := gridWith(5, 5, [2]int{2, 2})
	g.AdvanceGeneration()
	expectAlive(t, g)
}

func TestAdvanceGenerationFullBlock(t *testing.T) {
	var block [][2]int
	for x := 2; x <= 4; x++ {
		for y := 2; y <= 4; y++ {
			block = append(block, [2]int{x, y})
		}
	}
	g := gridWith(7, 7, block...)

	g.AdvanceGeneration()

	for _, corner := range [][2]int{{2, 2}, {4, 2}, {2, 4}, {4, 4}} {
		if !g.Alive(corner[0], corner[1]) {
			t.Fatalf("block corner (%d,%d) died", corner[0], corner[1])
		}
	}
	for _, p := range [][2]int{{3, 3}, {3, 2}, {2, 3}, {4, 3}, {3, 4}} {
		if g.Alive(p[0], p[1]) {
			t.Fatalf("block cell (%d,%d) survived", p[0], p[1])
		}
	}
	// Each side has 3 live neighbours just outside the block midpoint.
	for _, p := range [][2]int{{3, 1}, {1, 3}, {5, 3}, {3, 5}} {
		if !g.Alive(p[0], p[1]) {
			t.Fatalf("expected birth at (%d,%d)", p[0], p[1])
		}
	}
}

func TestAdvanceGenerationKeepsIndexes(t *testing.T) {
	g := gridWith(6, 5, [2]int{1, 1}, [2]int{2, 1}, [2]int{1, 2}, [2]int{2, 2})
	for range 3 {
		g.AdvanceGeneration()
	}
	for x := range 6 {
		for y := range 5 {
			c, _ := g.Cell(x, y)
			if c.X() != x || c.Y() != y {
				t.Fatalf("cell stored at (%d,%d) reports (%d,%d)", x, y, c.X(), c.Y())
			}
		}
	}
	expectAlive(t, g, [2]int{1, 1}, [2]int{2, 1}, [2]int{1, 2}, [2]int{2, 2})
}

func TestResizeRoundTrip(t *testing.T) {
	for _, pool := range []*GridPool{nil, NewGridPool()} {
		g := gridWith(6, 5, [2]int{0, 0}, [2]int{5, 4}, [2]int{3, 2})

		grown := g.Resize(2, 5, pool)
		if grown.GetWidth() != 8 || grown.GetHeight() != 7 {
			t.Fatalf("grew to %dx%d, expected 8x7", grown.GetWidth(), grown.GetHeight())
		}
		expectAlive(t, grown, [2]int{0, 0}, [2]int{5, 4}, [2]int{3, 2})

		shrunk := grown.Resize(-2, 5, pool)
		if !shrunk.Equal(g) {
			t.Fatal("grow-then-shrink did not restore the grid")
		}
		for x := range 6 {
			for y := range 5 {
				c, _ := shrunk.Cell(x, y)
				if c.X() != x || c.Y() != y {
					t.Fatalf("resized cell at (%d,%d) reports (%d,%d)", x, y, c.X(), c.Y())
				}
			}
		}
	}
}

func TestResizeTruncates(t *testing.T) {
	g := gridWith(7, 7, [2]int{6, 6}, [2]int{1, 1}, [2]int{6, 0})
	shrunk := g.Resize(-1, 5, nil)
	expectAlive(t, shrunk, [2]int{1, 1})
	regrown := shrunk.Resize(1, 5, nil)
	expectAlive(t, regrown, [2]int{1, 1})
}

func TestResizeRefusedAtMinimum(t *testing.T) {
	for _, dims := range [][2]int{{5, 9}, {9, 5}, {5, 5}} {
		g := gridWith(dims[0], dims[1], [2]int{1, 1})
		if got := g.Resize(-1, 5, nil); got != g {
			t.Fatalf("%dx%d grid shrank below minimum", dims[0], dims[1])
		}
	}
	g := NewGrid(6, 8)
	if got := g.Resize(-2, 5, nil); got != g {
		t.Fatal("resize by -2 went below minimum")
	}
}

func TestSerializeLayout(t *testing.T) {
	g := gridWith(3, 2, [2]int{2, 0}, [2]int{0, 1})
	want := []string{
		"false false true",
		"true false false",
		"3,2",
	}
	got := g.Serialize()
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("Serialize() = %q, expected %q", got, want)
	}
}

func TestDeserializeRoundTrip(t *testing.T) {
	g := gridWith(9, 6, [2]int{0, 0}, [2]int{8, 5}, [2]int{4, 1}, [2]int{1, 4})
	back, err := Deserialize(g.Serialize())
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if !back.Equal(g) {
		t.Fatalf("round trip changed grid: %q", back.Serialize())
	}
}

func TestDeserializeMalformed(t *testing.T) {
	cases := map[string][]string{
		"empty":             nil,
		"missing dims":      {"true false"},
		"dims not integers": {"true", "a,1"},
		"dims one field":    {"true", "1"},
		"dims three fields": {"true", "1,1,1"},
		"zero dims":         {"0,0"},
		"too few tokens":    {"true false", "true", "2,2"},
		"too many tokens":   {"true false", "true false true", "2,2"},
		"too few rows":      {"true false", "2,2"},
		"too many rows":     {"true false", "true false", "true false", "2,2"},
		"bad token":         {"true yes", "false false", "2,2"},
		"wrong case":        {"TRUE false", "false false", "2,2"},
		"huge width":        {"true", "9223372036854775807,1"},
		"large width":       {"true false", "100000000,1"},
		"huge height":       {"true", "1,9223372036854775807"},
	}
	for name, rows := range cases {
		t.Run(name, func(t *testing.T) {
			g, err := Deserialize(rows)
			if !errors.Is(err, ErrMalformedState) {
				t.Fatalf("err=%v, expected ErrMalformedState", err)
			}
			if g != nil {
				t.Fatal("returned a grid alongside an error")
			}
		})
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	g := gridWith(5, 5, [2]int{1, 1})
	snap := g.Snapshot()
	_ = g.SetAlive(1, 1, false)
	_ = g.SetAlive(2, 2, true)

	if !snap.Alive(1, 1) || snap.Alive(2, 2) {
		t.Fatal("snapshot followed grid mutation")
	}
	if snap.Population != 1 || snap.Width != 5 || snap.Height != 5 {
		t.Fatalf("unexpected snapshot header %+v", snap)
	}
	if snap.Alive(-1, 0) || snap.Alive(5, 5) {
		t.Fatal("out of range snapshot cell reported alive")
	}
}

func TestGridPoolReuse(t *testing.T) {
	pool := NewGridPool()
	g := gridWith(5, 5, [2]int{1, 1})
	GridToPool(g, pool)

	reused := pool.Get(6, 7)
	if reused.GetWidth() != 6 || reused.GetHeight() != 7 || reused.CountLivingCells() != 0 {
		t.Fatal("pooled grid was not reset")
	}
	c, _ := reused.Cell(5, 6)
	if c.X() != 5 || c.Y() != 6 {
		t.Fatalf("pooled grid cell reports (%d,%d)", c.X(), c.Y())
	}
}
