package model

import "testing"

func boardOf(cells ...Cell) *Board {
	b := NewBoard()
	for _, c := range cells {
		b.Set(c.X, c.Y)
	}
	return b
}

func assertPeriod(t *testing.T, name string, b *Board, period int) {
	t.Helper()
	baseline := b.Clone()
	for step := 1; step < period; step++ {
		b.Tick()
		if baseline.Equal(b) {
			t.Fatalf("%s unexpectedly returned to its baseline after %d tick(s)", name, step)
		}
	}

	b.Tick()
	if !baseline.Equal(b) {
		t.Fatalf("%s did not return to its baseline after %d tick(s)", name, period)
	}
}

func TestBlinkerScenario(t *testing.T) {
	b := boardOf(Cell{1, 1}, Cell{2, 1}, Cell{3, 1})

	b.Tick()
	if want := boardOf(Cell{2, 0}, Cell{2, 1}, Cell{2, 2}); !b.Equal(want) {
		t.Fatalf("after one tick got %v, want %v", b.LiveCells(), want.LiveCells())
	}

	b.Tick()
	if want := boardOf(Cell{1, 1}, Cell{2, 1}, Cell{3, 1}); !b.Equal(want) {
		t.Fatalf("after two ticks got %v, want %v", b.LiveCells(), want.LiveCells())
	}
}

func TestStillLifes(t *testing.T) {
	for _, name := range []string{"block", "tub"} {
		rows, _ := Pattern(name)
		baseline := FromASCII(rows)
		b := FromASCII(rows)
		for i := 0; i <= 4; i++ {
			b.Tick()
			if !baseline.Equal(b) {
				t.Fatalf("%s changed after %d tick(s)", name, i+1)
			}
		}
	}
}

func TestOscillatorsHaveKnownPeriods(t *testing.T) {
	tests := []struct {
		name   string
		period int
	}{
		{"blinker", 2},
		{"toad", 2},
		{"beacon", 2},
		{"pulsar", 3},
		{"pentadecathlon", 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, ok := Pattern(tt.name)
			if !ok {
				t.Fatalf("unknown pattern %q", tt.name)
			}
			assertPeriod(t, tt.name, FromASCII(rows), tt.period)
		})
	}
}

func TestGliderTravelsAcrossNegativeCoordinates(t *testing.T) {
	rows, _ := Pattern("glider")
	b := NewBoard()
	Stamp(b, rows, -50, -50)
	start := b.Clone()

	for range 4 * 20 {
		b.Tick()
	}

	// A glider moves one cell diagonally every 4 generations.
	want := NewBoard()
	Stamp(want, rows, -30, -30)
	if !b.Equal(want) {
		t.Fatalf("glider ended at %v, want %v", b.LiveCells(), want.LiveCells())
	}
	if b.Population() != start.Population() {
		t.Fatalf("glider population changed: %d -> %d", start.Population(), b.Population())
	}
}

func TestEmptyBoardStaysEmpty(t *testing.T) {
	b := NewBoard()
	b.Tick()
	if b.Population() != 0 {
		t.Fatalf("empty board grew %d cells", b.Population())
	}
	if !b.CanUndo() {
		t.Fatalf("tick on an empty board should still be recorded")
	}
}

func TestTickKillsIsolatedAndCrowdedCells(t *testing.T) {
	b := boardOf(Cell{0, 0}, Cell{10, 10}, Cell{11, 10})
	b.Tick()
	if b.Population() != 0 {
		t.Fatalf("underpopulated cells survived: %v", b.LiveCells())
	}

	// Center of a plus sign has 4 neighbors and dies; the arms survive or are born.
	plus := boardOf(Cell{0, 0}, Cell{1, 0}, Cell{-1, 0}, Cell{0, 1}, Cell{0, -1})
	plus.Tick()
	if plus.Get(0, 0) {
		t.Fatalf("overcrowded center survived")
	}
	for _, c := range []Cell{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}} {
		if !plus.Get(c.X, c.Y) {
			t.Fatalf("expected birth at %v", c)
		}
	}
}

// bruteForceTick evaluates every cell in the padded bounding box.
func bruteForceTick(b *Board) *Board {
	next := NewBoard()
	lo, hi, ok := b.Bounds()
	if !ok {
		return next
	}
	for y := lo.Y - 1; y <= hi.Y+1; y++ {
		for x := lo.X - 1; x <= hi.X+1; x++ {
			n := b.liveNeighbors(Cell{x, y})
			alive := b.Get(x, y)
			if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
				next.Set(x, y)
			}
		}
	}
	return next
}

func TestTickMatchesBruteForce(t *testing.T) {
	// R-pentomino: chaotic for over a thousand generations.
	b := FromASCII([]string{".##", "##.", ".#."})
	for gen := range 120 {
		want := bruteForceTick(b)
		b.Tick()
		if !b.Equal(want) {
			t.Fatalf("generation %d differs from brute force", gen+1)
		}
	}
}
