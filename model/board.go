package model

import (
	"cmp"
	"slices"

	"github.com/sheikhrachel/go-life/rules"
)

// Cell is a coordinate on the unbounded grid.
type Cell struct {
	X, Y int
}

func (c Cell) offset(o rules.Offset) Cell {
	return Cell{X: c.X + o.DX, Y: c.Y + o.DY}
}

type cellSet map[Cell]struct{}

// Board is a sparse Game of Life board. Only live cells are stored, so the
// grid has no edges. Every Tick records the previous generation so that it
// can be restored with Undo.
//
// A Board is not safe for concurrent use.
type Board struct {
	cells   cellSet
	history *History
}

// NewBoard creates an empty board with an empty history
func NewBoard() *Board {
	return &Board{
		cells:   sets.Get(),
		history: NewHistory(HistoryCapacity),
	}
}

// Get returns whether the cell at (x, y) is alive
func (b *Board) Get(x, y int) bool {
	_, ok := b.cells[Cell{X: x, Y: y}]
	return ok
}

// Set marks the cell at (x, y) alive
func (b *Board) Set(x, y int) {
	b.cells[Cell{X: x, Y: y}] = struct{}{}
}

// Unset marks the cell at (x, y) dead
func (b *Board) Unset(x, y int) {
	delete(b.cells, Cell{X: x, Y: y})
}

// Toggle flips the cell at (x, y) and returns its new state
func (b *Board) Toggle(x, y int) bool {
	if b.Get(x, y) {
		b.Unset(x, y)
		return false
	}
	b.Set(x, y)
	return true
}

// Clear removes every live cell. The history is left as is.
func (b *Board) Clear() {
	clear(b.cells)
}

// Cells serializes a width by height window anchored at the origin.
func (b *Board) Cells(width, height int) []uint8 {
	return b.CellsAt(width, height, 0, 0)
}

// CellsAt serializes the window [originX, originX+width) x [originY, originY+height)
// into a row-major slice of 0s and 1s, rows ordered by increasing y.
//
// It panics if width or height is negative.
func (b *Board) CellsAt(width, height, originX, originY int) []uint8 {
	if width < 0 || height < 0 {
		panic("model: width and height must be non-negative")
	}

	cells := make([]uint8, width*height)
	for y := range height {
		for x := range width {
			if b.Get(originX+x, originY+y) {
				cells[y*width+x] = 1
			}
		}
	}
	return cells
}

// Equal reports whether both boards hold exactly the same live cells.
// History is not compared.
func (b *Board) Equal(other *Board) bool {
	if len(b.cells) != len(other.cells) {
		return false
	}
	for c := range b.cells {
		if _, ok := other.cells[c]; !ok {
			return false
		}
	}
	return true
}

// Population returns the number of live cells
func (b *Board) Population() int {
	return len(b.cells)
}

// LiveCells returns the live cells ordered by y, then x.
func (b *Board) LiveCells() []Cell {
	out := make([]Cell, 0, len(b.cells))
	for c := range b.cells {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, c Cell) int {
		if n := cmp.Compare(a.Y, c.Y); n != 0 {
			return n
		}
		return cmp.Compare(a.X, c.X)
	})
	return out
}

// Bounds returns the smallest rectangle containing every live cell.
// ok is false for an empty board.
func (b *Board) Bounds() (lo, hi Cell, ok bool) {
	for c := range b.cells {
		if !ok {
			lo, hi, ok = c, c, true
			continue
		}
		lo.X, lo.Y = min(lo.X, c.X), min(lo.Y, c.Y)
		hi.X, hi.Y = max(hi.X, c.X), max(hi.Y, c.Y)
	}
	return lo, hi, ok
}

// Clone copies the live cells into a new board with an empty history.
func (b *Board) Clone() *Board {
	return &Board{
		cells:   b.cells.copyInto(sets.Get()),
		history: NewHistory(HistoryCapacity),
	}
}

// String renders the 6x6 window anchored at the origin.
func (b *Board) String() string {
	return NewViewport(0, 5, 0, 5).String(b)
}

func (s cellSet) copyInto(dst cellSet) cellSet {
	for c := range s {
		dst[c] = struct{}{}
	}
	return dst
}
