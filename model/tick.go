package model

import "github.com/sheikhrachel/go-life/rules"

// Tick advances the board one generation in place. The previous generation
// is pushed onto the history first.
//
// Only live cells and their neighbors can be alive in the next generation,
// so those are the only cells evaluated. Neighbor counts always read the
// current generation; the next one is built in a separate set.
func (b *Board) Tick() {
	b.snapshot()

	candidates := sets.Get()
	for c := range b.cells {
		for _, o := range rules.Neighborhood {
			candidates[c.offset(o)] = struct{}{}
		}
	}

	next := sets.Get()
	for c := range candidates {
		_, alive := b.cells[c]
		if rules.Conway(b.liveNeighbors(c), alive) {
			next[c] = struct{}{}
		}
	}

	sets.Put(candidates)
	sets.Put(b.cells)
	b.cells = next
}

// liveNeighbors counts the live cells in the Moore neighborhood of c
func (b *Board) liveNeighbors(c Cell) (count int) {
	for _, o := range rules.Neighborhood {
		if _, ok := b.cells[c.offset(o)]; ok {
			count++
		}
	}
	return
}
