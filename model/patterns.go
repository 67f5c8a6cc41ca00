package model

import (
	"maps"
	"slices"
)

// FromASCII builds a board from rows of text. '#', 'O', 'o' and 'X' mark live
// cells; the row index is y and the column index is x.
func FromASCII(rows []string) *Board {
	b := NewBoard()
	Stamp(b, rows, 0, 0)
	return b
}

// Stamp sets the live cells of rows onto b with the top-left character at
// (originX, originY).
func Stamp(b *Board, rows []string, originX, originY int) {
	for y, row := range rows {
		for x, ch := range []rune(row) {
			switch ch {
			case '#', 'O', 'o', 'X':
				b.Set(originX+x, originY+y)
			}
		}
	}
}

var patterns = map[string][]string{
	"blinker": {".#.", ".#.", ".#."},
	"block":   {"##", "##"},
	"tub":     {".#.", "#.#", ".#."},
	"toad":    {".###", "###."},
	"beacon":  {"##..", "##..", "..##", "..##"},
	"glider":  {".#.", "..#", "###"},
	"pulsar": {
		"..###...###..",
		".............",
		"#....#.#....#",
		"#....#.#....#",
		"#....#.#....#",
		"..###...###..",
		".............",
		"..###...###..",
		"#....#.#....#",
		"#....#.#....#",
		"#....#.#....#",
		".............",
		"..###...###..",
	},
	"pentadecathlon": {
		"..#..",
		".#.#.",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		".#.#.",
		"..#..",
	},
}

// Pattern returns the rows of a named pattern
func Pattern(name string) ([]string, bool) {
	rows, ok := patterns[name]
	return rows, ok
}

// PatternNames lists the known pattern names in sorted order
func PatternNames() []string {
	return slices.Sorted(maps.Keys(patterns))
}
