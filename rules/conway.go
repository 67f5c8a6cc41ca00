package rules

// Offset is a relative coordinate inside a cell's neighborhood.
type Offset struct {
	DX, DY int
}

// Neighborhood lists the 8 Moore neighbors of a cell, excluding the cell itself.
var Neighborhood = [8]Offset{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

/*
Conway applies Conway's Game of Life rules to determine the next state of a cell.

	alive, 0-1 neighbors -> dies (underpopulation)
	alive, 2-3 neighbors -> survives
	alive, 4+  neighbors -> dies (overpopulation)
	dead,  3   neighbors -> born (reproduction)
	dead,  otherwise     -> stays dead
*/
func Conway(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
