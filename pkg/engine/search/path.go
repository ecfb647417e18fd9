package search

import "gridpath/pkg/engine/world"

// ReconstructPath follows cameFrom back from end until it reaches the cell with no
// predecessor (Start) and returns the route in Start→End order.
//
// Every cell strictly between Start and End is marked Path, with obs notified after
// each mark so a renderer can animate the trace. obs may be nil.
func ReconstructPath(grid *world.Grid, cameFrom map[world.Pos]world.Pos, end *world.Cell, obs Observer) []*world.Cell {
	path := []*world.Cell{end}

	current := end.Pos()
	for {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		cell := grid.At(prev)
		path = append(path, cell)

		if _, hasPrev := cameFrom[prev]; hasPrev {
			paint(cell, world.Path)
			notifyStep(obs)
		}
		current = prev
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
