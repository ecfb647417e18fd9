package search

import "gridpath/pkg/engine/world"

// Heuristic estimates the remaining cost between two positions
type Heuristic func(a, b world.Pos) int

// Manhattan returns |Δrow| + |Δcol|. It is admissible and consistent for
// four-directional, unit-cost movement.
func Manhattan(a, b world.Pos) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
