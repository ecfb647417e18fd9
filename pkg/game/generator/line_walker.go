package generator

import (
	"math/rand"

	"gridpath/pkg/engine/world"
)

// LineWalkerGenerator carves corridors by walking lines in random directions
// with branching probability
type LineWalkerGenerator struct{}

// Name returns the name of this generator
func (g *LineWalkerGenerator) Name() string {
	return "Line Walker"
}

// Generate creates a rows×rows layout of branching corridors
func (g *LineWalkerGenerator) Generate(rows, width int, rng *rand.Rand) (*world.Grid, error) {
	grid, err := walledGrid(rows, width)
	if err != nil {
		return nil, err
	}

	// Start in the center
	row, col := rows/2, rows/2

	// Corridor length scales with the grid
	minDist := max(1, rows/8)
	maxDist := max(minDist+1, rows/3)
	const branchProb = 0.3

	// Main corridors in all four directions
	for _, dir := range []world.Direction{world.North, world.East, world.South, world.West} {
		g.buildLine(grid, rng, row, col, dir, branchProb, minDist, maxDist)
	}

	// Extra corridors on larger grids, each leaving from an open cell
	for i := 0; i < rows/10; i++ {
		open := openCells(grid)
		from := open[rng.Intn(len(open))]
		g.buildLine(grid, rng, from.Row, from.Col, g.randomDirection(rng), branchProb, minDist, maxDist)
	}

	if err := placeEndpoints(grid, grid.GetCell(row, col)); err != nil {
		return nil, err
	}
	return grid, nil
}

// randomDirection returns a random cardinal direction
func (g *LineWalkerGenerator) randomDirection(rng *rand.Rand) world.Direction {
	return world.NeighborOrder()[rng.Intn(4)]
}

// buildLine carves a straight corridor from (row, col) in dir, sometimes
// branching off in a random direction. It stops at the border.
func (g *LineWalkerGenerator) buildLine(grid *world.Grid, rng *rand.Rand, row, col int, dir world.Direction, branchProbability float32, minDist, maxDist int) {
	rowDelta, colDelta := dir.Delta()
	distance := minDist + rng.Intn(maxDist-minDist+1)

	for segment := 0; segment < distance; segment++ {
		carve(grid, row, col)

		if !grid.IsValidPosition(row+rowDelta, col+colDelta) {
			return
		}

		if rng.Float32() < branchProbability {
			g.buildLine(grid, rng, row, col, g.randomDirection(rng), branchProbability-.1, minDist, maxDist)
		}

		row += rowDelta
		col += colDelta
	}
	carve(grid, row, col)
}

func openCells(grid *world.Grid) []world.Pos {
	var open []world.Pos
	grid.ForEachCell(func(row, col int, cell *world.Cell) {
		if !cell.IsBarrier() {
			open = append(open, world.Pos{Row: row, Col: col})
		}
	})
	return open
}
