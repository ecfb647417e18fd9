// Package generator fills grids with random barrier layouts that always connect
// a start cell to an end cell.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"gridpath/pkg/engine/world"
)

// ErrTooSmall is returned for grids with no room for two distinct endpoints.
var ErrTooSmall = errors.New("generator: grid too small for start and end")

// ErrUnknown is returned by ByName for unregistered generators.
var ErrUnknown = errors.New("generator: unknown generator")

// GridGenerator is an interface for layout generation algorithms
type GridGenerator interface {
	Generate(rows, width int, rng *rand.Rand) (*world.Grid, error)
	Name() string
}

// Available generators
var (
	LineWalker = &LineWalkerGenerator{}
	BSP        = &BSPGenerator{}
)

// DefaultGenerator is the default layout generator
var DefaultGenerator GridGenerator = BSP

var registry = map[string]GridGenerator{
	"bsp":    BSP,
	"walker": LineWalker,
}

// ByName looks a generator up by its configuration name
func ByName(name string) (GridGenerator, error) {
	g, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return g, nil
}

// Names lists the configuration names of all generators
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// walledGrid returns a grid with every cell a barrier, ready to be carved
func walledGrid(rows, width int) (*world.Grid, error) {
	if rows < 2 {
		return nil, ErrTooSmall
	}
	grid, err := world.NewGrid(rows, width)
	if err != nil {
		return nil, err
	}
	grid.ForEachCell(func(_, _ int, cell *world.Cell) {
		cell.SetState(world.Barrier)
	})
	return grid, nil
}

// carve opens the cell at (row, col) if it is inside the grid
func carve(grid *world.Grid, row, col int) {
	if cell := grid.GetCell(row, col); cell != nil && cell.IsBarrier() {
		cell.SetState(world.Empty)
	}
}

// placeEndpoints marks start and puts the end on the open cell with the longest
// walk from it.
func placeEndpoints(grid *world.Grid, start *world.Cell) error {
	start.SetState(world.Start)
	end := findFurthestCell(grid, start)
	if end == nil {
		return ErrTooSmall
	}
	end.SetState(world.End)
	return nil
}

// findFurthestCell runs a breadth-first walk over open cells and returns the last
// cell reached, or nil when start is walled in.
func findFurthestCell(grid *world.Grid, start *world.Cell) *world.Cell {
	type cellDist struct {
		cell *world.Cell
		dist int
	}

	visited := map[world.Pos]bool{start.Pos(): true}
	queue := []cellDist{{start, 0}}

	var furthest *world.Cell
	maxDist := 0

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.dist > maxDist {
			maxDist = current.dist
			furthest = current.cell
		}

		for _, dir := range world.NeighborOrder() {
			n := grid.GetCellRelative(current.cell, dir)
			if n == nil || n.IsBarrier() || visited[n.Pos()] {
				continue
			}
			visited[n.Pos()] = true
			queue = append(queue, cellDist{n, current.dist + 1})
		}
	}
	return furthest
}
