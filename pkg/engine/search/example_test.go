package search_test

import (
	"context"
	"fmt"

	"gridpath/pkg/engine/search"
	"gridpath/pkg/engine/world"
)

// ExampleRun finds the straight route along the top edge of an empty 5×5 grid.
func ExampleRun() {
	grid := world.MustNewGrid(5, 0)
	start := grid.GetCell(0, 0)
	end := grid.GetCell(0, 4)
	start.SetState(world.Start)
	end.SetState(world.End)
	grid.RefreshNeighbors()

	res := search.Run(context.Background(), grid, start, end, nil)

	fmt.Println(res.Outcome, res.Cost)
	fmt.Println(res.Positions())
	// Output:
	// found 4
	// [(0,0) (0,1) (0,2) (0,3) (0,4)]
}

// ExampleRun_wall shows a start and end separated by a full barrier column.
func ExampleRun_wall() {
	grid := world.MustNewGrid(3, 0)
	for row := 0; row < 3; row++ {
		grid.GetCell(row, 1).SetState(world.Barrier)
	}
	start, end := grid.GetCell(0, 0), grid.GetCell(2, 2)
	start.SetState(world.Start)
	end.SetState(world.End)
	grid.RefreshNeighbors()

	res := search.Run(context.Background(), grid, start, end, nil)

	fmt.Println(res.Outcome, res.Success(), len(res.Path))
	// Output:
	// no_path false 0
}
