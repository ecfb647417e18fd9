package generator

import (
	"math/rand"

	"gridpath/pkg/engine/world"
)

// BSPGenerator carves rooms with Binary Space Partitioning and joins sibling
// rooms with L-shaped corridors.
type BSPGenerator struct{}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// region is a rectangle of cells
type region struct {
	row, col, height, width int
}

func (r region) center() (row, col int) {
	return r.row + r.height/2, r.col + r.width/2
}

// bspNode represents a node in the BSP tree
type bspNode struct {
	area        region
	left, right *bspNode
	room        *region
}

// Constants for BSP generation
const (
	minNodeSize = 8 // Minimum size of a BSP node
	minRoomSize = 3 // Minimum size of a room
	roomPadding = 1 // Cells between a room and its node edge
)

// Generate creates a rows×rows layout using the BSP algorithm
func (g *BSPGenerator) Generate(rows, width int, rng *rand.Rand) (*world.Grid, error) {
	grid, err := walledGrid(rows, width)
	if err != nil {
		return nil, err
	}

	root := &bspNode{area: region{height: rows, width: rows}}
	splitBSP(root, rng)
	createRooms(root, rng)
	carveRooms(grid, root)
	connectRooms(grid, root, rng)

	// Start in a random room; the end goes as far away as the corridors allow
	rooms := collectRooms(root)
	startRoom := rooms[rng.Intn(len(rooms))]
	if err := placeEndpoints(grid, grid.GetCell(startRoom.center())); err != nil {
		return nil, err
	}
	return grid, nil
}

// splitBSP recursively splits a BSP node
func splitBSP(node *bspNode, rng *rand.Rand) {
	a := node.area
	canSplitRows := a.height >= minNodeSize*2
	canSplitCols := a.width >= minNodeSize*2

	var splitHorizontal bool
	switch {
	case canSplitRows && canSplitCols:
		if a.height == a.width {
			splitHorizontal = rng.Intn(2) == 0
		} else {
			splitHorizontal = a.height > a.width
		}
	case canSplitRows:
		splitHorizontal = true
	case canSplitCols:
		splitHorizontal = false
	default:
		return // Too small to split
	}

	if splitHorizontal {
		splitPoint := minNodeSize + rng.Intn(a.height-minNodeSize*2+1)
		node.left = &bspNode{area: region{a.row, a.col, splitPoint, a.width}}
		node.right = &bspNode{area: region{a.row + splitPoint, a.col, a.height - splitPoint, a.width}}
	} else {
		splitPoint := minNodeSize + rng.Intn(a.width-minNodeSize*2+1)
		node.left = &bspNode{area: region{a.row, a.col, a.height, splitPoint}}
		node.right = &bspNode{area: region{a.row, a.col + splitPoint, a.height, a.width - splitPoint}}
	}

	splitBSP(node.left, rng)
	splitBSP(node.right, rng)
}

// roomSpan picks a room extent for a node extent of size. Nodes too small to pad
// become one room.
func roomSpan(size int, rng *rand.Rand) int {
	if size-roomPadding <= minRoomSize {
		return size
	}
	return minRoomSize + rng.Intn(size-roomPadding-minRoomSize+1)
}

// createRooms creates a room in every leaf node
func createRooms(node *bspNode, rng *rand.Rand) {
	if node.left != nil || node.right != nil {
		createRooms(node.left, rng)
		createRooms(node.right, rng)
		return
	}

	a := node.area
	height := roomSpan(a.height, rng)
	width := roomSpan(a.width, rng)
	node.room = &region{
		row:    a.row + rng.Intn(a.height-height+1),
		col:    a.col + rng.Intn(a.width-width+1),
		height: height,
		width:  width,
	}
}

// carveRooms opens every room cell
func carveRooms(grid *world.Grid, node *bspNode) {
	if node == nil {
		return
	}
	if r := node.room; r != nil {
		for row := r.row; row < r.row+r.height; row++ {
			for col := r.col; col < r.col+r.width; col++ {
				carve(grid, row, col)
			}
		}
	}
	carveRooms(grid, node.left)
	carveRooms(grid, node.right)
}

// connectRooms joins a room of each subtree, then recurses, so every leaf ends up
// connected to every other.
func connectRooms(grid *world.Grid, node *bspNode, rng *rand.Rand) {
	if node.left == nil || node.right == nil {
		return
	}

	leftRow, leftCol := getRoom(node.left, rng).center()
	rightRow, rightCol := getRoom(node.right, rng).center()

	if rng.Intn(2) == 0 {
		// Horizontal first, then vertical
		carveCorridorHorizontal(grid, leftRow, leftCol, rightCol)
		carveCorridorVertical(grid, rightCol, leftRow, rightRow)
	} else {
		carveCorridorVertical(grid, leftCol, leftRow, rightRow)
		carveCorridorHorizontal(grid, rightRow, leftCol, rightCol)
	}

	connectRooms(grid, node.left, rng)
	connectRooms(grid, node.right, rng)
}

func carveCorridorHorizontal(grid *world.Grid, row, startCol, endCol int) {
	if startCol > endCol {
		startCol, endCol = endCol, startCol
	}
	for col := startCol; col <= endCol; col++ {
		carve(grid, row, col)
	}
}

func carveCorridorVertical(grid *world.Grid, col, startRow, endRow int) {
	if startRow > endRow {
		startRow, endRow = endRow, startRow
	}
	for row := startRow; row <= endRow; row++ {
		carve(grid, row, col)
	}
}

// getRoom returns a room from a subtree (picks randomly from leaves)
func getRoom(node *bspNode, rng *rand.Rand) *region {
	if node.room != nil {
		return node.room
	}
	if rng.Intn(2) == 0 {
		return getRoom(node.left, rng)
	}
	return getRoom(node.right, rng)
}

// collectRooms collects all rooms from the BSP tree
func collectRooms(node *bspNode) []*region {
	if node == nil {
		return nil
	}
	if node.room != nil {
		return []*region{node.room}
	}
	return append(collectRooms(node.left), collectRooms(node.right)...)
}
