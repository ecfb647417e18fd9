package world

import "fmt"

// Grid is a square, fixed-size, row-major array of cells
type Grid struct {
	cells [][]*Cell
	rows  int
	width int
	gap   int
}

// NewGrid creates a rows×rows grid of Empty cells. width is the display width in
// pixels; every cell gets an extent of width/rows. A width of zero is allowed for
// grids that are never drawn.
func NewGrid(rows, width int) (*Grid, error) {
	if rows <= 0 || width < 0 {
		return nil, fmt.Errorf("%w: rows=%d width=%d", ErrInvalidSize, rows, width)
	}
	g := &Grid{}
	g.build(rows, width)
	return g, nil
}

// MustNewGrid is like NewGrid but panics on invalid dimensions
func MustNewGrid(rows, width int) *Grid {
	g, err := NewGrid(rows, width)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Grid) build(rows, width int) {
	g.rows = rows
	g.width = width
	g.gap = width / rows

	g.cells = make([][]*Cell, rows)
	for row := 0; row < rows; row++ {
		g.cells[row] = make([]*Cell, rows)
		for col := 0; col < rows; col++ {
			g.cells[row][col] = NewCell(row, col, g.gap)
		}
	}
}

// Rows returns the number of rows (and columns) in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Width returns the display width the grid was built for
func (g *Grid) Width() int {
	return g.width
}

// CellSize returns the display extent of one cell
func (g *Grid) CellSize() int {
	return g.gap
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.rows
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(row, col int) *Cell {
	if g == nil || !g.IsValidPosition(row, col) {
		return nil
	}
	return g.cells[row][col]
}

// At returns the cell at p, or nil if out of bounds
func (g *Grid) At(p Pos) *Cell {
	return g.GetCell(p.Row, p.Col)
}

// Contains reports whether c is a cell of this grid (identity, not just position)
func (g *Grid) Contains(c *Cell) bool {
	return c != nil && g.GetCell(c.Row, c.Col) == c
}

// GetCellRelative returns the cell adjacent to c in the given direction, or nil
func (g *Grid) GetCellRelative(c *Cell, dir Direction) *Cell {
	if c == nil {
		return nil
	}
	return g.At(dir.Step(c.Pos()))
}

// RefreshNeighbors rebuilds every cell's adjacency: the up-to-four in-bounds cells
// that are not barriers. It must run after any barrier change and before a search.
func (g *Grid) RefreshNeighbors() {
	g.ForEachCell(func(_, _ int, cell *Cell) {
		g.refreshCellNeighbors(cell)
	})
}

func (g *Grid) refreshCellNeighbors(current *Cell) {
	// a fresh slice, so lists handed out before this refresh stay as they were
	current.neighbors = make([]*Cell, 0, 4)
	for _, dir := range NeighborOrder() {
		adj := g.GetCellRelative(current, dir)
		if adj == nil || adj.IsBarrier() {
			continue
		}
		current.neighbors = append(current.neighbors, adj)
	}
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(row, col int, cell *Cell)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.rows; col++ {
			fn(row, col, g.cells[row][col])
		}
	}
}

// ResetTransient clears Open, Closed and Path marks left by a previous search.
// Start, End and Barrier markings survive.
func (g *Grid) ResetTransient() {
	g.ForEachCell(func(_, _ int, cell *Cell) {
		if cell.State.IsTransient() {
			cell.Reset()
		}
	})
}

// Reset returns every cell to Empty and drops all adjacency
func (g *Grid) Reset() {
	g.ForEachCell(func(_, _ int, cell *Cell) {
		cell.Reset()
		cell.neighbors = nil
	})
}

// CountState returns how many cells currently have the given state
func (g *Grid) CountState(state CellState) int {
	n := 0
	g.ForEachCell(func(_, _ int, cell *Cell) {
		if cell.State == state {
			n++
		}
	})
	return n
}

// FindState returns the first cell (row-major) with the given state, or nil
func (g *Grid) FindState(state CellState) *Cell {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.rows; col++ {
			if g.cells[row][col].State == state {
				return g.cells[row][col]
			}
		}
	}
	return nil
}

// States returns a row-major copy of every cell's state. Renderers draw from this
// so they never touch cells while a search is mutating them.
func (g *Grid) States() [][]CellState {
	out := make([][]CellState, g.rows)
	for row := 0; row < g.rows; row++ {
		out[row] = make([]CellState, g.rows)
		for col := 0; col < g.rows; col++ {
			out[row][col] = g.cells[row][col].State
		}
	}
	return out
}
