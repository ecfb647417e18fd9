// Package world provides the 2D grid primitives the path search runs over.
// These are engine-level constructs; nothing here knows how a cell is drawn.
package world

import "fmt"

// CellState is the bookkeeping tag carried by every cell.
type CellState int

// Cell states
const (
	Empty CellState = iota
	Start
	End
	Barrier
	Open
	Closed
	Path
)

// String returns the string representation of a cell state
func (s CellState) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Start:
		return "Start"
	case End:
		return "End"
	case Barrier:
		return "Barrier"
	case Open:
		return "Open"
	case Closed:
		return "Closed"
	case Path:
		return "Path"
	default:
		return "Unknown"
	}
}

// IsTransient reports whether the state is produced by a search pass
// (Open, Closed, Path) rather than placed by the user.
func (s CellState) IsTransient() bool {
	return s == Open || s == Closed || s == Path
}

// Pos identifies a cell by value. Two Pos values for the same cell always compare equal,
// so Pos is what the search uses as a map key.
type Pos struct {
	Row int
	Col int
}

// String returns "(row,col)"
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Cell represents a single cell in the grid.
type Cell struct {
	// Grid position
	Row int
	Col int

	// Size is the display extent (pixels per side) for renderers.
	Size int

	State CellState

	// neighbors is rebuilt by Grid.RefreshNeighbors
	neighbors []*Cell
}

// NewCell creates a new empty cell at the given position
func NewCell(row, col, size int) *Cell {
	return &Cell{
		Row:   row,
		Col:   col,
		Size:  size,
		State: Empty,
	}
}

// Pos returns the value identity of the cell
func (c *Cell) Pos() Pos {
	return Pos{Row: c.Row, Col: c.Col}
}

// Origin returns the top-left pixel of the cell. Columns advance along x, rows along y.
func (c *Cell) Origin() (x, y int) {
	return c.Col * c.Size, c.Row * c.Size
}

// SetState assigns the state. It is idempotent and does not check the
// single Start / single End rule; that belongs to the caller.
func (c *Cell) SetState(state CellState) {
	if c == nil {
		return
	}
	c.State = state
}

// Reset returns the cell to Empty
func (c *Cell) Reset() {
	c.SetState(Empty)
}

// Is reports whether the cell currently has the given state
func (c *Cell) Is(state CellState) bool {
	return c != nil && c.State == state
}

// IsBarrier returns true if the cell blocks movement
func (c *Cell) IsBarrier() bool {
	return c.Is(Barrier)
}

// Neighbors returns the adjacency computed by the last RefreshNeighbors call.
// The returned slice must not be modified.
func (c *Cell) Neighbors() []*Cell {
	if c == nil {
		return nil
	}
	return c.neighbors
}

// String implements fmt.Stringer
func (c *Cell) String() string {
	if c == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v:%v", c.Pos(), c.State)
}
