// Package state holds the editable grid and the bookkeeping around searches on it.
package state

import (
	"context"
	"errors"
	"fmt"

	"gridpath/pkg/engine/search"
	"gridpath/pkg/engine/world"
)

var (
	// ErrNoStart is returned by Ready and Search before a start cell is placed.
	ErrNoStart = errors.New("state: no start cell")
	// ErrNoEnd is returned by Ready and Search before an end cell is placed.
	ErrNoEnd = errors.New("state: no end cell")
	// ErrBusy is returned by edits and searches while a search is running.
	ErrBusy = errors.New("state: search in progress")
)

const maxMessages = 5

// Editor is the grid being edited plus its remembered endpoints, the keyboard
// cursor and the result of the most recent search.
//
// An Editor is owned by a single goroutine; renderers read it only through
// calls made from that goroutine.
type Editor struct {
	Grid  *world.Grid
	Start *world.Cell
	End   *world.Cell

	Cursor world.Pos

	// Last is the result of the latest finished search, nil before the first
	Last *search.Result

	Messages []string

	searching bool
}

// NewEditor creates an editor over an empty rows×rows grid drawn across width pixels
func NewEditor(rows, width int) (*Editor, error) {
	grid, err := world.NewGrid(rows, width)
	if err != nil {
		return nil, err
	}
	return &Editor{Grid: grid}, nil
}

// NewEditorFromGrid adopts an existing grid, picking up its Start and End cells
func NewEditorFromGrid(grid *world.Grid) *Editor {
	return &Editor{
		Grid:  grid,
		Start: grid.FindState(world.Start),
		End:   grid.FindState(world.End),
	}
}

// Searching reports whether a search started by Search is still running
func (e *Editor) Searching() bool {
	return e.searching
}

// Place applies a primary click to the cell at (row, col): the first click sets
// Start, the next sets End, every later one sets a Barrier. Start and End are
// never overwritten. It returns the resulting state of the cell.
func (e *Editor) Place(row, col int) (world.CellState, error) {
	if e.searching {
		return world.Empty, ErrBusy
	}
	cell := e.Grid.GetCell(row, col)
	if cell == nil {
		return world.Empty, fmt.Errorf("%w: (%d,%d)", world.ErrOutOfBounds, row, col)
	}
	e.Cursor = cell.Pos()

	switch {
	case e.Start == nil && cell != e.End:
		e.Start = cell
		cell.SetState(world.Start)
	case e.End == nil && cell != e.Start:
		e.End = cell
		cell.SetState(world.End)
	case cell != e.Start && cell != e.End:
		cell.SetState(world.Barrier)
	}
	return cell.State, nil
}

// Erase returns the cell at (row, col) to Empty, forgetting it as Start or End
func (e *Editor) Erase(row, col int) error {
	if e.searching {
		return ErrBusy
	}
	cell := e.Grid.GetCell(row, col)
	if cell == nil {
		return fmt.Errorf("%w: (%d,%d)", world.ErrOutOfBounds, row, col)
	}
	e.Cursor = cell.Pos()

	cell.Reset()
	switch cell {
	case e.Start:
		e.Start = nil
	case e.End:
		e.End = nil
	}
	return nil
}

// PlaceAt is Place for a pixel position
func (e *Editor) PlaceAt(x, y int) (world.CellState, error) {
	row, col := world.CellAt(x, y, e.Grid.Width(), e.Grid.Rows())
	return e.Place(row, col)
}

// EraseAt is Erase for a pixel position
func (e *Editor) EraseAt(x, y int) error {
	row, col := world.CellAt(x, y, e.Grid.Width(), e.Grid.Rows())
	return e.Erase(row, col)
}

// PlaceCursor is Place on the cursor cell
func (e *Editor) PlaceCursor() (world.CellState, error) {
	return e.Place(e.Cursor.Row, e.Cursor.Col)
}

// EraseCursor is Erase on the cursor cell
func (e *Editor) EraseCursor() error {
	return e.Erase(e.Cursor.Row, e.Cursor.Col)
}

// MoveCursor steps the cursor one cell in dir, stopping at the border
func (e *Editor) MoveCursor(dir world.Direction) {
	next := dir.Step(e.Cursor)
	if e.Grid.IsValidPosition(next.Row, next.Col) {
		e.Cursor = next
	}
}

// Clear replaces the grid with a fresh one of the same size and forgets the endpoints
func (e *Editor) Clear() error {
	if e.searching {
		return ErrBusy
	}
	grid, err := world.NewGrid(e.Grid.Rows(), e.Grid.Width())
	if err != nil {
		return err
	}
	e.Grid = grid
	e.Start, e.End = nil, nil
	e.Last = nil
	return nil
}

// Replace swaps in grid, taking its Start and End as the endpoints. The grid
// must be drawn across the same width as the current one.
func (e *Editor) Replace(grid *world.Grid) error {
	if e.searching {
		return ErrBusy
	}
	if grid.Width() != e.Grid.Width() {
		return fmt.Errorf("state: replacement grid is %dpx wide, want %dpx", grid.Width(), e.Grid.Width())
	}
	e.Grid = grid
	e.Start = grid.FindState(world.Start)
	e.End = grid.FindState(world.End)
	e.Last = nil
	if !grid.IsValidPosition(e.Cursor.Row, e.Cursor.Col) {
		e.Cursor = world.Pos{}
	}
	return nil
}

// Ready reports why a search cannot start yet, or nil
func (e *Editor) Ready() error {
	if e.Start == nil {
		return ErrNoStart
	}
	if e.End == nil {
		return ErrNoEnd
	}
	return nil
}

// Search clears the marks of the previous run, rebuilds adjacency from the
// current barriers and runs A* from Start to End. obs is called as the search
// progresses; cancelling ctx aborts it.
func (e *Editor) Search(ctx context.Context, obs search.Observer) (search.Result, error) {
	if e.searching {
		return search.Result{}, ErrBusy
	}
	if err := e.Ready(); err != nil {
		return search.Result{}, err
	}

	e.searching = true
	defer func() { e.searching = false }()

	e.Grid.ResetTransient()
	e.Grid.RefreshNeighbors()

	res := search.Run(ctx, e.Grid, e.Start, e.End, obs)
	e.Last = &res
	return res, nil
}

// AddMessage adds a message to the editor's message log
func (e *Editor) AddMessage(msg string) {
	e.Messages = append(e.Messages, msg)

	// Keep only the last maxMessages
	if len(e.Messages) > maxMessages {
		e.Messages = e.Messages[len(e.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (e *Editor) ClearMessages() {
	e.Messages = make([]string, 0)
}
