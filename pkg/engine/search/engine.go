package search

import (
	"context"
	"math"

	"github.com/zyedidia/generic/mapset"

	"gridpath/pkg/engine/world"
)

// Infinity is the cost of a cell that has not been reached
const Infinity = math.MaxInt

// Outcome says how a search ended
type Outcome int

// Outcomes
const (
	// NoPath means the frontier ran dry: End is unreachable from Start.
	NoPath Outcome = iota
	// Found means End was reached and Result.Path holds a shortest route.
	Found
	// Aborted means the context was cancelled before the search finished.
	Aborted
)

// String returns the lower-case name of the outcome
func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case NoPath:
		return "no_path"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Result contains the outcome of a search
type Result struct {
	Outcome Outcome
	// Path runs from Start to End inclusive; empty unless Outcome is Found.
	Path []*world.Cell
	// Cost is the number of moves along Path.
	Cost int
	// Expanded counts cells taken off the frontier and expanded.
	Expanded int
}

// Success reports whether a path was found
func (r Result) Success() bool {
	return r.Outcome == Found
}

// Positions returns Path as positions
func (r Result) Positions() []world.Pos {
	out := make([]world.Pos, len(r.Path))
	for i, c := range r.Path {
		out[i] = c.Pos()
	}
	return out
}

// Run searches grid for a shortest path from start to end with A* and the
// Manhattan heuristic.
//
// The grid's neighbours must have been refreshed after the last barrier change;
// Run uses the adjacency as it stands and never rebuilds it. Start and end must be
// cells of grid. If they are not, Run reports NoPath without touching any cell.
//
// obs may be nil. ctx is checked before each frontier pop; once it is done the
// search stops and reports Aborted with an empty path.
func Run(ctx context.Context, grid *world.Grid, start, end *world.Cell, obs Observer) Result {
	if grid == nil || !grid.Contains(start) || !grid.Contains(end) {
		return Result{Outcome: NoPath}
	}

	s := newState(grid, end.Pos())
	s.g[s.index(start.Pos())] = 0
	s.f[s.index(start.Pos())] = Manhattan(start.Pos(), end.Pos())
	s.frontier.Push(start, s.f[s.index(start.Pos())])

	expanded := 0
	for !s.frontier.Empty() {
		if ctx.Err() != nil {
			return Result{Outcome: Aborted, Expanded: expanded}
		}

		current, _, _ := s.frontier.Pop()
		if s.closed.Has(current.Pos()) {
			// closed cells are expanded once
			continue
		}

		currentG := s.g[s.index(current.Pos())]
		expanded++
		notifyExpanded(obs, current, currentG)

		if current == end {
			path := ReconstructPath(grid, s.cameFrom, end, obs)
			end.SetState(world.End)
			start.SetState(world.Start)
			return Result{Outcome: Found, Path: path, Cost: currentG, Expanded: expanded}
		}

		for _, neighbor := range current.Neighbors() {
			tentative := currentG + 1
			ni := s.index(neighbor.Pos())
			if tentative >= s.g[ni] {
				continue
			}
			s.cameFrom[neighbor.Pos()] = current.Pos()
			s.g[ni] = tentative
			s.f[ni] = tentative + Manhattan(neighbor.Pos(), s.goal)

			// an open cell keeps its queued priority; only its cost and parent change
			if !s.frontier.Contains(neighbor) {
				s.frontier.Push(neighbor, s.f[ni])
				paint(neighbor, world.Open)
			}
		}

		notifyStep(obs)

		s.closed.Put(current.Pos())
		if current != start {
			paint(current, world.Closed)
		}
	}

	return Result{Outcome: NoPath, Expanded: expanded}
}

// state is everything one invocation owns
type state struct {
	rows     int
	goal     world.Pos
	g        []int
	f        []int
	cameFrom map[world.Pos]world.Pos
	closed   mapset.Set[world.Pos]
	frontier *Frontier
}

func newState(grid *world.Grid, goal world.Pos) *state {
	n := grid.Rows() * grid.Rows()
	s := &state{
		rows:     grid.Rows(),
		goal:     goal,
		g:        make([]int, n),
		f:        make([]int, n),
		cameFrom: make(map[world.Pos]world.Pos),
		closed:   mapset.New[world.Pos](),
		frontier: NewFrontier(),
	}
	for i := range s.g {
		s.g[i] = Infinity
		s.f[i] = Infinity
	}
	return s
}

func (s *state) index(p world.Pos) int {
	return p.Row*s.rows + p.Col
}

// paint sets a search mark without overwriting the user's Start and End
func paint(cell *world.Cell, mark world.CellState) {
	if cell.Is(world.Start) || cell.Is(world.End) {
		return
	}
	cell.SetState(mark)
}
