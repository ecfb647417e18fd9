package search

import (
	"github.com/zyedidia/generic/heap"

	"gridpath/pkg/engine/world"
)

// entry is one frontier slot. seq is unique per frontier, so ordering never has to
// fall back to comparing cells.
type entry struct {
	f    int
	seq  uint64
	cell *world.Cell
}

func lessEntry(a, b entry) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	return a.seq < b.seq
}

// Frontier is the open set: a min-priority queue ordered by (fScore, insertion order)
// with a membership index kept in step with the entries not yet popped.
//
// Priorities are fixed at push time. Run pushes a cell only while it is not
// already queued, so Contains guards against duplicates.
type Frontier struct {
	queue *heap.Heap[entry]
	live  map[world.Pos]int
	seq   uint64
}

// NewFrontier returns an empty frontier. The tie-break sequence starts at zero for
// every frontier, so no ordering leaks from one search into the next.
func NewFrontier() *Frontier {
	return &Frontier{
		queue: heap.New[entry](lessEntry),
		live:  make(map[world.Pos]int),
	}
}

// Push inserts cell with priority f and the next sequence number
func (fr *Frontier) Push(cell *world.Cell, f int) {
	fr.seq++
	fr.queue.Push(entry{f: f, seq: fr.seq, cell: cell})
	fr.live[cell.Pos()]++
}

// Pop removes and returns the entry with the lowest (f, seq).
// ok is false when the frontier is empty.
func (fr *Frontier) Pop() (cell *world.Cell, f int, ok bool) {
	e, ok := fr.queue.Pop()
	if !ok {
		return nil, 0, false
	}
	fr.remove(e.cell.Pos())
	return e.cell, e.f, true
}

func (fr *Frontier) remove(p world.Pos) {
	if n := fr.live[p]; n > 1 {
		fr.live[p] = n - 1
		return
	}
	delete(fr.live, p)
}

// Contains reports whether cell has at least one entry that has not been popped
func (fr *Frontier) Contains(cell *world.Cell) bool {
	return fr.live[cell.Pos()] > 0
}

// Len returns the number of queued entries
func (fr *Frontier) Len() int {
	return fr.queue.Size()
}

// Empty reports whether nothing is left to pop
func (fr *Frontier) Empty() bool {
	return fr.Len() == 0
}
