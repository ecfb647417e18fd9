package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridpath/pkg/engine/world"
)

func TestFrontier_OrdersByScoreThenInsertion(t *testing.T) {
	g := world.MustNewGrid(3, 0)
	a, b, c, d := g.GetCell(0, 0), g.GetCell(0, 1), g.GetCell(0, 2), g.GetCell(1, 0)

	fr := NewFrontier()
	fr.Push(a, 5)
	fr.Push(b, 3)
	fr.Push(c, 5)
	fr.Push(d, 3)

	var got []*world.Cell
	for !fr.Empty() {
		cell, _, ok := fr.Pop()
		require.True(t, ok)
		got = append(got, cell)
	}
	// equal scores come out first-in first-out
	assert.Equal(t, []*world.Cell{b, d, a, c}, got)
}

func TestFrontier_PopEmpty(t *testing.T) {
	fr := NewFrontier()
	cell, f, ok := fr.Pop()
	assert.False(t, ok)
	assert.Nil(t, cell)
	assert.Zero(t, f)
}

func TestFrontier_MembershipTracksLiveEntries(t *testing.T) {
	g := world.MustNewGrid(2, 0)
	a, b := g.GetCell(0, 0), g.GetCell(1, 1)

	fr := NewFrontier()
	assert.False(t, fr.Contains(a))

	fr.Push(a, 4)
	fr.Push(a, 2) // improved cost, older entry goes stale
	fr.Push(b, 3)
	assert.True(t, fr.Contains(a))
	assert.Equal(t, 3, fr.Len())

	cell, f, _ := fr.Pop()
	assert.Equal(t, a, cell)
	assert.Equal(t, 2, f)
	assert.True(t, fr.Contains(a), "stale entry is still queued")

	cell, _, _ = fr.Pop()
	assert.Equal(t, b, cell)
	assert.False(t, fr.Contains(b))

	cell, f, _ = fr.Pop()
	assert.Equal(t, a, cell)
	assert.Equal(t, 4, f)
	assert.False(t, fr.Contains(a))
	assert.True(t, fr.Empty())
}

func TestFrontier_SequenceIsPerFrontier(t *testing.T) {
	g := world.MustNewGrid(2, 0)
	first := NewFrontier()
	first.Push(g.GetCell(0, 0), 1)
	first.Push(g.GetCell(0, 1), 1)

	second := NewFrontier()
	second.Push(g.GetCell(1, 1), 1)
	assert.Equal(t, uint64(1), second.seq)
}
